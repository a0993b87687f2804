package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/avelichko/wordbattle/internal/model"
	usecase_room "github.com/avelichko/wordbattle/internal/usecase/room"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	ID         int64  `db:"id"`
	TelegramID int64  `db:"telegram_id"`
	Username   string `db:"username"`
	PhotoURL   string `db:"photo_url"`
}

func (d *Driver) ByTelegramID(ctx context.Context, telegramID int64) (model.User, error) {
	const query = `
		SELECT id, telegram_id, username, photo_url
		FROM users
		WHERE telegram_id = $1
	`

	var dto userDTO
	if err := d.db.GetContext(ctx, &dto, query, telegramID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, usecase_room.ErrUserNotFound
		}
		return model.User{}, err
	}

	return model.User{
		ID:         dto.ID,
		TelegramID: dto.TelegramID,
		Username:   dto.Username,
		PhotoURL:   dto.PhotoURL,
	}, nil
}
