package infra_postgres_room

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

type roomDTO struct {
	ID             int64        `db:"id"`
	Status         string       `db:"status"`
	OwnerID        int64        `db:"owner_id"`
	LanguageFromID int64        `db:"language_from_id"`
	LanguageToID   int64        `db:"language_to_id"`
	CreatedAt      sql.NullTime `db:"created_at"`
	OnlineCount    int          `db:"online_count"`
}

type standingDTO struct {
	Username string `db:"username"`
	PhotoURL string `db:"photo_url"`
	Points   int    `db:"points"`
}

// CreateRoom inserts the room and the owner's online participant row in
// one transaction: an owned room always has its owner as a participant.
func (d *Driver) CreateRoom(ctx context.Context, ownerID, languageFromID, languageToID int64) (model.Room, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Room{}, err
	}
	defer tx.Rollback()

	const insertRoom = `
		INSERT INTO rooms (status, owner_id, language_from_id, language_to_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	room := model.Room{
		Status:         model.RoomStatusCreated,
		OwnerID:        ownerID,
		LanguageFromID: languageFromID,
		LanguageToID:   languageToID,
	}
	if err := tx.QueryRowContext(ctx, insertRoom,
		room.Status, ownerID, languageFromID, languageToID,
	).Scan(&room.ID, &room.CreatedAt); err != nil {
		return model.Room{}, err
	}

	const insertParticipant = `
		INSERT INTO participants (room_id, user_id, points, status)
		VALUES ($1, $2, 0, $3)
	`
	if _, err := tx.ExecContext(ctx, insertParticipant, room.ID, ownerID, model.PresenceOnline); err != nil {
		return model.Room{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Room{}, err
	}
	return room, nil
}

func (d *Driver) Room(ctx context.Context, roomID int64) (model.Room, error) {
	const query = `
		SELECT id, status, owner_id, language_from_id, language_to_id, created_at
		FROM rooms
		WHERE id = $1
	`

	var dto roomDTO
	if err := d.db.GetContext(ctx, &dto, query, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, usecase_room.ErrRoomNotFound
		}
		return model.Room{}, err
	}
	return dto.toModel(), nil
}

func (d *Driver) Rooms(ctx context.Context) ([]model.RoomWithCount, error) {
	const query = `
		SELECT r.id, r.status, r.owner_id, r.language_from_id, r.language_to_id, r.created_at,
		       COUNT(p.id) FILTER (WHERE p.status = 'online') AS online_count
		FROM rooms r
		LEFT JOIN participants p ON p.room_id = r.id
		GROUP BY r.id
		ORDER BY r.id
	`

	var dtos []roomDTO
	if err := d.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, err
	}

	rooms := make([]model.RoomWithCount, 0, len(dtos))
	for _, dto := range dtos {
		rooms = append(rooms, model.RoomWithCount{
			Room:        dto.toModel(),
			OnlineCount: dto.OnlineCount,
		})
	}
	return rooms, nil
}

// Join marks the user online in the room, creating the participant row
// on first join. Re-joining updates the row rather than duplicating it.
// The room activation (owner arriving) commits atomically with it.
func (d *Driver) Join(ctx context.Context, roomID, userID int64, activate bool) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if activate {
		if err := setStatusTx(ctx, tx, roomID, model.RoomStatusActive); err != nil {
			return err
		}
	}

	const upsert = `
		INSERT INTO participants (room_id, user_id, points, status)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (room_id, user_id)
		DO UPDATE SET status = $3
	`
	if _, err := tx.ExecContext(ctx, upsert, roomID, userID, model.PresenceOnline); err != nil {
		return err
	}

	return tx.Commit()
}

// Leave is symmetric to Join: presence goes offline and, when the owner
// leaves, the room pauses in the same transaction.
func (d *Driver) Leave(ctx context.Context, roomID, userID int64, pause bool) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if pause {
		if err := setStatusTx(ctx, tx, roomID, model.RoomStatusPaused); err != nil {
			return err
		}
	}

	const update = `
		UPDATE participants
		SET status = $1
		WHERE room_id = $2 AND user_id = $3
	`
	if _, err := tx.ExecContext(ctx, update, model.PresenceOffline, roomID, userID); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) SetStatus(ctx context.Context, roomID int64, status string) error {
	const query = `
		UPDATE rooms
		SET status = $1
		WHERE id = $2
	`

	result, err := d.db.ExecContext(ctx, query, status, roomID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_room.ErrRoomNotFound
	}
	return nil
}

func (d *Driver) OnlineCount(ctx context.Context, roomID int64) (int, error) {
	const query = `
		SELECT COUNT(id)
		FROM participants
		WHERE room_id = $1 AND status = $2
	`

	var count int
	if err := d.db.GetContext(ctx, &count, query, roomID, model.PresenceOnline); err != nil {
		return 0, err
	}
	return count, nil
}

func (d *Driver) OwnerOnline(ctx context.Context, roomID int64) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1
			FROM participants p
			JOIN rooms r ON r.id = p.room_id
			WHERE p.room_id = $1 AND p.user_id = r.owner_id AND p.status = $2
		)
	`

	var online bool
	if err := d.db.GetContext(ctx, &online, query, roomID, model.PresenceOnline); err != nil {
		return false, err
	}
	return online, nil
}

// AdjustPoints moves a participant's score by delta with a single
// in-place update, so concurrent answers from different users commute
// and same-row updates serialize on the storage side.
func (d *Driver) AdjustPoints(ctx context.Context, roomID, userID int64, delta int) error {
	const query = `
		UPDATE participants
		SET points = points + $1
		WHERE room_id = $2 AND user_id = $3
	`

	result, err := d.db.ExecContext(ctx, query, delta, roomID, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_room.ErrUserNotFound
	}
	return nil
}

// Standings lists online participants by points descending. Equal
// points order by participant row id ascending, which is join order.
func (d *Driver) Standings(ctx context.Context, roomID int64) ([]model.Standing, error) {
	const query = `
		SELECT u.username, u.photo_url, p.points
		FROM participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.room_id = $1 AND p.status = $2
		ORDER BY p.points DESC, p.id ASC
	`

	var dtos []standingDTO
	if err := d.db.SelectContext(ctx, &dtos, query, roomID, model.PresenceOnline); err != nil {
		return nil, err
	}

	standings := make([]model.Standing, 0, len(dtos))
	for _, dto := range dtos {
		standings = append(standings, model.Standing{
			Username: dto.Username,
			PhotoURL: dto.PhotoURL,
			Points:   dto.Points,
		})
	}
	return standings, nil
}

func setStatusTx(ctx context.Context, tx *sqlx.Tx, roomID int64, status string) error {
	const query = `
		UPDATE rooms
		SET status = $1
		WHERE id = $2
	`

	result, err := tx.ExecContext(ctx, query, status, roomID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_room.ErrRoomNotFound
	}
	return nil
}

func (dto roomDTO) toModel() model.Room {
	return model.Room{
		ID:             dto.ID,
		Status:         dto.Status,
		OwnerID:        dto.OwnerID,
		LanguageFromID: dto.LanguageFromID,
		LanguageToID:   dto.LanguageToID,
		CreatedAt:      dto.CreatedAt.Time,
	}
}
