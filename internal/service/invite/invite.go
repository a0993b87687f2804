package service_invite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avelichko/wordbattle/internal/delivery/ws/event"
	"github.com/avelichko/wordbattle/internal/model"
	usecase_room "github.com/avelichko/wordbattle/internal/usecase/room"
)

// Sender is the outbound slice of the bot API. *tgbotapi.BotAPI
// satisfies it.
//
//go:generate mockery --name=Sender --output=./mocks --outpkg=mocks --filename=Sender.go
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

//go:generate mockery --name=UserDirectory --output=./mocks --outpkg=mocks --filename=UserDirectory.go
type UserDirectory interface {
	ByTelegramID(ctx context.Context, telegramID int64) (model.User, error)
}

//go:generate mockery --name=RoomSource --output=./mocks --outpkg=mocks --filename=RoomSource.go
type RoomSource interface {
	Room(ctx context.Context, roomID int64) (model.Room, error)
}

// Notifier pushes the in-app confirmation to the invited user. Delivery
// is best effort; a user without a live connection just misses it.
//
//go:generate mockery --name=Notifier --output=./mocks --outpkg=mocks --filename=Notifier.go
type Notifier interface {
	SendTo(telegramID int64, payload []byte)
}

// Service sends room invites to users over telegram.
type Service struct {
	bot      Sender
	users    UserDirectory
	rooms    RoomSource
	notifier Notifier
	logger   *slog.Logger
}

func New(bot Sender, users UserDirectory, rooms RoomSource, notifier Notifier) *Service {
	return &Service{
		bot:      bot,
		users:    users,
		rooms:    rooms,
		notifier: notifier,
		logger:   slog.Default(),
	}
}

func MustEstablishBot(token string) *tgbotapi.BotAPI {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		panic(fmt.Sprintf("telegram bot init failed: %v", err))
	}
	return bot
}

// Invite messages the user with a pointer to the room and, when they
// hold a live connection, confirms over the websocket as well. The
// invite does not join the user; they still join through the room
// endpoint.
func (s *Service) Invite(ctx context.Context, telegramID, roomID int64) error {
	room, err := s.rooms.Room(ctx, roomID)
	if err != nil {
		if errors.Is(err, usecase_room.ErrRoomNotFound) {
			return usecase_room.ErrRoomNotFound
		}
		return errors.Join(usecase_room.ErrInternal, err)
	}

	user, err := s.users.ByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, usecase_room.ErrUserNotFound) {
			return usecase_room.ErrUserNotFound
		}
		return errors.Join(usecase_room.ErrInternal, err)
	}

	text := fmt.Sprintf("You were invited to competition room %d. Open the app to join!", room.ID)
	if _, err := s.bot.Send(tgbotapi.NewMessage(user.TelegramID, text)); err != nil {
		return errors.Join(usecase_room.ErrInternal, err)
	}

	s.notifier.SendTo(user.TelegramID, event.Marshal(event.NewInvite(room)))

	s.logger.Info("invite sent", "telegram_id", telegramID, "room_id", roomID)
	return nil
}
