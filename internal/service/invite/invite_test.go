package service_invite

import (
	"context"
	"encoding/json"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avelichko/wordbattle/internal/model"
	"github.com/avelichko/wordbattle/internal/service/invite/mocks"
	usecase_room "github.com/avelichko/wordbattle/internal/usecase/room"
)

type InviteServiceUnitSuite struct {
	suite.Suite
}

type resources struct {
	service  *Service
	bot      *mocks.Sender
	users    *mocks.UserDirectory
	rooms    *mocks.RoomSource
	notifier *mocks.Notifier
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	bot := mocks.NewSender(t)
	users := mocks.NewUserDirectory(t)
	rooms := mocks.NewRoomSource(t)
	notifier := mocks.NewNotifier(t)
	service := New(bot, users, rooms, notifier)

	return &resources{
		service:  service,
		bot:      bot,
		users:    users,
		rooms:    rooms,
		notifier: notifier,
		ctx:      context.Background(),
	}
}

func validRoom() model.Room {
	return model.Room{ID: 5, Status: model.RoomStatusActive, OwnerID: 1, LanguageFromID: 2, LanguageToID: 1}
}

func validUser() model.User {
	return model.User{ID: 2, TelegramID: 200, Username: "guest", PhotoURL: "http://p/2"}
}

func tgMessage() tgbotapi.Message {
	return tgbotapi.Message{MessageID: 1}
}

func (suite *InviteServiceUnitSuite) TestInvite(t provider.T) {
	t.Parallel()

	t.Run("Should message the user and confirm over the socket", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(), nil).Once()
		r.users.On("ByTelegramID", r.ctx, int64(200)).Return(validUser(), nil).Once()
		r.bot.On("Send", mock.Anything).Return(tgMessage(), nil).Once()
		r.notifier.On("SendTo", int64(200), mock.MatchedBy(func(payload []byte) bool {
			var probe struct {
				Type   string `json:"type"`
				RoomID int64  `json:"room_id"`
			}
			_ = json.Unmarshal(payload, &probe)
			return probe.Type == "invite_to_room" && probe.RoomID == 5
		})).Once()

		err := r.service.Invite(r.ctx, 200, 5)

		assert.NoError(t, err)
		r.bot.AssertExpectations(t)
		r.notifier.AssertExpectations(t)
	})

	t.Run("Should fail for an unknown room", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.rooms.On("Room", r.ctx, int64(5)).Return(model.Room{}, usecase_room.ErrRoomNotFound).Once()

		err := r.service.Invite(r.ctx, 200, 5)

		assert.ErrorIs(t, err, usecase_room.ErrRoomNotFound)
		r.bot.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("Should not confirm when the telegram message fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(), nil).Once()
		r.users.On("ByTelegramID", r.ctx, int64(200)).Return(validUser(), nil).Once()
		r.bot.On("Send", mock.Anything).Return(tgMessage(), assert.AnError).Once()

		err := r.service.Invite(r.ctx, 200, 5)

		assert.ErrorIs(t, err, usecase_room.ErrInternal)
		r.notifier.AssertNotCalled(t, "SendTo", mock.Anything, mock.Anything)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(InviteServiceUnitSuite))
}
