package usecase_room

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avelichko/wordbattle/internal/model"
	"github.com/avelichko/wordbattle/internal/usecase/room/mocks"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	rooms      *mocks.RoomRepository
	users      *mocks.UserDirectory
	membership *mocks.MembershipIndex
	notifier   *mocks.Broadcaster
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	rooms := mocks.NewRoomRepository(t)
	users := mocks.NewUserDirectory(t)
	membership := mocks.NewMembershipIndex(t)
	notifier := mocks.NewBroadcaster(t)
	usecase := New(rooms, users, membership, notifier)

	return &resources{
		usecase:    usecase,
		rooms:      rooms,
		users:      users,
		membership: membership,
		notifier:   notifier,
		ctx:        context.Background(),
	}
}

func validOwner() model.User {
	return model.User{ID: 1, TelegramID: 100, Username: "owner", PhotoURL: "http://p/1"}
}

func validGuest() model.User {
	return model.User{ID: 2, TelegramID: 200, Username: "guest", PhotoURL: "http://p/2"}
}

func validRoom(status string) model.Room {
	return model.Room{
		ID:             5,
		Status:         status,
		OwnerID:        1,
		LanguageFromID: 2,
		LanguageToID:   1,
	}
}

func eventType(payload []byte) string {
	var probe struct {
		Type string `json:"type"`
	}
	_ = json.Unmarshal(payload, &probe)
	return probe.Type
}

func (suite *UsecaseRoomUnitSuite) TestCreateRoom(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should create room and notify everyone",
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(100)).Return(validOwner(), nil).Once()
				r.rooms.On("CreateRoom", r.ctx, int64(1), int64(2), int64(1)).
					Return(validRoom(model.RoomStatusCreated), nil).Once()
				r.notifier.On("BroadcastAll", mock.MatchedBy(func(payload []byte) bool {
					return eventType(payload) == "created_new_room"
				})).Once()
			},
			expectError: false,
		},
		{
			name: "Should fail when owner is unknown",
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(100)).Return(model.User{}, ErrUserNotFound).Once()
			},
			expectError:   true,
			expectedError: ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			room, err := r.usecase.CreateRoom(r.ctx, 100, 2, 1)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(5), room.ID)
			}
			r.rooms.AssertExpectations(t)
			r.notifier.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestJoin(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		times         int
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name:  "Should activate room when owner joins",
			times: 1,
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(100)).Return(validOwner(), nil).Once()
				r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(model.RoomStatusCreated), nil).Once()
				r.rooms.On("Join", r.ctx, int64(5), int64(1), true).Return(nil).Once()
				r.membership.On("RoomOfUser", r.ctx, int64(100)).Return(int64(0), false, nil).Once()
				r.membership.On("AddUserToRoom", r.ctx, int64(100), int64(5)).Return(nil).Once()
				r.membership.On("UsersInRoom", r.ctx, int64(5)).Return([]int64{100}, nil).Once()
				r.rooms.On("OnlineCount", r.ctx, int64(5)).Return(1, nil).Once()
				r.rooms.On("Standings", r.ctx, int64(5)).
					Return([]model.Standing{{Username: "owner", Points: 0}}, nil).Once()
				r.notifier.On("Broadcast", []int64{100}, mock.MatchedBy(func(payload []byte) bool {
					return eventType(payload) == "user_join"
				})).Once()
			},
			expectError: false,
		},
		{
			name:  "Should not touch room status when guest joins",
			times: 1,
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(200)).Return(validGuest(), nil).Once()
				r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(model.RoomStatusActive), nil).Once()
				r.rooms.On("Join", r.ctx, int64(5), int64(2), false).Return(nil).Once()
				r.membership.On("RoomOfUser", r.ctx, int64(200)).Return(int64(0), false, nil).Once()
				r.membership.On("AddUserToRoom", r.ctx, int64(200), int64(5)).Return(nil).Once()
				r.membership.On("UsersInRoom", r.ctx, int64(5)).Return([]int64{100, 200}, nil).Once()
				r.rooms.On("OnlineCount", r.ctx, int64(5)).Return(2, nil).Once()
				r.rooms.On("Standings", r.ctx, int64(5)).Return([]model.Standing{}, nil).Once()
				r.notifier.On("Broadcast", []int64{100, 200}, mock.Anything).Once()
			},
			expectError: false,
		},
		{
			name:  "Should stay idempotent on repeated join",
			times: 2,
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(200)).Return(validGuest(), nil).Times(2)
				r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(model.RoomStatusActive), nil).Times(2)
				r.rooms.On("Join", r.ctx, int64(5), int64(2), false).Return(nil).Times(2)
				r.membership.On("RoomOfUser", r.ctx, int64(200)).Return(int64(0), false, nil).Once()
				r.membership.On("RoomOfUser", r.ctx, int64(200)).Return(int64(5), true, nil).Once()
				r.membership.On("AddUserToRoom", r.ctx, int64(200), int64(5)).Return(nil).Times(2)
				r.membership.On("UsersInRoom", r.ctx, int64(5)).Return([]int64{100, 200}, nil).Times(2)
				r.rooms.On("OnlineCount", r.ctx, int64(5)).Return(2, nil).Times(2)
				r.rooms.On("Standings", r.ctx, int64(5)).Return([]model.Standing{}, nil).Times(2)
				r.notifier.On("Broadcast", []int64{100, 200}, mock.Anything).Times(2)
			},
			expectError: false,
		},
		{
			name:  "Should move user out of their previous room",
			times: 1,
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(200)).Return(validGuest(), nil).Once()
				r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(model.RoomStatusActive), nil).Once()
				r.rooms.On("Join", r.ctx, int64(5), int64(2), false).Return(nil).Once()
				r.membership.On("RoomOfUser", r.ctx, int64(200)).Return(int64(4), true, nil).Once()
				r.membership.On("RemoveUserFromRoom", r.ctx, int64(200), int64(4)).Return(nil).Once()
				r.membership.On("AddUserToRoom", r.ctx, int64(200), int64(5)).Return(nil).Once()
				r.membership.On("UsersInRoom", r.ctx, int64(5)).Return([]int64{100, 200}, nil).Once()
				r.rooms.On("OnlineCount", r.ctx, int64(5)).Return(2, nil).Once()
				r.rooms.On("Standings", r.ctx, int64(5)).Return([]model.Standing{}, nil).Once()
				r.notifier.On("Broadcast", []int64{100, 200}, mock.Anything).Once()
			},
			expectError: false,
		},
		{
			name:  "Should fail when room does not exist",
			times: 1,
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(200)).Return(validGuest(), nil).Once()
				r.rooms.On("Room", r.ctx, int64(5)).Return(model.Room{}, ErrRoomNotFound).Once()
			},
			expectError:   true,
			expectedError: ErrRoomNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			telegramID := int64(200)
			if tc.name == "Should activate room when owner joins" {
				telegramID = 100
			}

			var err error
			for i := 0; i < tc.times; i++ {
				err = r.usecase.Join(r.ctx, 5, telegramID)
			}

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			r.rooms.AssertExpectations(t)
			r.membership.AssertExpectations(t)
			r.notifier.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestLeave(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		setupMocks func(r *resources)
	}{
		{
			name: "Should pause room when owner leaves",
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(100)).Return(validOwner(), nil).Once()
				r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(model.RoomStatusActive), nil).Once()
				r.membership.On("UsersInRoom", r.ctx, int64(5)).Return([]int64{100, 200}, nil).Once()
				r.rooms.On("Leave", r.ctx, int64(5), int64(1), true).Return(nil).Once()
				r.membership.On("RemoveUserFromRoom", r.ctx, int64(100), int64(5)).Return(nil).Once()
				r.rooms.On("OnlineCount", r.ctx, int64(5)).Return(1, nil).Once()
				r.rooms.On("Standings", r.ctx, int64(5)).Return([]model.Standing{}, nil).Once()
				r.notifier.On("Broadcast", []int64{100, 200}, mock.MatchedBy(func(payload []byte) bool {
					return eventType(payload) == "user_leave"
				})).Once()
			},
		},
		{
			name: "Should keep room status when guest leaves",
			setupMocks: func(r *resources) {
				r.users.On("ByTelegramID", r.ctx, int64(100)).Return(validGuest(), nil).Once()
				r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(model.RoomStatusActive), nil).Once()
				r.membership.On("UsersInRoom", r.ctx, int64(5)).Return([]int64{100, 200}, nil).Once()
				r.rooms.On("Leave", r.ctx, int64(5), int64(2), false).Return(nil).Once()
				r.membership.On("RemoveUserFromRoom", r.ctx, int64(100), int64(5)).Return(nil).Once()
				r.rooms.On("OnlineCount", r.ctx, int64(5)).Return(1, nil).Once()
				r.rooms.On("Standings", r.ctx, int64(5)).Return([]model.Standing{}, nil).Once()
				r.notifier.On("Broadcast", []int64{100, 200}, mock.Anything).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.Leave(r.ctx, 5, 100)

			assert.NoError(t, err)
			r.rooms.AssertExpectations(t)
			r.membership.AssertExpectations(t)
			r.notifier.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestDisconnectUser(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		setupMocks func(r *resources)
	}{
		{
			name: "Should be no-op when user has no room",
			setupMocks: func(r *resources) {
				r.membership.On("RoomOfUser", r.ctx, int64(100)).Return(int64(0), false, nil).Once()
			},
		},
		{
			name: "Should run leave flow for the resolved room",
			setupMocks: func(r *resources) {
				r.membership.On("RoomOfUser", r.ctx, int64(100)).Return(int64(5), true, nil).Once()
				r.users.On("ByTelegramID", r.ctx, int64(100)).Return(validOwner(), nil).Once()
				r.rooms.On("Room", r.ctx, int64(5)).Return(validRoom(model.RoomStatusActive), nil).Once()
				r.membership.On("UsersInRoom", r.ctx, int64(5)).Return([]int64{100}, nil).Once()
				r.rooms.On("Leave", r.ctx, int64(5), int64(1), true).Return(nil).Once()
				r.membership.On("RemoveUserFromRoom", r.ctx, int64(100), int64(5)).Return(nil).Once()
				r.rooms.On("OnlineCount", r.ctx, int64(5)).Return(0, nil).Once()
				r.rooms.On("Standings", r.ctx, int64(5)).Return([]model.Standing{}, nil).Once()
				r.notifier.On("Broadcast", []int64{100}, mock.Anything).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.DisconnectUser(r.ctx, 100)

			assert.NoError(t, err)
			r.membership.AssertExpectations(t)
			r.notifier.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestRooms(t provider.T) {
	t.Parallel()

	t.Run("Should list rooms with online counts", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.rooms.On("Rooms", r.ctx).Return([]model.RoomWithCount{
			{Room: validRoom(model.RoomStatusActive), OnlineCount: 2},
		}, nil).Once()

		rooms, err := r.usecase.Rooms(r.ctx)

		assert.NoError(t, err)
		assert.Len(t, rooms, 1)
		assert.Equal(t, 2, rooms[0].OnlineCount)
		r.rooms.AssertExpectations(t)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}
