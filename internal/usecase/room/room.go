package usecase_room

import (
	"context"
	"errors"
	"log/slog"

	"github.com/avelichko/wordbattle/internal/delivery/ws/event"
	"github.com/avelichko/wordbattle/internal/model"
)

var (
	ErrRoomNotFound = errors.New("no such room")
	ErrUserNotFound = errors.New("no such user")
	ErrInternal     = errors.New("internal error")
)

//go:generate mockery --name=RoomRepository --output=./mocks --outpkg=mocks --filename=RoomRepository.go
type RoomRepository interface {
	CreateRoom(ctx context.Context, ownerID, languageFromID, languageToID int64) (model.Room, error)
	Room(ctx context.Context, roomID int64) (model.Room, error)
	Rooms(ctx context.Context) ([]model.RoomWithCount, error)
	Join(ctx context.Context, roomID, userID int64, activate bool) error
	Leave(ctx context.Context, roomID, userID int64, pause bool) error
	OnlineCount(ctx context.Context, roomID int64) (int, error)
	Standings(ctx context.Context, roomID int64) ([]model.Standing, error)
}

//go:generate mockery --name=UserDirectory --output=./mocks --outpkg=mocks --filename=UserDirectory.go
type UserDirectory interface {
	ByTelegramID(ctx context.Context, telegramID int64) (model.User, error)
}

// MembershipIndex is the cross-process record of who is online in which
// room. Implementations must back every mutation by a single atomic
// store command; a user belongs to at most one room at a time.
//
//go:generate mockery --name=MembershipIndex --output=./mocks --outpkg=mocks --filename=MembershipIndex.go
type MembershipIndex interface {
	AddUserToRoom(ctx context.Context, telegramID, roomID int64) error
	RemoveUserFromRoom(ctx context.Context, telegramID, roomID int64) error
	RoomOfUser(ctx context.Context, telegramID int64) (int64, bool, error)
	UsersInRoom(ctx context.Context, roomID int64) ([]int64, error)
}

// Broadcaster delivers already-serialized events best effort; sends to
// absent or stale connections are silently dropped.
//
//go:generate mockery --name=Broadcaster --output=./mocks --outpkg=mocks --filename=Broadcaster.go
type Broadcaster interface {
	SendTo(telegramID int64, payload []byte)
	Broadcast(telegramIDs []int64, payload []byte)
	BroadcastAll(payload []byte)
}

type Usecase struct {
	rooms      RoomRepository
	users      UserDirectory
	membership MembershipIndex
	notifier   Broadcaster
	logger     *slog.Logger
}

func New(
	rooms RoomRepository,
	users UserDirectory,
	membership MembershipIndex,
	notifier Broadcaster,
) *Usecase {
	return &Usecase{
		rooms:      rooms,
		users:      users,
		membership: membership,
		notifier:   notifier,
		logger:     slog.Default(),
	}
}

// CreateRoom persists a new room owned by the given user and announces it
// to every connected client. The owner becomes an online participant of
// the room immediately.
func (u *Usecase) CreateRoom(ctx context.Context, telegramID, languageFromID, languageToID int64) (model.Room, error) {
	owner, err := u.users.ByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return model.Room{}, ErrUserNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}

	room, err := u.rooms.CreateRoom(ctx, owner.ID, languageFromID, languageToID)
	if err != nil {
		return model.Room{}, errors.Join(ErrInternal, err)
	}

	u.notifier.BroadcastAll(event.Marshal(event.NewRoomCreated(room, owner.Username)))
	return room, nil
}

func (u *Usecase) Rooms(ctx context.Context) ([]model.RoomWithCount, error) {
	rooms, err := u.rooms.Rooms(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return rooms, nil
}

// Join marks the user online in the room, activates the room when the
// owner arrives and notifies the room members. Joining twice is
// idempotent: the participant row and the membership entry stay unique.
// A user belongs to at most one room, so joining a new room first
// removes them from the previous one.
func (u *Usecase) Join(ctx context.Context, roomID, telegramID int64) error {
	user, room, err := u.resolve(ctx, roomID, telegramID)
	if err != nil {
		return err
	}

	activate := room.OwnerID == user.ID && room.Status != model.RoomStatusActive
	if err := u.rooms.Join(ctx, roomID, user.ID, activate); err != nil {
		return errors.Join(ErrInternal, err)
	}

	prevRoomID, ok, err := u.membership.RoomOfUser(ctx, telegramID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if ok && prevRoomID != roomID {
		if err := u.membership.RemoveUserFromRoom(ctx, telegramID, prevRoomID); err != nil {
			return errors.Join(ErrInternal, err)
		}
	}
	if err := u.membership.AddUserToRoom(ctx, telegramID, roomID); err != nil {
		return errors.Join(ErrInternal, err)
	}

	if activate {
		room.Status = model.RoomStatusActive
	}
	u.notifyMembers(ctx, event.TypeUserJoined, room, user)
	return nil
}

// Leave is symmetric to Join: the owner leaving pauses the room.
func (u *Usecase) Leave(ctx context.Context, roomID, telegramID int64) error {
	user, room, err := u.resolve(ctx, roomID, telegramID)
	if err != nil {
		return err
	}

	// Snapshot the member set before removal so the leaver still gets
	// the confirmation event.
	members, err := u.membership.UsersInRoom(ctx, roomID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}

	pause := room.OwnerID == user.ID
	if err := u.rooms.Leave(ctx, roomID, user.ID, pause); err != nil {
		return errors.Join(ErrInternal, err)
	}
	if err := u.membership.RemoveUserFromRoom(ctx, telegramID, roomID); err != nil {
		return errors.Join(ErrInternal, err)
	}

	if pause {
		room.Status = model.RoomStatusPaused
	}
	u.broadcastMemberEvent(ctx, event.TypeUserLeft, room, user, members)
	return nil
}

// DisconnectUser runs the leave flow for a dropped connection. Resolves
// the room through the reverse membership pointer; no-op when the user
// was not in any room.
func (u *Usecase) DisconnectUser(ctx context.Context, telegramID int64) error {
	roomID, ok, err := u.membership.RoomOfUser(ctx, telegramID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if !ok {
		return nil
	}
	return u.Leave(ctx, roomID, telegramID)
}

func (u *Usecase) resolve(ctx context.Context, roomID, telegramID int64) (model.User, model.Room, error) {
	user, err := u.users.ByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return model.User{}, model.Room{}, ErrUserNotFound
		}
		return model.User{}, model.Room{}, errors.Join(ErrInternal, err)
	}

	room, err := u.rooms.Room(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return model.User{}, model.Room{}, ErrRoomNotFound
		}
		return model.User{}, model.Room{}, errors.Join(ErrInternal, err)
	}

	return user, room, nil
}

func (u *Usecase) notifyMembers(ctx context.Context, eventType string, room model.Room, user model.User) {
	members, err := u.membership.UsersInRoom(ctx, room.ID)
	if err != nil {
		u.logger.Error("failed to load room members", "error", err, "room_id", room.ID)
		return
	}
	u.broadcastMemberEvent(ctx, eventType, room, user, members)
}

// broadcastMemberEvent fans a membership event out to the given member
// set. Always runs after the triggering mutation committed; failures to
// enrich the payload are logged, never surfaced to the caller.
func (u *Usecase) broadcastMemberEvent(ctx context.Context, eventType string, room model.Room, user model.User, members []int64) {
	count, err := u.rooms.OnlineCount(ctx, room.ID)
	if err != nil {
		u.logger.Error("failed to count online users", "error", err, "room_id", room.ID)
		return
	}
	standings, err := u.rooms.Standings(ctx, room.ID)
	if err != nil {
		u.logger.Error("failed to load standings", "error", err, "room_id", room.ID)
		return
	}

	u.notifier.Broadcast(members, event.Marshal(event.NewMembership(eventType, room, user.Username, count, standings)))
}
