package usecase_competition

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avelichko/wordbattle/internal/delivery/ws/event"
	"github.com/avelichko/wordbattle/internal/model"
	usecase_room "github.com/avelichko/wordbattle/internal/usecase/room"
)

var (
	ErrRoomNotFound     = usecase_room.ErrRoomNotFound
	ErrUserNotFound     = usecase_room.ErrUserNotFound
	ErrQuestionNotFound = errors.New("no question for language pair")
	ErrInternal         = usecase_room.ErrInternal
)

const (
	winPoints  = 10
	losePoints = -10
)

// CompetitionRepository covers the room status reads and the score
// ledger writes the orchestrator needs.
//
//go:generate mockery --name=CompetitionRepository --output=./mocks --outpkg=mocks --filename=CompetitionRepository.go
type CompetitionRepository interface {
	Room(ctx context.Context, roomID int64) (model.Room, error)
	SetStatus(ctx context.Context, roomID int64, status string) error
	OwnerOnline(ctx context.Context, roomID int64) (bool, error)
	AdjustPoints(ctx context.Context, roomID, userID int64, delta int) error
	Standings(ctx context.Context, roomID int64) ([]model.Standing, error)
}

//go:generate mockery --name=QuestionProvider --output=./mocks --outpkg=mocks --filename=QuestionProvider.go
type QuestionProvider interface {
	RandomQuestion(ctx context.Context, languageFromID, languageToID int64) (model.Question, error)
	Translation(ctx context.Context, wordID uuid.UUID) (model.WordInfo, error)
}

//go:generate mockery --name=UserDirectory --output=./mocks --outpkg=mocks --filename=UserDirectory.go
type UserDirectory interface {
	ByTelegramID(ctx context.Context, telegramID int64) (model.User, error)
}

//go:generate mockery --name=MembershipIndex --output=./mocks --outpkg=mocks --filename=MembershipIndex.go
type MembershipIndex interface {
	UsersInRoom(ctx context.Context, roomID int64) ([]int64, error)
}

//go:generate mockery --name=Broadcaster --output=./mocks --outpkg=mocks --filename=Broadcaster.go
type Broadcaster interface {
	Broadcast(telegramIDs []int64, payload []byte)
}

// Usecase drives one round-trip of the live quiz for an active room:
// question out, one answer in, standings out, next question after a
// fixed delay. A round advances on the first answer from any member.
type Usecase struct {
	repo       CompetitionRepository
	questions  QuestionProvider
	users      UserDirectory
	membership MembershipIndex
	notifier   Broadcaster
	roundDelay time.Duration
	logger     *slog.Logger
}

func New(
	repo CompetitionRepository,
	questions QuestionProvider,
	users UserDirectory,
	membership MembershipIndex,
	notifier Broadcaster,
	roundDelay time.Duration,
) *Usecase {
	if roundDelay <= 0 {
		roundDelay = 3 * time.Second /* default, lets clients render the result */
	}

	return &Usecase{
		repo:       repo,
		questions:  questions,
		users:      users,
		membership: membership,
		notifier:   notifier,
		roundDelay: roundDelay,
		logger:     slog.Default(),
	}
}

// Start verifies the owner is present, activates the room if needed and
// pushes the first question to every online member. An absent owner is
// not an error for the caller: the room gets an error event and this
// start attempt ends.
func (u *Usecase) Start(ctx context.Context, roomID int64) error {
	room, err := u.repo.Room(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	ownerOnline, err := u.repo.OwnerOnline(ctx, roomID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if !ownerOnline {
		u.broadcastToRoom(ctx, roomID, event.Marshal(event.NewRoundError(roomID, event.MsgOwnerNotInRoom)))
		return nil
	}

	if room.Status != model.RoomStatusActive {
		if err := u.repo.SetStatus(ctx, roomID, model.RoomStatusActive); err != nil {
			return errors.Join(ErrInternal, err)
		}
	}

	return u.broadcastQuestion(ctx, room)
}

// CheckAnswer scores a single answer and rebroadcasts the room state.
// The answering user gains or loses points with a single atomic ledger
// update, so concurrent answers from different users never conflict.
// When the room is still active after the fixed delay the next question
// goes out; when the owner left in between the room learns that instead.
func (u *Usecase) CheckAnswer(ctx context.Context, roomID, telegramID int64, wordForTranslateID, chosenWordID uuid.UUID) (bool, error) {
	user, err := u.users.ByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, ErrUserNotFound
		}
		return false, errors.Join(ErrInternal, err)
	}

	correct, err := u.questions.Translation(ctx, wordForTranslateID)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			return false, ErrQuestionNotFound
		}
		return false, errors.Join(ErrInternal, err)
	}
	success := chosenWordID == correct.ID

	delta := losePoints
	if success {
		delta = winPoints
	}
	if err := u.repo.AdjustPoints(ctx, roomID, user.ID, delta); err != nil {
		return false, errors.Join(ErrInternal, err)
	}

	room, err := u.repo.Room(ctx, roomID)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	if room.Status != model.RoomStatusActive {
		u.broadcastToRoom(ctx, roomID, event.Marshal(event.NewRoundError(roomID, event.MsgOwnerLeave)))
		return success, nil
	}

	standings, err := u.repo.Standings(ctx, roomID)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	u.broadcastToRoom(ctx, roomID, event.Marshal(event.NewAnswerResult(user, success, chosenWordID, correct.ID, standings)))

	// Plain timed suspension between rounds. Not cancellable: room
	// deactivation during the window is detected by the re-check below.
	time.Sleep(u.roundDelay)

	room, err = u.repo.Room(ctx, roomID)
	if err != nil {
		return success, errors.Join(ErrInternal, err)
	}
	if room.Status != model.RoomStatusActive {
		u.broadcastToRoom(ctx, roomID, event.Marshal(event.NewRoundError(roomID, event.MsgOwnerLeave)))
		return success, nil
	}

	if err := u.broadcastQuestion(ctx, room); err != nil {
		return success, err
	}
	return success, nil
}

func (u *Usecase) broadcastQuestion(ctx context.Context, room model.Room) error {
	question, err := u.questions.RandomQuestion(ctx, room.LanguageFromID, room.LanguageToID)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			return ErrQuestionNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	u.broadcastToRoom(ctx, room.ID, event.Marshal(event.NewQuestion(question)))
	return nil
}

func (u *Usecase) broadcastToRoom(ctx context.Context, roomID int64, payload []byte) {
	members, err := u.membership.UsersInRoom(ctx, roomID)
	if err != nil {
		u.logger.Error("failed to load room members", "error", err, "room_id", roomID)
		return
	}
	u.notifier.Broadcast(members, payload)
}
