package event

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avelichko/wordbattle/internal/model"
)

// Wire values of the "type" discriminator every pushed message carries.
const (
	TypeRoomCreated = "created_new_room"
	TypeUserJoined  = "user_join"
	TypeUserLeft    = "user_leave"
	TypeAnswer      = "check_competition_answer"
	TypeQuestion    = "new_question"
	TypeInvite      = "invite_to_room"
	TypeError       = "error"
)

// Error messages carried by TypeError events.
const (
	MsgOwnerNotInRoom = "owner_not_in_room"
	MsgOwnerLeave     = "owner_leave"
)

// Event is the closed set of messages pushed over the competition socket.
// Every variant serializes to a JSON object with a "type" discriminator.
type Event interface {
	isEvent()
}

type RoomCreated struct {
	Type     string   `json:"type"`
	RoomData RoomData `json:"room_data"`
}

type RoomData struct {
	RoomID         int64  `json:"room_id"`
	Owner          string `json:"owner"`
	LanguageFromID int64  `json:"language_from_id"`
	LanguageToID   int64  `json:"language_to_id"`
}

func NewRoomCreated(room model.Room, ownerUsername string) RoomCreated {
	return RoomCreated{
		Type: TypeRoomCreated,
		RoomData: RoomData{
			RoomID:         room.ID,
			Owner:          ownerUsername,
			LanguageFromID: room.LanguageFromID,
			LanguageToID:   room.LanguageToID,
		},
	}
}

// Membership is the shared shape of user_join and user_leave events.
type Membership struct {
	Type       string     `json:"type"`
	RoomID     int64      `json:"room_id"`
	Username   string     `json:"username"`
	StatusRoom string     `json:"status_room"`
	UsersCount int        `json:"users_count"`
	Users      []Standing `json:"users"`
}

type Standing struct {
	Username     string `json:"username"`
	UserPhotoURL string `json:"user_photo_url"`
	Points       int    `json:"points"`
}

func NewMembership(eventType string, room model.Room, username string, count int, standings []model.Standing) Membership {
	return Membership{
		Type:       eventType,
		RoomID:     room.ID,
		Username:   username,
		StatusRoom: room.Status,
		UsersCount: count,
		Users:      convertStandings(standings),
	}
}

type Question struct {
	Type             string           `json:"type"`
	WordForTranslate model.WordInfo   `json:"word_for_translate"`
	OtherWords       []model.WordInfo `json:"other_words"`
}

func NewQuestion(q model.Question) Question {
	return Question{
		Type:             TypeQuestion,
		WordForTranslate: q.WordForTranslate,
		OtherWords:       q.OtherWords,
	}
}

type AnswerResult struct {
	Type           string       `json:"type"`
	AnsweredUser   AnsweredUser `json:"answered_user"`
	SelectedWordID uuid.UUID    `json:"selected_word_id"`
	CorrectWordID  uuid.UUID    `json:"correct_word_id"`
	Users          []Standing   `json:"users"`
}

type AnsweredUser struct {
	Username     string `json:"username"`
	UserPhotoURL string `json:"user_photo_url"`
	Success      bool   `json:"success"`
}

func NewAnswerResult(user model.User, success bool, selected, correct uuid.UUID, standings []model.Standing) AnswerResult {
	return AnswerResult{
		Type: TypeAnswer,
		AnsweredUser: AnsweredUser{
			Username:     user.Username,
			UserPhotoURL: user.PhotoURL,
			Success:      success,
		},
		SelectedWordID: selected,
		CorrectWordID:  correct,
		Users:          convertStandings(standings),
	}
}

// Invite confirms to a connected user that they were invited to a room.
type Invite struct {
	Type           string `json:"type"`
	RoomID         int64  `json:"room_id"`
	LanguageFromID int64  `json:"language_from_id"`
	LanguageToID   int64  `json:"language_to_id"`
}

func NewInvite(room model.Room) Invite {
	return Invite{
		Type:           TypeInvite,
		RoomID:         room.ID,
		LanguageFromID: room.LanguageFromID,
		LanguageToID:   room.LanguageToID,
	}
}

type RoundError struct {
	Type    string `json:"type"`
	RoomID  int64  `json:"room_id"`
	Message string `json:"message"`
}

func NewRoundError(roomID int64, message string) RoundError {
	return RoundError{
		Type:    TypeError,
		RoomID:  roomID,
		Message: message,
	}
}

func (RoomCreated) isEvent()  {}
func (Membership) isEvent()   {}
func (Question) isEvent()     {}
func (AnswerResult) isEvent() {}
func (Invite) isEvent()       {}
func (RoundError) isEvent()   {}

// Marshal serializes an event for the wire. Event variants are plain
// data, a marshal failure here is a programming error.
func Marshal(ev Event) []byte {
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Default().Error("failed to marshal event", "error", err)
		return nil
	}
	return payload
}

func convertStandings(standings []model.Standing) []Standing {
	users := make([]Standing, 0, len(standings))
	for _, s := range standings {
		users = append(users, Standing{
			Username:     s.Username,
			UserPhotoURL: s.PhotoURL,
			Points:       s.Points,
		})
	}
	return users
}
