package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoomStatusCreated = "created"
	RoomStatusActive  = "active"
	RoomStatusPaused  = "paused"
)

const (
	PresenceOnline  = "online"
	PresenceOffline = "offline"
)

type Room struct {
	ID             int64
	Status         string
	OwnerID        int64
	LanguageFromID int64
	LanguageToID   int64
	CreatedAt      time.Time
}

// RoomWithCount annotates a room with its live online participant count.
type RoomWithCount struct {
	Room
	OnlineCount int
}

type Participant struct {
	ID       int64
	RoomID   int64
	UserID   int64
	Points   int
	Presence string
}

// Standing is one row of a room leaderboard. Ordered by points descending,
// ties resolved by participant row id (join order).
type Standing struct {
	Username string
	PhotoURL string
	Points   int
}

type WordInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Question is a single quiz round payload: the word to translate plus the
// shuffled answer options (distractors and the correct translation).
type Question struct {
	WordForTranslate WordInfo
	OtherWords       []WordInfo
}
