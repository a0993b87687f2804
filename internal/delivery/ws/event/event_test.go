package event

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avelichko/wordbattle/internal/model"
)

func TestMarshalDiscriminators(t *testing.T) {
	room := model.Room{ID: 5, Status: model.RoomStatusActive, LanguageFromID: 2, LanguageToID: 1}

	testCases := []struct {
		name         string
		event        Event
		expectedType string
	}{
		{"room created", NewRoomCreated(room, "owner"), "created_new_room"},
		{"user join", NewMembership(TypeUserJoined, room, "guest", 2, nil), "user_join"},
		{"user leave", NewMembership(TypeUserLeft, room, "guest", 1, nil), "user_leave"},
		{"answer result", NewAnswerResult(model.User{Username: "guest"}, true, uuid.New(), uuid.New(), nil), "check_competition_answer"},
		{"question", NewQuestion(model.Question{}), "new_question"},
		{"invite", NewInvite(room), "invite_to_room"},
		{"round error", NewRoundError(5, MsgOwnerNotInRoom), "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var probe struct {
				Type string `json:"type"`
			}
			assert.NoError(t, json.Unmarshal(Marshal(tc.event), &probe))
			assert.Equal(t, tc.expectedType, probe.Type)
		})
	}
}

func TestMembershipPayload(t *testing.T) {
	room := model.Room{ID: 5, Status: model.RoomStatusPaused}
	standings := []model.Standing{
		{Username: "owner", PhotoURL: "http://p/1", Points: 20},
		{Username: "guest", PhotoURL: "http://p/2", Points: -10},
	}

	payload := Marshal(NewMembership(TypeUserLeft, room, "owner", 1, standings))

	var decoded Membership
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, int64(5), decoded.RoomID)
	assert.Equal(t, model.RoomStatusPaused, decoded.StatusRoom)
	assert.Equal(t, 1, decoded.UsersCount)
	assert.Len(t, decoded.Users, 2)
	assert.Equal(t, 20, decoded.Users[0].Points)
}

func TestRoundErrorPayload(t *testing.T) {
	payload := Marshal(NewRoundError(5, MsgOwnerLeave))

	var decoded RoundError
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, int64(5), decoded.RoomID)
	assert.Equal(t, MsgOwnerLeave, decoded.Message)
}
