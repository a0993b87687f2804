package infra_redis_membership

import (
	"context"
	"strconv"

	"github.com/go-redis/redis"
)

const (
	roomKeyPrefix  = "room:"
	userRoomMapKey = "user_room_map"
)

// Driver is the shared membership index: a member set per room plus the
// reverse user -> room pointer. Every mutation is a single redis
// command, so concurrent workers racing on the same user never do a
// read-modify-write over the network.
type Driver struct {
	client *redis.Client
}

func New(client *redis.Client) *Driver {
	return &Driver{client: client}
}

func (d *Driver) AddUserToRoom(ctx context.Context, telegramID, roomID int64) error {
	if err := d.client.SAdd(roomKey(roomID), telegramID).Err(); err != nil {
		return err
	}
	return d.client.HSet(userRoomMapKey, formatID(telegramID), roomID).Err()
}

func (d *Driver) RemoveUserFromRoom(ctx context.Context, telegramID, roomID int64) error {
	if err := d.client.SRem(roomKey(roomID), telegramID).Err(); err != nil {
		return err
	}
	return d.client.HDel(userRoomMapKey, formatID(telegramID)).Err()
}

// RoomOfUser resolves the reverse pointer. The second result is false
// when the user has no recorded room.
func (d *Driver) RoomOfUser(ctx context.Context, telegramID int64) (int64, bool, error) {
	val, err := d.client.HGet(userRoomMapKey, formatID(telegramID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	roomID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return roomID, true, nil
}

func (d *Driver) UsersInRoom(ctx context.Context, roomID int64) ([]int64, error) {
	members, err := d.client.SMembers(roomKey(roomID)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func roomKey(roomID int64) string {
	return roomKeyPrefix + formatID(roomID)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
