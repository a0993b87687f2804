package http_room

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	http_common "github.com/avelichko/wordbattle/internal/delivery/http/common"
	"github.com/avelichko/wordbattle/internal/model"
	usecase_room "github.com/avelichko/wordbattle/internal/usecase/room"
)

type Controller struct {
	usecase *usecase_room.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_room.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/competitions/rooms")
	{
		rooms.GET("", c.list)
		rooms.POST("", c.create)
		rooms.POST("/:room_id/join", c.join)
		rooms.PATCH("/:room_id/leave", c.leave)
	}
}

type CreateRoomRequestDTO struct {
	TelegramID     int64 `json:"telegram_id" binding:"required"`
	LanguageFromID int64 `json:"language_from_id" binding:"required"`
	LanguageToID   int64 `json:"language_to_id" binding:"required"`
}

type RoomResponseDTO struct {
	RoomID         int64     `json:"room_id"`
	Status         string    `json:"status"`
	OwnerID        int64     `json:"owner_id"`
	LanguageFromID int64     `json:"language_from_id"`
	LanguageToID   int64     `json:"language_to_id"`
	CreatedAt      time.Time `json:"created_at"`
	OnlineCount    int       `json:"online_count"`
}

type MemberRequestDTO struct {
	TelegramID int64 `json:"telegram_id" binding:"required"`
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateRoomRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	room, err := c.usecase.CreateRoom(ctx, req.TelegramID, req.LanguageFromID, req.LanguageToID)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, toRoomDTO(room, 1 /* owner is online */))
}

func (c *Controller) list(ctx *gin.Context) {
	rooms, err := c.usecase.Rooms(ctx)
	if err != nil {
		c.logger.Error("failed to list rooms", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dtos := make([]RoomResponseDTO, 0, len(rooms))
	for _, room := range rooms {
		dtos = append(dtos, toRoomDTO(room.Room, room.OnlineCount))
	}
	ctx.JSON(http.StatusOK, dtos)
}

func (c *Controller) join(ctx *gin.Context) {
	c.updateMembership(ctx, "join", c.usecase.Join)
}

func (c *Controller) leave(ctx *gin.Context) {
	c.updateMembership(ctx, "leave", c.usecase.Leave)
}

func (c *Controller) updateMembership(ctx *gin.Context, action string, op func(ctx context.Context, roomID, telegramID int64) error) {
	roomID, ok := parseRoomID(ctx)
	if !ok {
		return
	}

	var req MemberRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	if err := op(ctx, roomID, req.TelegramID); err != nil {
		c.logger.Error("failed to update room membership",
			slog.String("action", action),
			slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrRoomNotFound) || errors.Is(err, usecase_room.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusOK)
}

func toRoomDTO(room model.Room, onlineCount int) RoomResponseDTO {
	return RoomResponseDTO{
		RoomID:         room.ID,
		Status:         room.Status,
		OwnerID:        room.OwnerID,
		LanguageFromID: room.LanguageFromID,
		LanguageToID:   room.LanguageToID,
		CreatedAt:      room.CreatedAt,
		OnlineCount:    onlineCount,
	}
}

func parseRoomID(ctx *gin.Context) (int64, bool) {
	roomID, err := strconv.ParseInt(ctx.Param("room_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid room id",
		})
		return 0, false
	}
	return roomID, true
}
