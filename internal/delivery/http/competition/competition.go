package http_competition

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/avelichko/wordbattle/internal/delivery/http/common"
	service_invite "github.com/avelichko/wordbattle/internal/service/invite"
	usecase_competition "github.com/avelichko/wordbattle/internal/usecase/competition"
)

type Controller struct {
	usecase *usecase_competition.Usecase
	invites *service_invite.Service
	logger  *slog.Logger
}

func New(usecase *usecase_competition.Usecase, invites *service_invite.Service) *Controller {
	return &Controller{
		usecase: usecase,
		invites: invites,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	competitions := router.Group("/competitions")
	{
		competitions.GET("/rooms/:room_id/start", c.start)
		competitions.PATCH("/check-answer", c.checkAnswer)
		competitions.GET("/invite-to-room", c.invite)
	}
}

func (c *Controller) start(ctx *gin.Context) {
	roomID, err := strconv.ParseInt(ctx.Param("room_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid room id",
		})
		return
	}

	if err := c.usecase.Start(ctx, roomID); err != nil {
		c.logger.Error("failed to start round", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_competition.ErrRoomNotFound),
			errors.Is(err, usecase_competition.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.Status(http.StatusOK)
}

type CheckAnswerRequestDTO struct {
	TelegramID         int64     `json:"telegram_id" binding:"required"`
	RoomID             int64     `json:"room_id" binding:"required"`
	WordForTranslateID uuid.UUID `json:"word_for_translate_id" binding:"required"`
	UserWordID         uuid.UUID `json:"user_word_id" binding:"required"`
}

type CheckAnswerResponseDTO struct {
	Success bool `json:"success"`
}

func (c *Controller) checkAnswer(ctx *gin.Context) {
	var req CheckAnswerRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	success, err := c.usecase.CheckAnswer(ctx, req.RoomID, req.TelegramID, req.WordForTranslateID, req.UserWordID)
	if err != nil {
		c.logger.Error("failed to check answer", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_competition.ErrUserNotFound),
			errors.Is(err, usecase_competition.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, CheckAnswerResponseDTO{Success: success})
}

func (c *Controller) invite(ctx *gin.Context) {
	telegramID, err := strconv.ParseInt(ctx.Query("telegram_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid telegram id",
		})
		return
	}
	roomID, err := strconv.ParseInt(ctx.Query("room_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid room id",
		})
		return
	}

	if err := c.invites.Invite(ctx, telegramID, roomID); err != nil {
		c.logger.Error("failed to send invite", slog.String("error", err.Error()))
		if errors.Is(err, usecase_competition.ErrRoomNotFound) || errors.Is(err, usecase_competition.ErrUserNotFound) {
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
