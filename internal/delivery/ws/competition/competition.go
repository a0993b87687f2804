package ws_competition

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/avelichko/wordbattle/internal/registry"
	usecase_room "github.com/avelichko/wordbattle/internal/usecase/room"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // ! Change on NGINX setup
}

// Controller owns the duplex endpoint. A client identifies itself with
// a registration frame {"telegram_id": N}; everything else the client
// does goes through the HTTP surface, the socket is for server pushes.
type Controller struct {
	registry *registry.Registry
	rooms    *usecase_room.Usecase
	logger   *slog.Logger
}

func New(reg *registry.Registry, rooms *usecase_room.Usecase) *Controller {
	return &Controller{
		registry: reg,
		rooms:    rooms,
		logger:   slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/competitions/ws", c.serve)
}

type registrationDTO struct {
	TelegramID int64 `json:"telegram_id"`
}

func (c *Controller) serve(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	go c.readLoop(conn)
}

// readLoop pumps registration frames until the transport closes, then
// runs the disconnect flow for the last registered identity.
func (c *Controller) readLoop(conn *websocket.Conn) {
	var telegramID int64
	defer func() {
		conn.Close()
		if telegramID == 0 {
			return
		}
		c.registry.Unregister(telegramID)
		if err := c.rooms.DisconnectUser(context.Background(), telegramID); err != nil {
			c.logger.Error("disconnect cleanup failed",
				slog.Int64("telegram_id", telegramID),
				slog.String("error", err.Error()))
		}
	}()

	for {
		var reg registrationDTO
		if err := conn.ReadJSON(&reg); err != nil {
			return
		}
		if reg.TelegramID == 0 {
			continue
		}

		telegramID = reg.TelegramID
		c.registry.Register(telegramID, conn)
	}
}
