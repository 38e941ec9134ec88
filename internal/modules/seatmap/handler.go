package seatmap

import (
	"log"
	"net/http"
	"strconv"

	"busbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterPublicRoutes mounts the seat-map feed; anyone browsing an
// expedition may watch it.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/expeditions/:id/seatmap/ws", h.Watch)
}

func (h *Handler) Watch(c *gin.Context) {
	expeditionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || expeditionID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expedition id")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("seatmap upgrade failed expedition_id=%d err=%v", expeditionID, err)
		return
	}

	h.hub.Register(expeditionID, conn)
	defer h.hub.Unregister(expeditionID, conn)

	// the feed is push-only; the read loop just detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
