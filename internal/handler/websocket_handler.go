package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"MBAConnect_SeniorMatching/internal/presenter"
	"MBAConnect_SeniorMatching/internal/roster"
	"MBAConnect_SeniorMatching/internal/session"
)

const (
	wsWriteWait   = 10 * time.Second
	wsPongWait    = 60 * time.Second
	wsPingPeriod  = (wsPongWait * 9) / 10
	wsMaxReadSize = 512
)

// HandleSessionStream godoc
// @Summary      세션 상태 WebSocket 스트림
// @Description  연결 즉시 현재 세션 상태를 JSON 으로 보내고, 이후 상태가 바뀔 때마다 새 상태를 보냅니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴으로 연결해야 하며, 세션은 쿠키로 식별됩니다.
// @Description  클라이언트가 보내는 메시지는 무시됩니다.
// @Tags         WebSocket (Session)
// @Success      101  {object}  presenter.SessionView  "101 Switching Protocols, 이후 상태 메시지"
// @Failure      500  {object}  handler.ErrorResponse
// @Router       /ws/session [get]
func (h *Handler) HandleSessionStream(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade가 이미 에러 응답을 작성함
		h.logger.Warn("HandleSessionStream(): failed to upgrade to WebSocket", zap.String("session", s.ID()), zap.Error(err))
		return
	}
	defer conn.Close()

	log := h.logger.With(zap.String("session", s.ID()))
	log.Debug("HandleSessionStream(): connection established")

	updates, unsubscribe := s.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	go func() {
		defer cancel()
		sessionReadPump(conn, log)
	}()
	sessionWritePump(ctx, conn, updates, h.roster, log)

	log.Debug("HandleSessionStream(): connection closed")
}

// sessionReadPump drains client frames so control messages (pong, close) are
// processed. It returns when the connection fails or is closed.
func sessionReadPump(conn *websocket.Conn, log *zap.Logger) {
	conn.SetReadLimit(wsMaxReadSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("sessionReadPump(): read error", zap.Error(err))
			}
			return
		}
	}
}

func sessionWritePump(ctx context.Context, conn *websocket.Conn, updates <-chan session.Snapshot, r *roster.Roster, log *zap.Logger) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(wsWriteWait))
			return

		case snap, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(presenter.Present(snap, r)); err != nil {
				log.Debug("sessionWritePump(): failed to send session state", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
