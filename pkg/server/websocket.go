package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	markuperrors "github.com/vango-dev/markup/internal/errors"
)

const wsWriteTimeout = 10 * time.Second

// handleWebSocket serves live rendering. Each text frame is decoded as a
// document and answered with one text frame: the HTML, or an error JSON
// object. Frames are handled in order; a failed document does not close
// the connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	defer conn.Close()

	if s.metrics != nil {
		s.metrics.ConnectionOpened()
		defer s.metrics.ConnectionClosed()
	}
	conn.SetReadLimit(s.config.MaxDocumentSize)

	ctx := r.Context()
	for frame := 0; ; frame++ {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket read failed", "error", err, "remote", r.RemoteAddr)
			}
			return
		}

		var reply string
		if kind != websocket.TextMessage {
			reply = errorBody(markuperrors.New("E110").WithDetail("documents must be sent as text frames"))
		} else if root, err := s.decoder.Decode(data, "frame"); err != nil {
			reply = errorBody(err)
		} else if text, err := s.renderDocument(ctx, root); err != nil {
			s.logger.Error("live render failed", "error", err, "frame", frame)
			reply = errorBody(err)
		} else {
			reply = text
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			s.logger.Warn("websocket write failed", "error", err, "remote", r.RemoteAddr)
			return
		}
	}
}
