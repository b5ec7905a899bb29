package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// handleWebSocket upgrades the connection and hands it to the
// ConnectionManager, which owns subscription handling and event delivery.
func (s *Server) handleWebSocket(c *gin.Context) {
	if s.connManager == nil {
		writeError(c, http.StatusServiceUnavailable, "websocket not available")
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(s.cfg.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.AllowedWSOrigins
	} else {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	// HandleConnection blocks until the socket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
