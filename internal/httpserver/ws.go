package httpserver

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordboard/internal/input"
)

// keyMsg is what a socket client sends per key press.
type keyMsg struct {
	Key string `json:"key"`
}

// handleSocket streams a session: the current snapshot on connect, then one
// snapshot after every key message.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	up := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("websocket upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(512)

	send := func() error {
		_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		return conn.WriteJSON(toSnapshotJSON(sess.Engine.Snapshot()))
	}
	if err := send(); err != nil {
		return
	}
	for {
		var msg keyMsg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("session", sess.ID).Msg("websocket closed")
			}
			return
		}
		input.Apply(sess.Engine, input.FromKeyName(msg.Key))
		if err := send(); err != nil {
			return
		}
	}
}

// checkOrigin accepts non-browser clients, the configured client origin and
// same-host pages.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == s.cfg.ClientOrigin {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && u.Host == r.Host
}
