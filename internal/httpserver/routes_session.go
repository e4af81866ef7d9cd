// internal/httpserver/routes_session.go
//
// Board session routes. Every mutating route replies with the session's
// snapshot so clients render from a single source of truth.
//
//   - POST /session/new               → create a session ("normal" | "daily")
//   - GET  /session/{id}              → current snapshot
//   - POST /session/{id}/letter       → {"letter":"a"}
//   - POST /session/{id}/backspace
//   - POST /session/{id}/key          → {"key":"Backspace"} browser key names
//   - POST /session/{id}/round        → abandon the round and start another
//   - DELETE /session/{id}            → drop the session
//
// Malformed letters are ignored by the engine and still answered with the
// unchanged snapshot.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordboard/internal/daily"
	"github.com/robalobadob/wordboard/internal/database"
	"github.com/robalobadob/wordboard/internal/game"
	"github.com/robalobadob/wordboard/internal/input"
	"github.com/robalobadob/wordboard/internal/store"
)

const (
	modeNormal = "normal"
	modeDaily  = "daily"
)

func (s *Server) mountSessions(r chi.Router) {
	r.Post("/session/new", s.handleNewSession)
	r.Get("/session/{id}", s.withSession(func(w http.ResponseWriter, r *http.Request, sess *store.Session) {}))
	r.Post("/session/{id}/letter", s.withSession(s.handleLetter))
	r.Post("/session/{id}/backspace", s.withSession(func(w http.ResponseWriter, r *http.Request, sess *store.Session) {
		sess.Engine.SubmitBackspace()
	}))
	r.Post("/session/{id}/key", s.withSession(s.handleKey))
	r.Post("/session/{id}/round", s.withSession(func(w http.ResponseWriter, r *http.Request, sess *store.Session) {
		sess.Engine.NewRound()
	}))
	r.Delete("/session/{id}", s.handleDeleteSession)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	if err := database.AbandonSession(r.Context(), s.db, sess.ID); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("abandon rounds")
	}
	log.Info().Str("session", sess.ID).Msg("session closed")
	w.WriteHeader(http.StatusNoContent)
}

type newSessionReq struct {
	Mode string `json:"mode"`
}

type sessionRes struct {
	SessionID string       `json:"sessionId"`
	Mode      string       `json:"mode"`
	Snapshot  snapshotJSON `json:"snapshot"`
}

// handleNewSession creates an engine for the caller. Daily sessions serve the
// word of the day first and can be started once per player and date.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Mode == "" {
		req.Mode = modeNormal
	}
	if req.Mode != modeNormal && req.Mode != modeDaily {
		writeError(w, http.StatusBadRequest, "invalid_mode")
		return
	}

	owner := s.owner(w, r)
	now := s.now()
	sess := &store.Session{
		ID:        store.NewID(),
		Mode:      req.Mode,
		UserID:    owner.UserID,
		AnonID:    owner.AnonID,
		CreatedAt: now,
	}

	var src game.WordSource = s.words
	listeners := []game.Listener{
		game.LogEvents(log.With().Str("session", sess.ID).Logger()),
		database.NewRecorder(s.db, sess.ID, req.Mode, owner),
	}
	if req.Mode == modeDaily {
		ds := daily.NewSource(s.words, s.words.Answers(), now, s.cfg.DailySalt)
		player := s.publicID(owner)
		played, err := s.daily.Played(r.Context(), player, ds.Date)
		if err != nil {
			log.Error().Err(err).Msg("daily lookup")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		if played {
			writeError(w, http.StatusConflict, "already_played")
			return
		}
		src = ds
		listeners = append(listeners, s.recordDaily(player, sess.ID, ds, now))
	}

	sess.Engine = game.New(src, listeners...)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("session", sess.ID).Str("mode", sess.Mode).Msg("session started")
	writeJSON(w, http.StatusOK, sessionRes{
		SessionID: sess.ID,
		Mode:      sess.Mode,
		Snapshot:  toSnapshotJSON(sess.Engine.Snapshot()),
	})
}

// recordDaily stores a daily result when the first round is won.
func (s *Server) recordDaily(player, sessionID string, ds *daily.Source, start time.Time) game.Listener {
	return game.ListenerFunc(func(ev game.Event) {
		if ev.Kind != game.EventRoundWon || ev.Round != 1 || !ds.IsDailyWord(ev.Word) {
			return
		}
		err := s.daily.Record(context.Background(), daily.Result{
			Player:    player,
			Date:      ds.Date,
			WordIndex: ds.WordIndex,
			SessionID: sessionID,
			Guesses:   ev.Row + 1,
			ElapsedMs: int(s.now().Sub(start).Milliseconds()),
		})
		if err != nil {
			log.Warn().Err(err).Str("player", player).Msg("insert daily result")
		}
	})
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if utf8.RuneCountInString(req.Letter) == 1 {
		ch, _ := utf8.DecodeRuneInString(req.Letter)
		sess.Engine.SubmitLetter(ch)
	}
}

type keyReq struct {
	Key string `json:"key"`
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	input.Apply(sess.Engine, input.FromKeyName(req.Key))
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *store.Session)

// withSession resolves {id}, checks the caller owns the session, runs h and
// replies with the snapshot unless h already wrote an error.
func (s *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.lookupSession(w, r)
		if !ok {
			return
		}
		ww := &statusWriter{ResponseWriter: w}
		h(ww, r, sess)
		if ww.wrote {
			return
		}
		writeJSON(w, http.StatusOK, toSnapshotJSON(sess.Engine.Snapshot()))
	}
}

func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error")
		return nil, false
	}
	if !s.owns(r, sess) {
		writeError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return sess, true
}

// owns reports whether the caller is the session's player.
func (s *Server) owns(r *http.Request, sess *store.Session) bool {
	if sess.UserID != "" {
		me := userFrom(r.Context())
		return me != nil && me.ID == sess.UserID
	}
	c, err := r.Cookie(anonCookieName)
	return err == nil && c.Value == sess.AnonID
}

// owner identifies the caller, issuing a guest cookie when needed.
func (s *Server) owner(w http.ResponseWriter, r *http.Request) database.Owner {
	if me := userFrom(r.Context()); me != nil {
		return database.Owner{UserID: me.ID}
	}
	return database.Owner{AnonID: s.ensureAnonID(w, r)}
}

// statusWriter records whether a handler wrote a response.
type statusWriter struct {
	http.ResponseWriter
	wrote bool
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.wrote = true
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.wrote = true
	return sw.ResponseWriter.Write(b)
}
