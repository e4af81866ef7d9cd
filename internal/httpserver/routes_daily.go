// internal/httpserver/routes_daily.go
//
// Daily word routes. Daily play itself goes through POST /session/new with
// mode "daily"; the first round of such a session uses the word of the day
// and its win is recorded once per player and date.
//
//   - GET /daily/today       → {date, played} for the caller
//   - GET /daily/leaderboard → top 20 results for today (or ?date=YYYY-MM-DD)
//
// Players appear under their public id: the account id, or a keyed hash of
// the guest cookie. The cookie itself is a credential and never leaves it.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordboard/internal/daily"
	"github.com/robalobadob/wordboard/internal/database"
)

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.With(s.withOptionalAuth()).Get("/today", s.handleDailyToday)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

type todayRes struct {
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// handleDailyToday reports whether the caller already solved today's word.
// Guests without a cookie have not played.
func (s *Server) handleDailyToday(w http.ResponseWriter, r *http.Request) {
	date := daily.DateKey(s.now())
	var owner database.Owner
	if me := userFrom(r.Context()); me != nil {
		owner.UserID = me.ID
	} else if c, err := r.Cookie(anonCookieName); err == nil {
		owner.AnonID = c.Value
	}
	player := s.publicID(owner)
	if player == "" {
		writeJSON(w, http.StatusOK, todayRes{Date: date})
		return
	}
	played, err := s.daily.Played(r.Context(), player, date)
	if err != nil {
		log.Error().Err(err).Msg("daily lookup")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, todayRes{Date: date, Played: played})
}

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.Entry `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.now())
	}
	rows, err := s.daily.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
