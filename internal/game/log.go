package game

import "github.com/rs/zerolog"

// LogEvents returns a Listener that writes every transition to logger at
// debug level. The secret word is never logged.
func LogEvents(logger zerolog.Logger) Listener {
	return ListenerFunc(func(ev Event) {
		e := logger.Debug().Str("event", string(ev.Kind)).Int("round", ev.Round)
		if ev.Kind != EventRoundStarted {
			e = e.Int("row", ev.Row).Str("word", ev.Word)
		}
		e.Msg("board")
	})
}
