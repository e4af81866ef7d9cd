// Package daily picks one answer per UTC day and keeps the results of the
// players who solved it.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"sync"
	"time"

	"github.com/robalobadob/wordboard/internal/game"
)

// DateKey is the UTC calendar day of t, e.g. "2026-10-18".
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// pick maps day onto [0, n) through HMAC-SHA256 keyed with salt, so the
// sequence of daily words cannot be guessed without the salt.
func pick(day, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(day))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

// Source is a game.WordSource whose first secret word is the word of the
// day. Later rounds of the same session draw from next.
type Source struct {
	Date      string
	WordIndex int

	next   game.WordSource
	word   string
	mu     sync.Mutex
	served bool
}

var _ game.WordSource = (*Source)(nil)

// NewSource picks today's word from answers. An empty list leaves only next.
func NewSource(next game.WordSource, answers []string, now time.Time, salt string) *Source {
	s := &Source{Date: DateKey(now), next: next}
	if len(answers) == 0 {
		s.served = true
		return s
	}
	s.WordIndex = pick(s.Date, salt, len(answers))
	s.word = answers[s.WordIndex]
	return s
}

// RandomWord returns the daily word once, then defers to next.
func (s *Source) RandomWord() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.served {
		return s.next.RandomWord()
	}
	s.served = true
	return s.word
}

func (s *Source) IsProper(word string) bool { return s.next.IsProper(word) }

// IsDailyWord reports whether word is today's word.
func (s *Source) IsDailyWord(word string) bool { return s.word != "" && word == s.word }
