// internal/words/words.go
//
// Word lists backing the board engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the
//     embedded defaults in package assets.
//   - Keep sets for quick lookups (answers only, answers ∪ guesses).
//   - Implement game.WordSource: RandomWord and IsProper.
//
// Loading rules (Load):
//  1. answers and allowed paths both set: read each file.
//  2. only the allowed path set: use that file for both lists.
//  3. neither set: embedded assets/answers.txt and assets/allowed.txt.
//
// Constraints:
//   - Words must be game.WordLength alphabetic letters (a–z).
//   - Lists are normalized to lowercase and deduplicated.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/wordboard/assets"
	"github.com/robalobadob/wordboard/internal/game"
)

// ErrEmpty is returned when no usable answer survives normalization.
var ErrEmpty = errors.New("words: answers list is empty")

// Dictionary is an immutable word list. It is safe for concurrent use.
type Dictionary struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ guesses
}

var _ game.WordSource = (*Dictionary)(nil)

// Load builds a Dictionary following the loading rules above.
func Load(answersPath, allowedPath string) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
	}
	return New(ansList, allowList)
}

// New builds a Dictionary from in-memory lists. Every answer is allowed.
func New(answers, allowed []string) (*Dictionary, error) {
	ans := normalize(answers)
	if len(ans) == 0 {
		return nil, ErrEmpty
	}
	d := &Dictionary{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
	}
	for _, w := range normalize(allowed) {
		d.allowedSet[w] = struct{}{}
	}
	return d, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return assets.ParseLines(f)
}

// normalize lowercases, drops malformed entries and removes duplicates.
func normalize(list []string) []string {
	words := lo.Map(list, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	words = lo.Filter(words, func(w string, _ int) bool {
		return len(w) == game.WordLength && isAlpha(w)
	})
	return lo.Uniq(words)
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomWord returns a cryptographically random answer.
func (d *Dictionary) RandomWord() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		return d.answers[0]
	}
	return d.answers[n.Int64()]
}

// IsProper reports whether w is an accepted guess (answers ∪ guesses).
func (d *Dictionary) IsProper(w string) bool {
	_, ok := d.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is on the answers list.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[strings.ToLower(w)]
	return ok
}

// Answers returns a copy of the answers list in load order.
func (d *Dictionary) Answers() []string {
	return append([]string(nil), d.answers...)
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowedSet)
}
