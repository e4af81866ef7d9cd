package game

import "strings"

// Score classifies each letter of guess against secret.
//
// A cell is correct when its letter sits at the same position in secret,
// semi-correct when secret contains the letter anywhere else, incorrect
// otherwise. Each position is judged on its own: repeated letters are not
// budgeted against the number of occurrences in secret.
func Score(secret, guess string) [WordLength]Variant {
	var out [WordLength]Variant
	for i := 0; i < WordLength && i < len(guess); i++ {
		c := guess[i]
		switch {
		case i < len(secret) && secret[i] == c:
			out[i] = VariantCorrect
		case strings.IndexByte(secret, c) >= 0:
			out[i] = VariantSemiCorrect
		default:
			out[i] = VariantIncorrect
		}
	}
	return out
}

// Feedback folds the board into per-letter keyboard feedback. Cells are
// visited in row-major order so a later evaluation overwrites an earlier
// one. Unevaluated cells do not contribute.
func Feedback(b Board) KeyboardFeedback {
	fb := make(KeyboardFeedback)
	for r := range b {
		for _, c := range b[r] {
			if c.Empty() || c.Variant == VariantUnset {
				continue
			}
			fb[c.Letter] = c.Variant
		}
	}
	return fb
}
