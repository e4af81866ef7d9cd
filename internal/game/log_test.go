package game

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	e := New(newFakeSource([]string{"crane"}, "trace"), LogEvents(logger))
	typeWord(e, "trace")

	out := buf.String()
	assert.Contains(t, out, `"event":"round_started"`)
	assert.Contains(t, out, `"event":"row_evaluated"`)
	assert.Contains(t, out, `"word":"trace"`)
	assert.NotContains(t, out, "crane")
}
