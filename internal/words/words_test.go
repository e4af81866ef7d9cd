package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestNewNormalizes(t *testing.T) {
	d, err := New([]string{" Crane ", "crane", "toolong", "ab1de", "slate"}, []string{"TRACE", "xy"})
	require.NoError(t, err)

	assert.Equal(t, []string{"crane", "slate"}, d.Answers())
	a, g := d.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, g)

	assert.True(t, d.IsProper("trace"))
	assert.True(t, d.IsProper("CRANE"), "answers are always allowed")
	assert.False(t, d.IsProper("xy"))
	assert.True(t, d.IsAnswer("slate"))
	assert.False(t, d.IsAnswer("trace"))
}

func TestNewRejectsEmptyAnswers(t *testing.T) {
	_, err := New([]string{"nope", "12345"}, []string{"trace"})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRandomWordIsAnAnswer(t *testing.T) {
	d, err := New([]string{"crane", "slate", "plant"}, nil)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		assert.True(t, d.IsAnswer(d.RandomWord()))
	}
}

func TestAnswersReturnsCopy(t *testing.T) {
	d, err := New([]string{"crane"}, nil)
	require.NoError(t, err)
	d.Answers()[0] = "zzzzz"
	assert.Equal(t, []string{"crane"}, d.Answers())
}

func TestLoadEmbedded(t *testing.T) {
	d, err := Load("", "")
	require.NoError(t, err)

	a, g := d.Stats()
	assert.Greater(t, a, 100)
	assert.Greater(t, g, a)
	assert.True(t, d.IsAnswer("crane"))
	assert.True(t, d.IsProper("trace"))
	assert.False(t, d.IsProper("qzxjv"))
}

func TestLoadFiles(t *testing.T) {
	ans := writeList(t, "answers.txt", "# comment\ncrane\n\nslate\n")
	allowed := writeList(t, "allowed.txt", "trace\n")

	d, err := Load(ans, allowed)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, d.Answers())
	assert.True(t, d.IsProper("trace"))
}

func TestLoadAllowedOnly(t *testing.T) {
	allowed := writeList(t, "allowed.txt", "trace\nplumb\n")

	d, err := Load("", allowed)
	require.NoError(t, err)
	assert.Equal(t, []string{"trace", "plumb"}, d.Answers())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
