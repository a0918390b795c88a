package passphrase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWordlistDiceware(t *testing.T) {
	dir := t.TempDir()
	content := "11111 abacus\n11112 abdomen\n\n11113 abide\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, dicewareFile), []byte(content), 0o600))

	list, err := LoadWordlist(dir, ListDiceware)
	require.NoError(t, err)

	assert.False(t, list.Fallback)
	assert.Equal(t, []string{"abacus", "abdomen", "abide"}, list.Words)
}

func TestLoadWordlistBIP39(t *testing.T) {
	dir := t.TempDir()
	content := "abandon\nability\n\nable\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, bip39File), []byte(content), 0o600))

	list, err := LoadWordlist(dir, ListBIP39)
	require.NoError(t, err)

	assert.False(t, list.Fallback)
	assert.Equal(t, []string{"abandon", "ability", "able"}, list.Words)
}

func TestLoadWordlistFallsBackWhenMissing(t *testing.T) {
	list, err := LoadWordlist(t.TempDir(), ListDiceware)
	require.NoError(t, err)

	assert.True(t, list.Fallback, "missing file must be flagged as fallback")
	assert.NotEmpty(t, list.Words)
	assert.Greater(t, list.BitsPerWord(), 0.0)
}

func TestLoadWordlistUnknownKind(t *testing.T) {
	_, err := LoadWordlist(t.TempDir(), ListKind("klingon"))
	assert.ErrorIs(t, err, ErrUnknownWordlist)
}

func TestFallbackWordsAreDistinct(t *testing.T) {
	seen := make(map[string]struct{}, len(fallbackWords))
	for _, w := range fallbackWords {
		_, dup := seen[w]
		assert.False(t, dup, "duplicate fallback word %q", w)
		seen[w] = struct{}{}
	}
}
