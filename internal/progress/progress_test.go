package progress

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenta/kotoba/internal/content"
)

func TestLoad_MissingFileCreatesFiveEmptyRows(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	snap, err := s.Load()
	require.NoError(t, err)
	for _, level := range content.Levels() {
		assert.Zero(t, snap.MasteredCount(level))
	}

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "level,mastered_vocab", lines[0])
	assert.Equal(t, "N5", lines[1])
	assert.Equal(t, "N1", lines[5])
}

func TestAddMastered_Idempotent(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	added, err := s.AddMastered(content.N5, "猫")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddMastered(content.N5, "猫")
	require.NoError(t, err)
	assert.False(t, added, "re-mastering must be a no-op")

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, snap.MasteredCount(content.N5))
}

func TestAddMastered_LevelsAreIndependent(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	_, err := s.AddMastered(content.N5, "猫")
	require.NoError(t, err)
	_, err = s.AddMastered(content.N1, "猫")
	require.NoError(t, err)
	_, err = s.AddMastered(content.N1, "犬")
	require.NoError(t, err)

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, snap.MasteredCount(content.N5))
	assert.Equal(t, 2, snap.MasteredCount(content.N1))
	assert.Zero(t, snap.MasteredCount(content.N3))
}

func TestAddMastered_UnknownLevel(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	_, err := s.AddMastered(content.Level("N9"), "猫")
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	_, err := s.AddMastered(content.N4, "猫")
	require.NoError(t, err)
	require.NoError(t, s.Reset())

	snap, err := s.Load()
	require.NoError(t, err)
	for _, level := range content.Levels() {
		assert.Zero(t, snap.MasteredCount(level))
	}
}

func TestSave_DeterministicOrder(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	for _, k := range []string{"海", "山", "川"} {
		_, err := s.AddMastered(content.N5, k)
		require.NoError(t, err)
	}

	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	// A rewrite with unchanged content must produce identical bytes.
	_, err = s.AddMastered(content.N4, "空")
	require.NoError(t, err)
	_, err = s.AddMastered(content.N4, "空")
	require.NoError(t, err)

	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	firstN5 := strings.Split(string(first), "\n")[1]
	secondN5 := strings.Split(string(second), "\n")[1]
	assert.Equal(t, firstN5, secondN5)
}

func TestLoad_SkipsUnknownLevelRows(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, nil)
	require.NoError(t, s.Reset())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	corrupted := strings.Replace(string(data), "N3", "XX", 1)
	require.NoError(t, os.WriteFile(s.Path(), []byte(corrupted), 0o644))

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Zero(t, snap.MasteredCount(content.N3))
}
