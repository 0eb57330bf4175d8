package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestVocabulary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "jlpt_n5.csv"),
		"Kanji,Kana,Meaning\n猫,ねこ,cat\n犬,いぬ,dog\n")

	s := NewStore(dir, nil)
	entries, err := s.Vocabulary(N5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, VocabEntry{Kanji: "猫", Kana: "ねこ", Meaning: "cat"}, entries[0])
}

func TestVocabulary_MissingFileIsEmpty(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	entries, err := s.Vocabulary(N2)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVocabulary_UnknownLevel(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	_, err := s.Vocabulary(Level("N7"))
	assert.Error(t, err)
}

func TestVocabulary_SkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "jlpt_n4.csv"),
		"Kanji,Kana,Meaning\n猫,ねこ,cat\n,いぬ,dog\n鳥,とり\n魚,さかな,fish\n")

	s := NewStore(dir, nil)
	entries, err := s.Vocabulary(N4)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "猫", entries[0].Kanji)
	assert.Equal(t, "魚", entries[1].Kanji)
}

func TestVocabulary_UnreadableRowDoesNotDropTheRest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "jlpt_n3.csv"),
		"Kanji,Kana,Meaning\n猫,ねこ,cat\nbad\"row,x,y\n犬,いぬ,dog\n")

	s := NewStore(dir, nil)
	entries, err := s.Vocabulary(N3)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "猫", entries[0].Kanji)
	assert.Equal(t, "犬", entries[1].Kanji)
}

func TestCharacters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "characters.csv"),
		"Character,Correct Answer\nあ,a\nか,ka\n")

	s := NewStore(dir, nil)
	entries, err := s.Characters()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, CharacterEntry{Character: "か", Reading: "ka"}, entries[1])
}

func TestAllVocabulary_ConcatenatesLevelsInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "jlpt_n5.csv"), "Kanji,Kana,Meaning\n一,いち,one\n")
	writeFile(t, filepath.Join(dir, "jlpt_n1.csv"), "Kanji,Kana,Meaning\n憂鬱,ゆううつ,melancholy\n")

	s := NewStore(dir, nil)
	all, err := s.AllVocabulary()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "一", all[0].Kanji)
	assert.Equal(t, "憂鬱", all[1].Kanji)
}

func TestLevels(t *testing.T) {
	assert.Equal(t, []Level{N5, N4, N3, N2, N1}, Levels())
	assert.True(t, N3.Valid())
	assert.False(t, Level("").Valid())
	assert.Equal(t, "Beginner", N5.DisplayName())
}
