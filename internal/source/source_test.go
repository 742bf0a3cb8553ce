// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpisodeNumber(t *testing.T) {
	tests := []struct {
		filename string
		want     int
		wantOK   bool
	}{
		{"Episode 42.txt", 42, true},
		{"42.txt", 42, true},
		{"ep007-final.txt", 7, true},
		{"episode.txt", 0, false},
		{"2024-episode-3.txt", 2024, true}, // first digit run wins
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, ok := EpisodeNumber(tt.filename)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestScanSortsNumerically(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "Episode 2.txt", []byte("two"))
	writeTranscript(t, dir, "Episode 10.txt", []byte("ten"))
	writeTranscript(t, dir, "Episode 1.txt", []byte("one"))

	episodes, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, episodes, 3)

	// 1, 2, 10: numeric order, not the lexical 1, 10, 2.
	assert.Equal(t, 1, episodes[0].Number)
	assert.Equal(t, 2, episodes[1].Number)
	assert.Equal(t, 10, episodes[2].Number)
	assert.Equal(t, "one", episodes[0].Text)
}

func TestScanDigitlessFilesSortFirstInDirectoryOrder(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "alpha.txt", []byte("a"))
	writeTranscript(t, dir, "beta.txt", []byte("b"))
	writeTranscript(t, dir, "Episode 1.txt", []byte("one"))

	episodes, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, episodes, 3)

	assert.Equal(t, 0, episodes[0].Number)
	assert.Equal(t, 0, episodes[1].Number)
	assert.Equal(t, "a", episodes[0].Text)
	assert.Equal(t, "b", episodes[1].Text)
	assert.Equal(t, 1, episodes[2].Number)
}

func TestScanIgnoresNonTranscripts(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "Episode 1.txt", []byte("one"))
	writeTranscript(t, dir, "notes.md", []byte("ignored"))
	writeTranscript(t, dir, "processed_episodes.log", []byte("1\n"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.txt"), 0o755))

	episodes, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 1, episodes[0].Number)
}

func TestScanDecodesLatin1(t *testing.T) {
	dir := t.TempDir()
	// "café" in ISO-8859-1: 0xE9 is not valid UTF-8 on its own.
	writeTranscript(t, dir, "Episode 5.txt", []byte{'c', 'a', 'f', 0xE9})

	episodes, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "café", episodes[0].Text)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func writeTranscript(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}
