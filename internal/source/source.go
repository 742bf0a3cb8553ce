// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source discovers transcript files and decodes their contents.
//
// Episode numbering follows the legacy convention: the first run of decimal
// digits in the filename is the episode number, and a filename without
// digits gets number 0. Two digitless files therefore collide at 0 and
// keep their directory order relative to each other; the ordering between
// them is not otherwise defined.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/makeorbreakshop/making-it-transcript/pkg/types"
)

// transcriptExt is the filename suffix scanned for.
const transcriptExt = ".txt"

// numberPattern matches the first run of decimal digits in a filename.
var numberPattern = regexp.MustCompile(`\d+`)

// charsets lists the fallback encodings tried, in order, when a file is
// not valid UTF-8.
var charsets = []struct {
	name string
	enc  encoding.Encoding
}{
	{"iso-8859-1", charmap.ISO8859_1},
	{"windows-1252", charmap.Windows1252},
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
}

// UndecodableError reports a transcript that none of the known encodings
// could decode.
type UndecodableError struct {
	Path string
}

func (e *UndecodableError) Error() string {
	return fmt.Sprintf("could not decode %s with any known encoding", e.Path)
}

// EpisodeNumber extracts the episode number from a filename. The second
// return value is false when the filename has no digits; such files are
// assigned number 0.
func EpisodeNumber(filename string) (int, bool) {
	m := numberPattern.FindString(filename)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Scan reads every *.txt file in dir and returns the episodes sorted by
// number ascending. Files that collide on the same number keep their
// directory order. A file no encoding can decode aborts the scan.
func Scan(dir string) ([]types.Episode, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading transcript directory: %w", err)
	}

	var episodes []types.Episode
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), transcriptExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		text, err := decodeText(path, data)
		if err != nil {
			return nil, err
		}
		number, _ := EpisodeNumber(e.Name())
		episodes = append(episodes, types.Episode{
			Number: number,
			Path:   path,
			Text:   text,
		})
	}

	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].Number < episodes[j].Number
	})
	return episodes, nil
}

// decodeText decodes raw file bytes, trying UTF-8 first and then each
// fallback charset in order.
func decodeText(path string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, cs := range charsets {
		out, err := cs.enc.NewDecoder().Bytes(data)
		if err == nil {
			return string(out), nil
		}
	}
	return "", &UndecodableError{Path: path}
}
