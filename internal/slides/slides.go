// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slides discovers slide-source files and extracts metadata from
// their text: titles, lecture numbers and image references. Every
// slidekit stage builds on it.
package slides

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/slidekit/pkg/types"
)

// ErrDirNotFound is returned when the slides directory does not exist.
var ErrDirNotFound = errors.New("slides directory not found")

// Find returns the files in dir whose names match the glob pattern,
// sorted by name. Subdirectories are skipped.
func Find(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, dir)
	}

	// ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// Reader reads the full text of a document.
type Reader func(path string) (string, error)

// ReadText reads a file that must be valid UTF-8.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: invalid UTF-8 content", path)
	}
	return string(data), nil
}

// ReadTextLenient reads a file and drops any bytes that are not valid UTF-8.
func ReadTextLenient(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// Stem returns the base filename of path without its final extension.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// LoadFile reads and parses one document. When the read fails the error
// is logged and returned together with a Document carrying only the
// fields derived from the filename, so callers can keep going.
func LoadFile(path string, cfg types.ScanConfig, read Reader, log logrus.FieldLogger) (types.Document, error) {
	content, err := read(path)
	if err != nil {
		log.WithError(err).WithField("file", path).Error("error reading document")
		return Parse(path, "", cfg), fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, content, cfg), nil
}

// Parse builds a Document from the content of the file at path.
func Parse(path, content string, cfg types.ScanConfig) types.Document {
	cfg = cfg.WithDefaults()
	stem := Stem(path)
	title, subtitle := ExtractTitle(content)

	return types.Document{
		Path:          path,
		Name:          filepath.Base(path),
		Stem:          stem,
		Title:         title,
		Subtitle:      subtitle,
		LectureNumber: ResolveLectureNumber(content, stem, cfg.LectureScanLines),
		Images:        NewImageMatcher(cfg.FigsPrefix).Refs(content),
	}
}
