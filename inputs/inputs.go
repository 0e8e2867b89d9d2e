// Package inputs reads puzzle input files, plain or compressed.
//
// Files are looked up by day as dayNN.txt, dayNN.txt.gz or dayNN.txt.zst,
// in that order. Compression is chosen by extension.
package inputs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrNotFound indicates no input file exists for a day.
var ErrNotFound = errors.New("inputs: no input for day")

// Extensions lists the accepted suffixes in lookup order.
var Extensions = []string{".txt", ".txt.gz", ".txt.zst"}

// Name returns the base file name for day without extension, e.g. "day07".
func Name(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// ForDay finds and reads the input for day under dir.
func ForDay(dir string, day int) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, Name(day)+ext)
		text, err := Load(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return text, err
	}
	return "", fmt.Errorf("%w %d in %s", ErrNotFound, day, dir)
}

// Load reads the file at path, decompressing .gz and .zst files.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := Read(f, path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// Read reads r as the file name says: gzip for ".gz", zstd for ".zst",
// plain otherwise.
func Read(r io.Reader, name string) (string, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return "", err
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(name, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return "", err
		}
		defer dec.Close()
		r = dec
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
