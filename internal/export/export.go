// Package export serializes the bookmark set to CSV, JSON, XML or YAML files
// and reads those files back.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/axellelanca/urlmanager/internal/errors"
	"github.com/axellelanca/urlmanager/internal/models"
)

// Format identifies an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format, in the order shown to users.
var Formats = []Format{FormatCSV, FormatJSON, FormatXML, FormatYAML}

// Codec encodes and decodes a full bookmark set.
type Codec interface {
	Encode(w io.Writer, bookmarks []models.Bookmark) error
	Decode(r io.Reader) ([]models.Bookmark, error)
}

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatXML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownFormat, s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", apperrors.ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// CodecFor returns the codec handling f.
func CodecFor(f Format) (Codec, error) {
	switch f {
	case FormatCSV:
		return csvCodec{}, nil
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatXML:
		return xmlCodec{}, nil
	case FormatYAML:
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownFormat, string(f))
	}
}

// WriteFile writes bookmarks to <dir>/<name><ext> and returns that path.
//
// The content goes to a temporary file in dir first and is renamed over the
// target only once fully written and synced. On failure the temporary file
// is removed and the target is left untouched.
func WriteFile(dir, name string, format Format, bookmarks []models.Bookmark) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.ErrEmptyFileName
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidFileName, name)
	}

	codec, err := CodecFor(format)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	target := filepath.Join(dir, name+format.Extension())

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.ErrExportFailed{Path: target, Reason: err.Error()}
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))
	if err := writeTemp(tmpPath, codec, bookmarks); err != nil {
		os.Remove(tmpPath)
		return "", apperrors.ErrExportFailed{Path: target, Reason: err.Error()}
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return "", apperrors.ErrExportFailed{Path: target, Reason: err.Error()}
	}
	return target, nil
}

func writeTemp(path string, codec Codec, bookmarks []models.Bookmark) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := codec.Encode(w, bookmarks); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	return f.Close()
}

// ReadFile decodes an export file, picking the codec from its extension.
func ReadFile(path string) ([]models.Bookmark, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	codec, err := CodecFor(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bookmarks, err := codec.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s file: %w", format, err)
	}
	return bookmarks, nil
}
