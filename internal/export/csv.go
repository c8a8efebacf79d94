package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/axellelanca/urlmanager/internal/models"
)

var csvHeader = []string{"id", "url", "description", "category"}

type csvCodec struct{}

// Encode writes the header row then one row per bookmark. encoding/csv quotes
// fields holding commas, quotes or line breaks.
func (csvCodec) Encode(w io.Writer, bookmarks []models.Bookmark) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, b := range bookmarks {
		row := []string{strconv.FormatUint(uint64(b.ID), 10), b.URL, b.Description, b.Category}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode locates columns by header name, so column order does not matter and
// the id column may be absent.
func (csvCodec) Decode(r io.Reader) ([]models.Bookmark, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []models.Bookmark{}, nil
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range csvHeader[1:] {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	bookmarks := []models.Bookmark{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		b := models.Bookmark{
			URL:         field(row, "url"),
			Description: field(row, "description"),
			Category:    field(row, "category"),
		}
		if raw := field(row, "id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 0)
			if err != nil {
				return nil, fmt.Errorf("invalid id %q: %w", raw, err)
			}
			b.ID = uint(id)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}
