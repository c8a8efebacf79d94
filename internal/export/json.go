package export

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/axellelanca/urlmanager/internal/models"
)

type jsonCodec struct{}

// Encode writes an indented array; an empty set is written as [].
func (jsonCodec) Encode(w io.Writer, bookmarks []models.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(bookmarks)
}

func (jsonCodec) Decode(r io.Reader) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	if err := json.NewDecoder(r).Decode(&bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}
