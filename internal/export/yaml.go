package export

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/axellelanca/urlmanager/internal/models"
)

type yamlCodec struct{}

func (yamlCodec) Encode(w io.Writer, bookmarks []models.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bookmarks); err != nil {
		return err
	}
	return enc.Close()
}

func (yamlCodec) Decode(r io.Reader) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	if err := yaml.NewDecoder(r).Decode(&bookmarks); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return bookmarks, nil
}
