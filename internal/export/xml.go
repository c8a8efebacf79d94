package export

import (
	"encoding/xml"
	"io"

	"github.com/axellelanca/urlmanager/internal/models"
)

// <urls><url id="1"><description/><link/><category/></url></urls>
type xmlDocument struct {
	XMLName xml.Name   `xml:"urls"`
	Entries []xmlEntry `xml:"url"`
}

type xmlEntry struct {
	ID          uint   `xml:"id,attr,omitempty"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	Category    string `xml:"category"`
}

type xmlCodec struct{}

func (xmlCodec) Encode(w io.Writer, bookmarks []models.Bookmark) error {
	doc := xmlDocument{Entries: make([]xmlEntry, 0, len(bookmarks))}
	for _, b := range bookmarks {
		doc.Entries = append(doc.Entries, xmlEntry{
			ID:          b.ID,
			Description: b.Description,
			Link:        b.URL,
			Category:    b.Category,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (xmlCodec) Decode(r io.Reader) ([]models.Bookmark, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	bookmarks := make([]models.Bookmark, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		bookmarks = append(bookmarks, models.Bookmark{
			ID:          e.ID,
			URL:         e.Link,
			Description: e.Description,
			Category:    e.Category,
		})
	}
	return bookmarks, nil
}
