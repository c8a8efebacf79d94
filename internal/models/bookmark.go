package models

import "fmt"

// Bookmark représente une URL enregistrée dans la table 'urls'.
type Bookmark struct {
	ID          uint   `gorm:"primaryKey" json:"id" yaml:"id"`
	URL         string `gorm:"column:url;not null" json:"url" yaml:"url"`
	Description string `gorm:"column:description;not null" json:"description" yaml:"description"`
	Category    string `gorm:"column:category;not null;index" json:"category" yaml:"category"`
}

// TableName garde le nom de table historique 'urls' au lieu de 'bookmarks'.
func (Bookmark) TableName() string {
	return "urls"
}

// Display retourne la ligne affichée dans la liste.
func (b Bookmark) Display() string {
	return fmt.Sprintf("Description: %s, URL: %s, Category: %s", b.Description, b.URL, b.Category)
}
