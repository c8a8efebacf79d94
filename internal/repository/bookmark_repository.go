package repository

import (
	"fmt"

	"github.com/axellelanca/urlmanager/internal/models"
	"gorm.io/gorm"
)

// BookmarkRepository est une interface qui définit les méthodes d'accès aux données
type BookmarkRepository interface {
	Create(bookmark *models.Bookmark) error
	CreateBatch(bookmarks []models.Bookmark) error
	DeleteByID(id uint) error
	FindAll() ([]models.Bookmark, error)
	CountByCategory() (map[string]int, error)
}

// GormBookmarkRepository est l'implémentation de BookmarkRepository utilisant GORM.
type GormBookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository crée et retourne une nouvelle instance de GormBookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) *GormBookmarkRepository {
	return &GormBookmarkRepository{db: db}
}

// Create insère une nouvelle URL ; l'ID attribué par SQLite est renseigné dans bookmark.
func (r *GormBookmarkRepository) Create(bookmark *models.Bookmark) error {
	if err := r.db.Create(bookmark).Error; err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return nil
}

// batchSize borne le nombre de lignes par INSERT : 3 ou 4 variables par ligne
// restent loin de la limite SQLite de 32766 variables par requête.
const batchSize = 500

// CreateBatch insère toutes les URLs dans une seule transaction : tout ou rien.
// Les lignes sont envoyées par paquets de batchSize.
func (r *GormBookmarkRepository) CreateBatch(bookmarks []models.Bookmark) error {
	if len(bookmarks) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(bookmarks, batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create %d bookmarks: %w", len(bookmarks), err)
	}
	return nil
}

// DeleteByID supprime l'URL d'identifiant id. Un id inconnu n'est pas une erreur.
func (r *GormBookmarkRepository) DeleteByID(id uint) error {
	if err := r.db.Delete(&models.Bookmark{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete bookmark %d: %w", id, err)
	}
	return nil
}

// FindAll récupère toutes les URLs dans l'ordre d'insertion.
func (r *GormBookmarkRepository) FindAll() ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	if err := r.db.Order("id ASC").Find(&bookmarks).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve all bookmarks: %w", err)
	}
	return bookmarks, nil
}

type categoryCount struct {
	Category string
	Total    int
}

// CountByCategory compte le nombre d'URLs pour chaque catégorie distincte.
func (r *GormBookmarkRepository) CountByCategory() (map[string]int, error) {
	var rows []categoryCount
	err := r.db.Model(&models.Bookmark{}).
		Select("category, COUNT(*) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count bookmarks by category: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Total
	}
	return counts, nil
}
