// Package services contains the business logic layer for the URL manager application
package services

import (
	"errors"
	"fmt"

	apperrors "github.com/axellelanca/urlmanager/internal/errors"
	"github.com/axellelanca/urlmanager/internal/export"
	"github.com/axellelanca/urlmanager/internal/logger"
	"github.com/axellelanca/urlmanager/internal/models"
	"github.com/axellelanca/urlmanager/internal/repository"
	"github.com/axellelanca/urlmanager/internal/validation"
)

// BookmarkService provides business logic methods for managing bookmarks.
// It acts as an intermediary between the CLI commands and the data repository.
type BookmarkService struct {
	repo      repository.BookmarkRepository
	exportDir string
	log       logger.Logger
}

// NewBookmarkService creates and returns a new instance of BookmarkService.
// Exports are written under exportDir.
func NewBookmarkService(repo repository.BookmarkRepository, exportDir string, log logger.Logger) *BookmarkService {
	return &BookmarkService{
		repo:      repo,
		exportDir: exportDir,
		log:       log,
	}
}

// AddRecord validates the three fields and stores a new bookmark.
// Line endings are stored as LF. Returns a *validation.FieldError when a
// field is empty or holds characters the exports cannot carry.
func (s *BookmarkService) AddRecord(url, description, category string) (*models.Bookmark, error) {
	url = validation.NormalizeNewlines(url)
	description = validation.NormalizeNewlines(description)
	category = validation.NormalizeNewlines(category)

	if err := validation.Validate(url, description, category); err != nil {
		return nil, err
	}

	bookmark := &models.Bookmark{
		URL:         url,
		Description: description,
		Category:    category,
	}
	if err := s.repo.Create(bookmark); err != nil {
		return nil, err
	}

	s.log.Info("bookmark added",
		logger.Uint("id", bookmark.ID),
		logger.String("category", bookmark.Category))
	return bookmark, nil
}

// DeleteRecord removes the bookmark with the given id. Unknown ids are ignored.
func (s *BookmarkService) DeleteRecord(id uint) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	s.log.Info("bookmark deleted", logger.Uint("id", id))
	return nil
}

// DeleteAt removes the bookmark shown at the zero-based position of the
// current list. The position is resolved to the record id before deleting,
// so gaps left by earlier deletions never hit the wrong row.
func (s *BookmarkService) DeleteAt(position int) (*models.Bookmark, error) {
	bookmarks, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if position < 0 || position >= len(bookmarks) {
		return nil, fmt.Errorf("%w: %d (list has %d entries)", apperrors.ErrPositionOutOfRange, position, len(bookmarks))
	}

	target := bookmarks[position]
	if err := s.DeleteRecord(target.ID); err != nil {
		return nil, err
	}
	return &target, nil
}

// Records returns all bookmarks in list order.
func (s *BookmarkService) Records() ([]models.Bookmark, error) {
	return s.repo.FindAll()
}

// ListRecords returns the display line of every bookmark, in list order.
func (s *BookmarkService) ListRecords() ([]string, error) {
	bookmarks, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		lines = append(lines, b.Display())
	}
	return lines, nil
}

// CountByCategory returns how many bookmarks each category holds.
func (s *BookmarkService) CountByCategory() (map[string]int, error) {
	return s.repo.CountByCategory()
}

// Export writes the current bookmark set to <exportDir>/<name><ext> and
// returns the written path.
func (s *BookmarkService) Export(format export.Format, name string) (string, error) {
	bookmarks, err := s.repo.FindAll()
	if err != nil {
		return "", err
	}

	path, err := export.WriteFile(s.exportDir, name, format, bookmarks)
	if err != nil {
		s.log.Error("export failed",
			logger.String("format", string(format)),
			logger.String("name", name),
			logger.Error(err))
		return "", err
	}

	s.log.Info("bookmarks exported",
		logger.String("path", path),
		logger.Int("count", len(bookmarks)))
	return path, nil
}

// Import reads an export file and stores every entry as a new bookmark.
// Ids found in the file are ignored. Nothing is stored unless every entry
// passes validation.
func (s *BookmarkService) Import(path string) (int, error) {
	bookmarks, err := export.ReadFile(path)
	if err != nil {
		s.log.Error("import failed", logger.String("path", path), logger.Error(err))
		if errors.Is(err, apperrors.ErrUnknownFormat) {
			return 0, err
		}
		return 0, apperrors.ErrImportFailed{Path: path, Reason: err.Error()}
	}

	for i := range bookmarks {
		b := &bookmarks[i]
		b.URL = validation.NormalizeNewlines(b.URL)
		b.Description = validation.NormalizeNewlines(b.Description)
		b.Category = validation.NormalizeNewlines(b.Category)
		if err := validation.Validate(b.URL, b.Description, b.Category); err != nil {
			return 0, apperrors.ErrImportFailed{Path: path, Entry: i + 1, Reason: err.Error()}
		}
		b.ID = 0
	}

	if err := s.repo.CreateBatch(bookmarks); err != nil {
		return 0, err
	}

	s.log.Info("bookmarks imported",
		logger.String("path", path),
		logger.Int("count", len(bookmarks)))
	return len(bookmarks), nil
}
