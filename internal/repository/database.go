package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/axellelanca/urlmanager/internal/logger"
	"github.com/axellelanca/urlmanager/internal/models"
)

// bookmarkColumns sont les colonnes attendues dans la table 'urls'.
var bookmarkColumns = []string{"id", "url", "description", "category"}

// OpenDatabase ouvre le fichier SQLite (en créant son répertoire parent si besoin)
// puis vérifie le schéma. L'appelant ferme la connexion via db.DB().
func OpenDatabase(path string, schemaVersion int, log logger.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := EnsureSchema(db, schemaVersion, log); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}
	return db, nil
}

// EnsureSchema compare la version stockée dans PRAGMA user_version avec celle attendue.
// Si elle diffère, ou si la table 'urls' est absente ou incomplète, la table est
// supprimée puis recréée : aucune donnée n'est conservée.
func EnsureSchema(db *gorm.DB, version int, log logger.Logger) error {
	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	migrator := db.Migrator()
	if current == version && schemaIntact(migrator) {
		return nil
	}

	if migrator.HasTable(&models.Bookmark{}) {
		log.Warn("recreating urls table, existing records are dropped",
			logger.Int("stored_version", current),
			logger.Int("schema_version", version))
	}

	if err := migrator.DropTable(&models.Bookmark{}); err != nil {
		return fmt.Errorf("failed to drop urls table: %w", err)
	}
	if err := migrator.CreateTable(&models.Bookmark{}); err != nil {
		return fmt.Errorf("failed to create urls table: %w", err)
	}

	// PRAGMA ne prend pas de paramètre lié ; version est un entier de la configuration.
	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)).Error; err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	log.Debug("urls table created", logger.Int("schema_version", version))
	return nil
}

// SchemaVersion retourne la version de schéma enregistrée dans le fichier.
func SchemaVersion(db *gorm.DB) (int, error) {
	var version int
	if err := db.Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func schemaIntact(migrator gorm.Migrator) bool {
	if !migrator.HasTable(&models.Bookmark{}) {
		return false
	}
	for _, column := range bookmarkColumns {
		if !migrator.HasColumn(&models.Bookmark{}, column) {
			return false
		}
	}
	return true
}
