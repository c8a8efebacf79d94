package cli

import (
	"fmt"

	"github.com/fatih/color"
	"gorm.io/gorm"

	"github.com/axellelanca/urlmanager/cmd"
	"github.com/axellelanca/urlmanager/internal/logger"
	"github.com/axellelanca/urlmanager/internal/repository"
	"github.com/axellelanca/urlmanager/internal/services"
)

var (
	success = color.New(color.FgGreen).SprintFunc()
	heading = color.New(color.Bold).SprintFunc()
)

// openDatabase opens the configured SQLite file. The returned func closes it.
func openDatabase() (*gorm.DB, func(), error) {
	db, err := repository.OpenDatabase(cmd.Cfg.Database.Name, cmd.Cfg.Database.SchemaVersion, cmd.Log)
	if err != nil {
		cmd.Log.Error("failed to open database",
			logger.String("path", cmd.Cfg.Database.Name),
			logger.Error(err))
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	return db, func() {
		if err := sqlDB.Close(); err != nil {
			cmd.Log.Warn("failed to close database", logger.Error(err))
		}
	}, nil
}

// openService wires the repository and the service for one command run.
func openService() (*services.BookmarkService, func(), error) {
	db, closeDB, err := openDatabase()
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewBookmarkRepository(db)
	return services.NewBookmarkService(repo, cmd.Cfg.Export.Dir, cmd.Log), closeDB, nil
}
