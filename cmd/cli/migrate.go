package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axellelanca/urlmanager/cmd"
	"github.com/axellelanca/urlmanager/internal/logger"
	"github.com/axellelanca/urlmanager/internal/repository"
)

// MigrateCmd represents the 'migrate' command
// Opening the database already brings the 'urls' table to the configured schema version
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Creates the urls table or recreates it for a new schema version.",
	Long: `This command connects to the configured SQLite database and makes sure the
'urls' table matches database.schema_version. When the stored version differs,
the table is dropped and recreated: existing URLs are lost.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		db, closeDB, err := openDatabase()
		if err != nil {
			return err
		}
		defer closeDB()

		version, err := repository.SchemaVersion(db)
		if err != nil {
			cmd.Log.Error("failed to read schema version", logger.Error(err))
			return cmd.Failf("Failed to read schema version.")
		}

		fmt.Printf("%s (schema version %d, %s)\n", success("Database ready"), version, cmd.Cfg.Database.Name)
		return nil
	},
}

func init() {
	// Register this command with the root command so it can be executed via CLI
	cmd.RootCmd.AddCommand(MigrateCmd)
}
