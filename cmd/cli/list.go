package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axellelanca/urlmanager/cmd"
	"github.com/axellelanca/urlmanager/internal/logger"
)

// ListCmd représente la commande 'list'
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Affiche les URLs enregistrées.",
	Long: `Affiche toutes les URLs dans l'ordre d'enregistrement.
Le numéro affiché est la position à passer à 'delete'.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	cmd.RootCmd.AddCommand(ListCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	svc, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()

	lines, err := svc.ListRecords()
	if err != nil {
		cmd.Log.Error("failed to list bookmarks", logger.Error(err))
		return cmd.Failf("Failed to load URLs.")
	}

	if len(lines) == 0 {
		fmt.Println("No URLs recorded.")
		return nil
	}
	for i, line := range lines {
		fmt.Printf("%3d. %s\n", i+1, line)
	}
	return nil
}
