package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axellelanca/urlmanager/cmd"
	apperrors "github.com/axellelanca/urlmanager/internal/errors"
	"github.com/axellelanca/urlmanager/internal/logger"
)

// ImportCmd représente la commande 'import'
var ImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Importe les URLs d'un fichier CSV, JSON, XML ou YAML.",
	Long: `Ajoute toutes les entrées d'un fichier produit par 'export'.
Le format est déduit de l'extension. Les identifiants du fichier sont ignorés
et rien n'est importé si une entrée est incomplète.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	cmd.RootCmd.AddCommand(ImportCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	svc, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()

	n, err := svc.Import(args[0])
	if err != nil {
		var importErr apperrors.ErrImportFailed
		switch {
		case errors.Is(err, apperrors.ErrUnknownFormat):
			return cmd.Failf("Unsupported file type: use .csv, .json, .xml or .yaml.")
		case errors.As(err, &importErr):
			return cmd.Failf("Import failed: %s", importErr.Error())
		default:
			cmd.Log.Error("failed to store imported bookmarks", logger.Error(err))
			return cmd.Failf("Import failed")
		}
	}
	fmt.Printf("%s: %d URL(s)\n", success("Import successful"), n)
	return nil
}
