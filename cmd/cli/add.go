package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axellelanca/urlmanager/cmd"
	"github.com/axellelanca/urlmanager/internal/logger"
	"github.com/axellelanca/urlmanager/internal/validation"
)

var (
	urlFlag         string
	descriptionFlag string
	categoryFlag    string
)

// AddCmd représente la commande 'add'
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Enregistre une URL avec sa description et sa catégorie.",
	Long: `Cette commande enregistre une URL dans la base locale.
Les trois champs sont obligatoires.

Exemple:
  urlmanager add --url="https://go.dev" --description="Go website" --category="dev"`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Valider les trois champs avant d'ouvrir la base
		if err := validation.Validate(urlFlag, descriptionFlag, categoryFlag); err != nil {
			if msg, ok := validation.Message(err); ok {
				return cmd.Failf("%s", msg)
			}
			return err
		}

		svc, closeDB, err := openService()
		if err != nil {
			return err
		}
		defer closeDB()

		bookmark, err := svc.AddRecord(urlFlag, descriptionFlag, categoryFlag)
		if err != nil {
			if msg, ok := validation.Message(err); ok {
				return cmd.Failf("%s", msg)
			}
			cmd.Log.Error("failed to add bookmark", logger.Error(err))
			return cmd.Failf("Failed to add URL.")
		}

		fmt.Printf("%s #%d\n", success("URL added"), bookmark.ID)
		fmt.Println(bookmark.Display())
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&urlFlag, "url", "", "The URL to record")
	AddCmd.Flags().StringVar(&descriptionFlag, "description", "", "A short description")
	AddCmd.Flags().StringVar(&categoryFlag, "category", "", "The category used by insights")

	cmd.RootCmd.AddCommand(AddCmd)
}
