package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/axellelanca/urlmanager/cmd"
	apperrors "github.com/axellelanca/urlmanager/internal/errors"
	"github.com/axellelanca/urlmanager/internal/logger"
)

var deleteIDFlag uint

// DeleteCmd représente la commande 'delete'
var DeleteCmd = &cobra.Command{
	Use:   "delete [position]",
	Short: "Supprime une URL par sa position dans 'list' ou par son identifiant.",
	Long: `Supprime une URL.

  urlmanager delete 2      supprime la deuxième ligne affichée par 'list'
  urlmanager delete --id 7 supprime l'URL d'identifiant 7 (sans erreur si elle n'existe pas)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	DeleteCmd.Flags().UintVar(&deleteIDFlag, "id", 0, "Delete by record identifier instead of list position")

	cmd.RootCmd.AddCommand(DeleteCmd)
}

func runDelete(c *cobra.Command, args []string) error {
	byID := c.Flags().Changed("id")
	if byID == (len(args) == 1) {
		return cmd.Failf("Give either a list position or --id.")
	}

	var position int
	if !byID {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return cmd.Failf("Invalid position %q: use the number shown by 'list'.", args[0])
		}
		position = n
	}

	svc, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()

	if byID {
		if err := svc.DeleteRecord(deleteIDFlag); err != nil {
			cmd.Log.Error("failed to delete bookmark", logger.Uint("id", deleteIDFlag), logger.Error(err))
			return cmd.Failf("Failed to delete URL.")
		}
		fmt.Println(success("Deleted"), fmt.Sprintf("id %d", deleteIDFlag))
		return nil
	}

	// Les positions affichées commencent à 1
	deleted, err := svc.DeleteAt(position - 1)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionOutOfRange) {
			return cmd.Failf("No URL at position %d.", position)
		}
		cmd.Log.Error("failed to delete bookmark", logger.Int("position", position), logger.Error(err))
		return cmd.Failf("Failed to delete URL.")
	}
	fmt.Println(success("Deleted"), deleted.Display())
	return nil
}
