package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/axellelanca/urlmanager/cmd"
	"github.com/axellelanca/urlmanager/internal/export"
)

var exportNameFlag string

// ExportCmd représente la commande 'export'
var ExportCmd = &cobra.Command{
	Use:   "export <csv|json|xml|yaml>",
	Short: "Exporte toutes les URLs dans un fichier.",
	Long: `Exporte toutes les URLs dans le répertoire d'export configuré (export.dir).
L'extension est ajoutée au nom fourni.

Exemple:
  urlmanager export json --name=backup   # écrit exports/backup.json`,
	Args: cobra.ExactArgs(1),
	ValidArgs: func() []string {
		names := make([]string, 0, len(export.Formats))
		for _, f := range export.Formats {
			names = append(names, string(f))
		}
		return names
	}(),
	RunE: runExport,
}

func init() {
	ExportCmd.Flags().StringVar(&exportNameFlag, "name", "", "File name without extension")
	// cobra rejects a missing --name; runExport still rejects a blank one
	cobra.CheckErr(ExportCmd.MarkFlagRequired("name"))

	cmd.RootCmd.AddCommand(ExportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	format, err := export.ParseFormat(args[0])
	if err != nil {
		return cmd.Failf("Unknown format %q: use csv, json, xml or yaml.", args[0])
	}
	if strings.TrimSpace(exportNameFlag) == "" {
		return cmd.Failf("Please enter a file name.")
	}

	svc, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()

	// Le détail de l'erreur est déjà journalisé par le service
	path, err := svc.Export(format, exportNameFlag)
	if err != nil {
		return cmd.Failf("Export failed")
	}
	fmt.Printf("%s: %s\n", success("Export successful"), path)
	return nil
}
