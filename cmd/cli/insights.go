package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/axellelanca/urlmanager/cmd"
	"github.com/axellelanca/urlmanager/internal/logger"
)

const maxBarWidth = 40

// InsightsCmd représente la commande 'insights'
var InsightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Affiche la répartition des URLs par catégorie.",
	Args:  cobra.NoArgs,
	RunE:  runInsights,
}

func init() {
	cmd.RootCmd.AddCommand(InsightsCmd)
}

type categoryTotal struct {
	name  string
	count int
}

// sortedTotals orders categories by count, largest first, then by name.
func sortedTotals(counts map[string]int) []categoryTotal {
	totals := make([]categoryTotal, 0, len(counts))
	for name, count := range counts {
		totals = append(totals, categoryTotal{name: name, count: count})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].count != totals[j].count {
			return totals[i].count > totals[j].count
		}
		return totals[i].name < totals[j].name
	})
	return totals
}

// bar scales count against top into at most maxBarWidth blocks, at least one.
func bar(count, top int) string {
	width := count * maxBarWidth / top
	if width < 1 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func runInsights(_ *cobra.Command, _ []string) error {
	svc, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()

	counts, err := svc.CountByCategory()
	if err != nil {
		cmd.Log.Error("failed to count bookmarks", logger.Error(err))
		return cmd.Failf("Failed to compute insights.")
	}

	if len(counts) == 0 {
		fmt.Println("No data available for insights.")
		return nil
	}

	totals := sortedTotals(counts)
	fmt.Println(heading("Category Distribution"))
	for _, t := range totals {
		fmt.Printf("%s: %d %s\n", t.name, t.count, bar(t.count, totals[0].count))
	}
	return nil
}
