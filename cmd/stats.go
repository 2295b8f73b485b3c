package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/scores"
	"github.com/tiltwelve/tiltwelve/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer statistics",
	Long:  "Show the success rate of every practised fact, or the details of one table with --table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("table")
		if n != 0 && (n < problemgen.MinTable || n > problemgen.MaxTable) {
			return fmt.Errorf("table must be between %d and %d, got %d", problemgen.MinTable, problemgen.MaxTable, n)
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		svc := stats.NewService(e.kv, e.log)
		svc.Load(ctx)

		out := cmd.OutOrStdout()
		if n == 0 {
			fmt.Fprintln(out, statsGrid(svc))
			return nil
		}
		sc := scores.NewService(e.kv, e.log)
		fmt.Fprintln(out, statsTable(svc, n, sc.Load(ctx, n)))
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("table", 0, "Only show table N (1-12)")
}

// statsGrid renders one row per table and one column per multiplier with
// the success percentage of each fact.
func statsGrid(svc *stats.Service) string {
	cols := problemgen.MaxMultiplier
	for t := problemgen.MinTable; t <= problemgen.MaxTable; t++ {
		cols = max(cols, svc.MaxAttemptedMultiplier(t))
	}

	headers := []string{"×"}
	for m := 1; m <= cols; m++ {
		headers = append(headers, strconv.Itoa(m))
	}
	headers = append(headers, "all")

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for t := problemgen.MinTable; t <= problemgen.MaxTable; t++ {
		row := []string{strconv.Itoa(t)}
		for _, r := range svc.Table(t, cols) {
			row = append(row, percentCell(r.Record.Total, r.Percentage))
		}
		sum := svc.TableSummary(t)
		row = append(row, percentCell(sum.Total, sum.Percentage))
		tbl.Row(row...)
	}
	return tbl.String()
}

// statsTable renders the facts of one table with their counts and band.
func statsTable(svc *stats.Service, n, highScore int) string {
	upTo := max(problemgen.MaxMultiplier, svc.MaxAttemptedMultiplier(n))

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("fact", "correct", "total", "%", "band")

	for _, r := range svc.Table(n, upTo) {
		fact := fmt.Sprintf("%d × %d", r.Fact.Multiplicand, r.Fact.Multiplier)
		if !r.Attempted() {
			tbl.Row(fact, "", "", "-", "")
			continue
		}
		band := stats.BandFor(r.Record.Total, r.Percentage)
		tbl.Row(fact,
			strconv.Itoa(r.Record.Correct),
			strconv.Itoa(r.Record.Total),
			strconv.Itoa(r.Percentage),
			band.String(),
		)
	}

	sum := svc.TableSummary(n)
	return fmt.Sprintf("%s\ntable %d: %d/%d correct (%s), high score %d",
		tbl.String(), n, sum.Correct, sum.Total, percentCell(sum.Total, sum.Percentage), highScore)
}

func percentCell(total, pct int) string {
	if total == 0 {
		return "-"
	}
	return strconv.Itoa(pct) + "%"
}
