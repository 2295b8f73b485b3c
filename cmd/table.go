package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiltwelve/tiltwelve/internal/problemgen"
)

var tableCmd = &cobra.Command{
	Use:   "table N",
	Short: "Print a multiplication table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < problemgen.MinTable || n > problemgen.MaxTable {
			return fmt.Errorf("table must be a number between %d and %d, got %q", problemgen.MinTable, problemgen.MaxTable, args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), studyTable(n))
		return nil
	},
}

// studyTable renders n × 1..10 in the same layout as the study screen.
func studyTable(n int) string {
	var b strings.Builder
	for m := 1; m <= problemgen.MaxMultiplier; m++ {
		f := problemgen.Fact{Multiplicand: n, Multiplier: m}
		fmt.Fprintf(&b, "%2d × %2d = %3d\n", n, m, f.Product())
	}
	return b.String()
}
