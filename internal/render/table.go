// Package render formats the probability help table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"fairdice/internal/domain"
)

// HelpTable writes the win-probability table for dice. Rows are the
// player's die and columns the opponent's; each cell is P(row beats column)
// as a percentage with two decimals, with "-" on the diagonal.
func HelpTable(w io.Writer, dice []domain.Die, m domain.Matrix) error {
	if m.Size() != len(dice) {
		return fmt.Errorf("help table: %d dice but matrix of size %d", len(dice), m.Size())
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "User dice v\\ Opponent >")
	for _, d := range dice {
		fmt.Fprintf(tw, "\t%s", d)
	}
	fmt.Fprintln(tw)

	for i, d := range dice {
		fmt.Fprint(tw, d.String())
		for j := range dice {
			fmt.Fprintf(tw, "\t%s", cell(m, i, j))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func cell(m domain.Matrix, i, j int) string {
	p, ok := m.At(i, j)
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(p*100, 'f', 2, 64) + "%"
}
