package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText prints t as aligned columns, followed by its summary if any.
func WriteText(w io.Writer, t *TableData) error {
	if t.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", t.Title); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	labels := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = c.Label
	}
	fmt.Fprintln(tw, strings.Join(labels, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if t.Summary != nil {
		if _, err := fmt.Fprintf(w, "\n%s: %d rows, %s favorable, %s neutral, %s unfavorable\n",
			t.Summary.Label, len(t.Rows),
			t.Summary.Values["favorable"], t.Summary.Values["neutral"], t.Summary.Values["unfavorable"]); err != nil {
			return err
		}
	}
	return nil
}
