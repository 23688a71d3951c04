package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"projectbuilder/services"
)

// newQuoteCmd prices a saved estimate file without starting the server.
func newQuoteCmd() *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "quote <estimate.json>",
		Short: "Print the totals of a saved estimate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read estimate: %w", err)
			}
			p, err := services.DecodeDocument(raw)
			if err != nil {
				return err
			}
			return writeQuote(cmd.OutOrStdout(), p, asCSV)
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print the per-line CSV export instead of totals")
	return cmd
}

func writeQuote(w io.Writer, p services.Project, asCSV bool) error {
	totals := services.Recalculate(&p)

	if asCSV {
		data, err := services.ExportCSV(p)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	for _, st := range totals.Sheets {
		fmt.Fprintf(w, "%-20s %14s\n", st.Name, services.FormatUSD(st.Total))
	}
	rows := []struct {
		label string
		value float64
	}{
		{"Subtotal", totals.Subtotal},
		{"Markup", totals.MarkupAmount},
		{"Travel / fees", totals.TravelAmount},
		{"Disposal fee", totals.DisposalAmount},
		{"Discount", -totals.DiscountAmount},
		{"Tax", totals.TaxAmount},
		{"Grand total", totals.GrandTotal},
	}
	fmt.Fprintln(w)
	for _, r := range rows {
		fmt.Fprintf(w, "%-20s %14s\n", r.label, services.FormatUSD(r.value))
	}
	return nil
}
