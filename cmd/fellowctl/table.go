package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fellowdash.org/internal/logging"
	"fellowdash.org/internal/models"
	"fellowdash.org/internal/percentile"
)

func newTableCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the percentile reference table",
		Example: `  fellowctl table
  fellowctl table --format csv --output percentiles.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func runTable(cmd *cobra.Command, opts *rootOptions, output string) (err error) {
	format := opts.format()

	var write func(io.Writer, *percentile.Table) error
	switch format {
	case formatText:
		write = writeTableText
	case formatCSV:
		write = writeTableCSV
	case formatJSON:
		write = writeTableJSON
	default:
		return fmt.Errorf("unsupported format %q for table (use text, csv or json)", format)
	}

	application, err := opts.application(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	table := application.PercentileTable()

	if output == "" {
		return write(cmd.OutOrStdout(), table)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer logging.HandleDeferredError(&err, file.Close, application.Logger, "close table output")

	if err = write(file, table); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logging.LogOperation(application.Logger, "table_written",
		slog.String("path", output),
		slog.String("format", format))
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s table: %s\n", format, output)
	return nil
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeTableText(w io.Writer, table *percentile.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tP10\tP25\tP50\tP75\tP90\t")
	for _, row := range table.Rows() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n", row.Month,
			formatThreshold(row.P10), formatThreshold(row.P25), formatThreshold(row.P50),
			formatThreshold(row.P75), formatThreshold(row.P90))
	}
	return tw.Flush()
}

func writeTableCSV(w io.Writer, table *percentile.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"month", "p10", "p25", "p50", "p75", "p90"}); err != nil {
		return err
	}
	for _, row := range table.Rows() {
		record := []string{strconv.Itoa(row.Month)}
		for _, v := range row.Thresholds() {
			record = append(record, formatThreshold(v))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTableJSON(w io.Writer, table *percentile.Table) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(models.NewPercentileTableModel(table))
}
