package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fellowdash.org/internal/models"
	"fellowdash.org/internal/percentile"
	"fellowdash.org/internal/utils"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var (
		month  int
		amount string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a collection amount for a fellowship month",
		Example: `  fellowctl classify --month 3 --amount 15000
  fellowctl classify --month 9 --amount '$48,425.45' --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, opts, month, amount)
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Fellowship month (1-9)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Current collection amount, e.g. 15000 or $15,000.00")
	cobra.CheckErr(cmd.MarkFlagRequired("month"))
	cobra.CheckErr(cmd.MarkFlagRequired("amount"))

	return cmd
}

func runClassify(cmd *cobra.Command, opts *rootOptions, month int, rawAmount string) error {
	format := opts.format()
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unsupported format %q for classify (use text or json)", format)
	}

	if err := utils.ValidateMonth(month); err != nil {
		return err
	}

	amount, err := utils.ParseAmount(rawAmount)
	if err != nil {
		return err
	}
	if err := utils.ValidateAmount(amount); err != nil {
		return err
	}

	application, err := opts.application(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := application.Classify(month, amount)
	if errors.Is(err, percentile.ErrMonthNotFound) {
		return fmt.Errorf("month %d is not in the reference table", month)
	}
	if err != nil {
		return err
	}

	if format == formatJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(models.NewClassificationModel(result))
	}
	return writeClassificationText(cmd.OutOrStdout(), result)
}

func writeClassificationText(w io.Writer, result percentile.Result) error {
	advisory := result.Advisory()
	_, err := fmt.Fprintf(w,
		"Month:         %d\nAmount:        %s%s\nPercentile:    %s\nRisk Category: %s\nAdvisory:      %s\n",
		result.Month,
		models.CurrencySymbol, utils.FormatAmount(result.Amount),
		result.Band.Label(),
		result.Category.Badge(),
		advisory.Message,
	)
	return err
}
