package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fellowdash.org/internal/app"
	"fellowdash.org/internal/appconf"
	"fellowdash.org/internal/logging"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

type rootOptions struct {
	cfgFile string
	v       *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "fellowctl",
		Short: "fellowctl - classify fellow collection amounts against monthly percentiles",
		Long: `fellowctl classifies a fellow's collection amount against the historical
percentile thresholds for their fellowship month, and prints the reference
table the classification is based on.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.fellowctl.yaml)")
	flags.String("format", formatText, "Output format (text|json, table also accepts csv)")
	flags.String("table-file", "", "YAML reference table replacing the built-in one")
	flags.String("log-level", "warn", "Log level (debug|info|warn|error)")

	for _, name := range []string{"format", "table-file", "log-level"} {
		cobra.CheckErr(opts.v.BindPFlag(name, flags.Lookup(name)))
	}

	rootCmd.AddCommand(newClassifyCmd(opts), newTableCmd(opts))
	return rootCmd
}

func (opts *rootOptions) initConfig() error {
	if opts.cfgFile != "" {
		opts.v.SetConfigFile(opts.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			opts.v.AddConfigPath(home)
		}
		opts.v.SetConfigType("yaml")
		opts.v.SetConfigName(".fellowctl")
	}

	opts.v.SetEnvPrefix("FELLOWCTL")
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()

	if err := opts.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func (opts *rootOptions) format() string {
	return strings.ToLower(strings.TrimSpace(opts.v.GetString("format")))
}

// application builds the classifier dependencies, logging to w.
func (opts *rootOptions) application(w io.Writer) (*app.Application, error) {
	logger := logging.NewStructuredLogger(w, logging.ParseLevel(opts.v.GetString("log-level")))
	application := &app.Application{
		Config: appconf.Config{Env: appconf.Development},
		Logger: logger,
	}

	if path := opts.v.GetString("table-file"); path != "" {
		table, err := appconf.LoadTableFile(path)
		if err != nil {
			return nil, err
		}
		application.Table = table
		logger.Debug("using reference table", slog.String("path", path))
	}

	return application, nil
}
