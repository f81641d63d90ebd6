package cmd

import (
	"fmt"

	"extractor/pkg/config"
	"extractor/pkg/logging"
	"extractor/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	logger     *zap.Logger
	cfg        *config.Config
	configPath string
	debug      bool
}

// NewRootCmd builds the command tree. logger is used until --debug or the
// config file asks for a development logger.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &app{logger: logger, cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   version.AppName,
		Short: "Extractor concatenates folders and files into one text file",
		Long: `Extractor walks the selected folders and files, reads their text and writes it
to a single output file, one block per file. Directories named node_modules are skipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a TOML config file (default ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable development logging")

	rootCmd.AddCommand(newExtractCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup loads the config and swaps in a debug logger when requested.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		a.logger.Error("Failed to load config", zap.String("config", a.configPath), zap.Error(err))
		return err
	}
	a.cfg = cfg
	if cfg.Path != "" {
		a.logger.Debug("Loaded config file", zap.String("config", cfg.Path))
	}

	if a.debug || cfg.Log.Debug {
		logger, err := logging.Setup(true, version.AppName, version.Version)
		if err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		a.logger = logger
	}
	return nil
}

// Execute runs the root command with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
