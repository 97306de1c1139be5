package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/logrus"
	"github.com/udevtools/udever/internal/log"
	"github.com/udevtools/udever/udever"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// GlobalConfig holds configuration that applies to all commands
type GlobalConfig struct {
	ConfigFile   string
	RulesDir     string
	OutputFormat string
	Quiet        bool
	Verbose      bool
}

// GetGlobalConfig extracts global configuration from cobra command
func GetGlobalConfig(cmd *cobra.Command) *GlobalConfig {
	configFile, _ := cmd.Flags().GetString("config")
	rulesDir, _ := cmd.Flags().GetString("rules-dir")
	outputFormat, _ := cmd.Flags().GetString("output")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return &GlobalConfig{
		ConfigFile:   configFile,
		RulesDir:     rulesDir,
		OutputFormat: outputFormat,
		Quiet:        quiet,
		Verbose:      verbose,
	}
}

// SetupLogging configures logging based on verbose flag
func SetupLogging(verbose bool) {
	var logLevel logger.Level
	if verbose {
		logLevel = logger.DebugLevel
	} else {
		logLevel = logger.WarnLevel
	}

	cfg := logrus.Config{
		EnableConsole: true,
		Level:         logLevel,
	}

	l, _ := logrus.New(cfg)
	log.Set(l)
}

// LoadAppConfig loads the udever config, applying the --rules-dir override.
func LoadAppConfig(global *GlobalConfig) (udever.Config, error) {
	cfg, err := udever.LoadConfig(global.ConfigFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if global.RulesDir != "" {
		cfg.RulesDir = global.RulesDir
	}
	return cfg, nil
}

// HandleError handles command errors consistently
func HandleError(err error, quiet bool) {
	if err != nil && !quiet {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// RequireRoot rejects mutating operations for non-root users up front so the
// failure is a clear message rather than an EACCES from the rules directory.
func RequireRoot() error {
	if os.Geteuid() != 0 {
		return fmt.Errorf("this operation modifies %s and must run as root", udever.DefaultRulesDir)
	}
	return nil
}
