package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/home-assistant/sarifmerge/cmd/merge"
	"github.com/home-assistant/sarifmerge/cmd/version"
	"github.com/home-assistant/sarifmerge/internal/config"
	"github.com/home-assistant/sarifmerge/internal/logger"
	cmderrors "github.com/home-assistant/sarifmerge/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "sarifmerge [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "sarifmerge combines SARIF reports into a single file.",
		Long: `sarifmerge collects the SARIF reports produced by linters and scanners under a directory
	and merges their results into one report that code scanning dashboards can ingest.
	`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is %s, or $%s)", config.DefaultConfigFile, config.EnvConfigFile))
	rootCmd.AddCommand(merge.MergeCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return cmderrors.ExitCode(err)
	}
	return cmderrors.ExitCodeOK
}

func initConfig(cmd *cobra.Command, args []string) error {
	path, explicit := config.ConfigPath(cfgFile)

	var err error
	AppConfig, err = config.LoadConfig(path, explicit)
	if err != nil {
		return cmderrors.NewCommandError(nil, nil, fmt.Errorf("failed to load config: %w", err), cmderrors.ExitCodeFailure)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		return cmderrors.NewCommandError(nil, nil, fmt.Errorf("invalid config %q: %w", path, err), cmderrors.ExitCodeFailure)
	}

	version.Init(AppConfig)
	merge.Init(AppConfig, logger.NewLogger(AppConfig, "core-merge"))
	return nil
}
