package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/expression"
	"github.com/arvheim/fkit/pkg/logger"
)

var (
	// Global flags
	flagLogLevel     = 0
	flagConfigFile   = "config.yaml"
	flagConfigFolder = config.GetDefaultConfigDirectory("fkit", "config.yaml")
	flagLogFile      string

	flagDryRun  bool
	flagFilters []string

	// Global vars
	log         *logrus.Entry
	initialized bool
)

var rootCmd = &cobra.Command{
	Use:   "fkit",
	Short: "A CLI toolbox for content-addressed file housekeeping",
	Long: `A CLI application bundling small file utilities: duplicate detection and
hash-based renaming built on full-content digests, plus subtitle, PDF and
transcription helpers.
`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Parse persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigFolder, "config-dir", flagConfigFolder, "Config folder")
	rootCmd.PersistentFlags().StringVarP(&flagConfigFile, "config", "c", flagConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVarP(&flagLogFile, "log", "l", flagLogFile, "Log file")
	rootCmd.PersistentFlags().CountVarP(&flagLogLevel, "verbose", "v", "Verbose level")

	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "Dry run mode")
	rootCmd.PersistentFlags().StringArrayVar(&flagFilters, "filter", nil,
		"File filter expression (e.g. 'Size > 1024 && Ext() == \".jpg\"'), may be repeated")
}

func initCore(showAppInfo bool) {
	// init logging
	if err := logger.Init(flagLogLevel, flagLogFile); err != nil {
		fmt.Printf("Failed initializing logger: %v\n", err)
		os.Exit(1)
	}

	log = logger.GetLogger("fkit")

	// init config
	if err := config.Init(filepath.Join(flagConfigFolder, flagConfigFile)); err != nil {
		log.WithError(err).Fatal("Failed initializing config")
	}

	if showAppInfo {
		showUsing()
	}
}

func showUsing() {
	log.Debugf("Using config dir: %s", flagConfigFolder)
	if flagDryRun {
		log.Info("Dry-run mode enabled, no changes will be made")
	}
}

// compileFilters compiles the --filter expressions, bailing out before any
// traversal starts when one does not parse.
func compileFilters(log *logrus.Entry) []expression.CompiledExpression {
	if len(flagFilters) == 0 {
		return nil
	}

	compiled, err := expression.Compile(flagFilters)
	if err != nil {
		log.WithError(err).Fatal("Failed compiling file filters")
	}

	return compiled
}
