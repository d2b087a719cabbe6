package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rwx-research/fixturefs/internal/logging"
)

var (
	debug bool

	rootCmd = &cobra.Command{
		Use:           "fixturefs",
		Short:         "fixturefs prepares filtered filesystem trees for test fixtures",
		SilenceErrors: true, // Errors are manually printed in 'main'
		SilenceUsage:  true, // Disables usage text on error
	}
)

func init() {
	viper.SetEnvPrefix("fixturefs")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		panic(err)
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(copyCmd)
}

func newLogger() *zap.SugaredLogger {
	if viper.GetBool("debug") {
		return logging.NewDebugLogger()
	}

	return logging.NewProductionLogger()
}
