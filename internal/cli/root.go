// Package cli wires the planner's modules into a cobra command tree:
// plan, batch, gen, tui and notify. It owns configuration (viper),
// structured logging (zap) and the human-facing error rendering that
// sits outside the planner's pure core.
package cli

import (
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// Execute builds and runs the root command. It is the sole entry
// point called from cmd/tourneyplan/main.go.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fatal(err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tourneyplan",
		Short: "Plan and admit chess tournament schedules without conflicts",
		Long: `tourneyplan prunes a batch of proposed tournament schedules against
a set of already-committed tournaments and each other, then assigns a
small stagger to every admitted plan's start time so that none collide
to the second.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogging(verbose); err != nil {
				return pkgerrors.Wrap(err, "initializing logger")
			}
			return initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			flushLog()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.tourneyplan.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newGenCmd())
	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newNotifyCmd())

	return cmd
}

func initConfig() error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".tourneyplan")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("TOURNEYPLAN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return pkgerrors.Wrap(err, "reading config file")
	}
	return nil
}

func fatal(err error) {
	if log != nil {
		log.Errorw("command failed", "error", err)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
