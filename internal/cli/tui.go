package cli

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tourneyplan/tourneyplan/internal/scenario"
	"github.com/tourneyplan/tourneyplan/internal/tui"
)

func newTUICmd() *cobra.Command {
	var scenarioPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse a scenario's admitted and rejected plans interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(scenarioPath)
			if err != nil {
				return pkgerrors.Wrap(err, "loading scenario")
			}
			return tui.Run(s, strict)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a scenario YAML file (required)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail the whole run if a candidate would be blocked only by lower-freq schedules")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}
