package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "batch <scenario.yaml> [scenario.yaml...]",
		Short: "Run plan against several scenario files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type outcome struct {
				path     string
				admitted int
				rejected int
				err      error
			}

			results := make([]outcome, len(args))
			var mu sync.Mutex

			var g errgroup.Group
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					admitted, rejected, err := runScenario(path, strict)
					mu.Lock()
					results[i] = outcome{path: path, admitted: len(admitted), rejected: rejected, err: err}
					mu.Unlock()
					return nil // collect per-scenario errors instead of aborting the whole batch
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: error: %v\n", r.path, r.err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d admitted, %d rejected\n", r.path, r.admitted, r.rejected)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail a scenario if a candidate would be blocked only by lower-freq schedules")
	return cmd
}
