package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tourneyplan/tourneyplan/internal/audit"
	"github.com/tourneyplan/tourneyplan/internal/planner"
	"github.com/tourneyplan/tourneyplan/internal/result"
	"github.com/tourneyplan/tourneyplan/internal/scenario"
)

func newPlanCmd() *cobra.Command {
	var (
		scenarioPath string
		strict       bool
		auditPath    string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Prune and stagger the candidates in a scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			admitted, rejected, err := runScenario(scenarioPath, strict)
			if err != nil {
				return err
			}
			printPlanResult(cmd, scenarioPath, admitted, rejected)

			if auditPath != "" {
				store, err := audit.Open(auditPath)
				if err != nil {
					return pkgerrors.Wrap(err, "opening audit store")
				}
				defer store.Close()
				if err := store.RecordRun(cmd.Context(), scenarioPath, admitted, rejected); err != nil {
					return pkgerrors.Wrap(err, "recording audit run")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a scenario YAML file (required)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail the whole run if a candidate would be blocked only by lower-freq schedules")
	cmd.Flags().StringVar(&auditPath, "audit", "", "optional sqlite database to record this run in")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func runScenario(path string, strict bool) (admitted []result.AdmittedResult, rejectedCount int, err error) {
	s, err := scenario.Load(path)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(err, "loading scenario")
	}

	existing := make([]planner.Tournament, len(s.Existing))
	for i, t := range s.Existing {
		existing[i] = t.Tournament
	}
	candidates := make([]planner.Plan, len(s.Candidates))
	for i, p := range s.Candidates {
		candidates[i] = p.Plan
	}

	var out []planner.Plan
	if strict {
		out, err = planner.RunStrict(existing, candidates)
		if err != nil {
			return nil, 0, err
		}
	} else {
		out = planner.Run(existing, candidates)
	}

	ids := candidateIDsFor(out, s.Candidates)
	results := make([]result.AdmittedResult, len(out))
	for i, p := range out {
		results[i] = result.AdmittedResult{
			ID:         ids[i],
			Freq:       p.Schedule.Freq.String(),
			StartsAtMS: int64(p.StartsAt),
			DurationMS: int64(p.Duration),
		}
	}

	if log != nil {
		log.Infow("plan run complete", "scenario", path, "candidates", len(candidates), "admitted", len(out))
	}

	return results, len(candidates) - len(out), nil
}

// candidateIDsFor recovers each admitted plan's scenario-assigned ID.
// planner.Run/RunStrict return admitted plans as a subsequence of
// candidates in their original relative order, but nominal starts
// (Schedule.AtInstant) aren't unique across candidates: two
// non-conflicting candidates can legitimately share one, as in the
// stagger-stacking case where several plans start nominally at the
// same instant. Matching walks both lists in lockstep instead of
// keying by start time.
func candidateIDsFor(out []planner.Plan, candidates []scenario.Plan) []string {
	ids := make([]string, len(out))
	j := 0
	for i, p := range out {
		for j < len(candidates) && !sameCandidate(p, candidates[j].Plan) {
			j++
		}
		if j < len(candidates) {
			ids[i] = candidates[j].ID
			j++
		}
	}
	return ids
}

// sameCandidate reports whether out is the (possibly staggered) result
// of admitting candidate: Schedule and Duration survive the pipeline
// unchanged, only StartsAt may have moved.
func sameCandidate(out, candidate planner.Plan) bool {
	return out.Schedule == candidate.Schedule && out.Duration == candidate.Duration
}

func printPlanResult(cmd *cobra.Command, path string, admitted []result.AdmittedResult, rejected int) {
	w := cmd.OutOrStdout()
	colorize := term.IsTerminal(int(os.Stdout.Fd()))

	header := fmt.Sprintf("%s: %d admitted, %d rejected", path, len(admitted), rejected)
	if colorize {
		color.New(color.Bold).Fprintln(w, header)
	} else {
		fmt.Fprintln(w, header)
	}

	green := color.New(color.FgGreen)
	for _, r := range admitted {
		line := fmt.Sprintf("  [%s] %s", r.ID, r.Freq)
		if colorize {
			green.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}
}
