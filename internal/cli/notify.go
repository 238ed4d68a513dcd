package cli

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tourneyplan/tourneyplan/internal/notify"
)

func newNotifyCmd() *cobra.Command {
	var (
		scenarioPath string
		queueURL     string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Plan a scenario and publish admitted tournaments to an SQS queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, _, err := runScenario(scenarioPath, strict)
			if err != nil {
				return err
			}

			pub, err := notify.NewSQSPublisher(cmd.Context(), queueURL)
			if err != nil {
				return pkgerrors.Wrap(err, "building SQS publisher")
			}

			events := make([]notify.AdmittedEvent, len(results))
			for i, r := range results {
				events[i] = notify.AdmittedEvent{
					ScenarioID: r.ID,
					Freq:       r.Freq,
					StartsAtMS: r.StartsAtMS,
					DurationMS: r.DurationMS,
				}
			}

			if err := pub.PublishAll(cmd.Context(), events); err != nil {
				return pkgerrors.Wrap(err, "publishing admitted plans")
			}
			if log != nil {
				log.Infow("published admitted plans", "queue", queueURL, "count", len(events))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a scenario YAML file (required)")
	cmd.Flags().StringVar(&queueURL, "queue-url", "", "destination SQS queue URL (required)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail the whole run if a candidate would be blocked only by lower-freq schedules")
	_ = cmd.MarkFlagRequired("scenario")
	_ = cmd.MarkFlagRequired("queue-url")

	return cmd
}
