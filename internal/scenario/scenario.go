// Package scenario loads human-editable planning scenarios from YAML
// and converts them into the planner's structural types. Where
// candidate plans actually come from is deliberately left to an
// external calendar generator; this package is the demonstration and
// testing stand-in for that generator.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tourneyplan/tourneyplan/internal/planner"
)

// Document is the on-disk shape of a scenario file.
type Document struct {
	Existing   []TournamentSpec `yaml:"existing"`
	Candidates []PlanSpec       `yaml:"candidates"`
}

// TournamentSpec describes one committed event. Schedule is a pointer
// so an entry can omit it entirely (a schedule-less tournament), the
// same way planner.Tournament.Schedule is optional.
type TournamentSpec struct {
	Schedule  *ScheduleSpec `yaml:"schedule,omitempty"`
	StartsAt  time.Time     `yaml:"startsAt"`
	DurationM int           `yaml:"durationMinutes"`
}

// PlanSpec describes one proposed tournament.
type PlanSpec struct {
	Schedule  ScheduleSpec `yaml:"schedule"`
	DurationM int          `yaml:"durationMinutes"`
}

// ScheduleSpec is the YAML form of planner.Schedule.
type ScheduleSpec struct {
	Freq      string    `yaml:"freq"`
	Speed     string    `yaml:"speed"`
	Variant   string    `yaml:"variant"`
	AtInstant time.Time `yaml:"at"`
	MaxRating *int      `yaml:"maxRating,omitempty"`
	Team      string    `yaml:"team,omitempty"`
}

// Tournament pairs a decoded planner.Tournament with a stable ID for
// traceability through logs and the audit store. The planner itself
// never sees this ID.
type Tournament struct {
	ID         string
	Tournament planner.Tournament
}

// Plan pairs a decoded planner.Plan with a stable ID.
type Plan struct {
	ID   string
	Plan planner.Plan
}

// Scenario is a fully decoded, planner-ready document.
type Scenario struct {
	Existing   []Tournament
	Candidates []Plan
}

// Load reads and decodes a scenario file at path.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario %q", path)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario %q", path)
	}
	return fromDocument(doc)
}

func fromDocument(doc Document) (*Scenario, error) {
	s := &Scenario{
		Existing:   make([]Tournament, 0, len(doc.Existing)),
		Candidates: make([]Plan, 0, len(doc.Candidates)),
	}

	for i, t := range doc.Existing {
		tour, err := t.toTournament()
		if err != nil {
			return nil, errors.Wrapf(err, "existing[%d]", i)
		}
		s.Existing = append(s.Existing, Tournament{ID: uuid.NewString(), Tournament: tour})
	}
	for i, p := range doc.Candidates {
		plan, err := p.toPlan()
		if err != nil {
			return nil, errors.Wrapf(err, "candidates[%d]", i)
		}
		s.Candidates = append(s.Candidates, Plan{ID: uuid.NewString(), Plan: plan})
	}
	return s, nil
}

func (t TournamentSpec) toTournament() (planner.Tournament, error) {
	if t.DurationM < 0 {
		return planner.Tournament{}, errors.New("durationMinutes must be non-negative")
	}
	tour := planner.Tournament{
		StartsAt: toInstant(t.StartsAt),
		Duration: toDuration(t.DurationM),
	}
	if t.Schedule != nil {
		sched, err := t.Schedule.toSchedule()
		if err != nil {
			return planner.Tournament{}, err
		}
		tour.Schedule = &sched
	}
	return tour, nil
}

func (p PlanSpec) toPlan() (planner.Plan, error) {
	if p.DurationM < 0 {
		return planner.Plan{}, errors.New("durationMinutes must be non-negative")
	}
	sched, err := p.Schedule.toSchedule()
	if err != nil {
		return planner.Plan{}, err
	}
	return planner.Plan{
		Schedule: sched,
		StartsAt: sched.AtInstant,
		Duration: toDuration(p.DurationM),
	}, nil
}

func (s ScheduleSpec) toSchedule() (planner.Schedule, error) {
	freq, ok := freqByName[s.Freq]
	if !ok {
		return planner.Schedule{}, errors.Errorf("unknown freq %q", s.Freq)
	}
	speed, ok := speedByName[s.Speed]
	if !ok {
		return planner.Schedule{}, errors.Errorf("unknown speed %q", s.Speed)
	}
	variant, ok := variantByName[s.Variant]
	if !ok {
		return planner.Schedule{}, errors.Errorf("unknown variant %q", s.Variant)
	}
	return planner.Schedule{
		Freq:      freq,
		Speed:     speed,
		Variant:   variant,
		AtInstant: toInstant(s.AtInstant),
		Conditions: planner.Conditions{
			MaxRating: s.MaxRating,
			Team:      s.Team,
		},
	}, nil
}

func toInstant(t time.Time) planner.Instant {
	return planner.Instant(t.UnixMilli())
}

func toDuration(minutes int) planner.Duration {
	return planner.Duration(minutes) * planner.Duration(time.Minute/time.Millisecond)
}

var freqByName = map[string]planner.Freq{
	"hourly":   planner.FreqHourly,
	"daily":    planner.FreqDaily,
	"eastern":  planner.FreqEastern,
	"weekly":   planner.FreqWeekly,
	"weekend":  planner.FreqWeekend,
	"monthly":  planner.FreqMonthly,
	"shield":   planner.FreqShield,
	"marathon": planner.FreqMarathon,
	"unique":   planner.FreqUnique,
	"yearly":   planner.FreqYearly,
}

var speedByName = map[string]planner.Speed{
	"ultraBullet":    planner.SpeedUltraBullet,
	"bullet":         planner.SpeedBullet,
	"blitz":          planner.SpeedBlitz,
	"rapid":          planner.SpeedRapid,
	"classical":      planner.SpeedClassical,
	"correspondence": planner.SpeedCorrespondence,
}

var variantByName = map[string]planner.Variant{
	"standard":      planner.VariantStandard,
	"chess960":      planner.VariantChess960,
	"kingOfTheHill": planner.VariantKingOfTheHill,
	"threeCheck":    planner.VariantThreeCheck,
	"antichess":     planner.VariantAntichess,
	"atomic":        planner.VariantAtomic,
	"horde":         planner.VariantHorde,
	"racingKings":   planner.VariantRacingKings,
	"crazyhouse":    planner.VariantCrazyhouse,
}

// String renders a short human label for a decoded candidate.
func (p Plan) String() string {
	return fmt.Sprintf("%s %s %s @ %s", p.Plan.Schedule.Variant.Name(), p.Plan.Schedule.Speed.Name(), p.Plan.Schedule.Freq, time.UnixMilli(int64(p.Plan.Schedule.AtInstant)).Format(time.RFC3339))
}
