// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidArgument is returned (wrapped) for bad generation parameters and
// unparseable enum or date values.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// DefaultDays is the length of the generated date range.
	DefaultDays = 180

	// DefaultSeed is the seed used when none is configured.
	DefaultSeed int64 = 42

	// MaxDays bounds the date range to ten years.
	MaxDays = 3660

	minDailyEvents = 15
	maxDailyEvents = 34

	nightLastHour   = 4
	nightMultiplier = 1.2

	// interventionScale maps severity to intervention probability. The ratio
	// is not clamped; severities at or above it always intervene.
	interventionScale = 15.0
)

var (
	platformWeights  = []float64{0.30, 0.25, 0.25, 0.20}
	riskLevelWeights = []float64{0.45, 0.30, 0.15, 0.10}

	// severityBands holds the half-open [lo, hi) severity interval per risk level.
	severityBands = [...][2]float64{
		Low:      {1, 3},
		Medium:   {3, 6},
		High:     {6, 8.5},
		Critical: {8.5, 10},
	}
)

// sentimentDist is a categorical distribution over sentiments.
type sentimentDist struct {
	outcomes []Sentiment
	weights  []float64
}

var (
	sentimentSevere   = sentimentDist{[]Sentiment{Negative, Neutral}, []float64{0.9, 0.1}}
	sentimentElevated = sentimentDist{[]Sentiment{Negative, Neutral, Positive}, []float64{0.7, 0.25, 0.05}}
	sentimentMild     = sentimentDist{[]Sentiment{Negative, Neutral, Positive}, []float64{0.4, 0.4, 0.2}}
)

// Params identifies one generated table. Two calls with equal Params produce
// identical tables.
type Params struct {
	Seed int64
	Days int
	// EndDate is the last day of the range. Only its calendar date is used.
	// It is required so that runs never silently depend on the wall clock.
	EndDate time.Time
}

// DefaultParams returns the default seed and day count ending on endDate.
func DefaultParams(endDate time.Time) Params {
	return Params{Seed: DefaultSeed, Days: DefaultDays, EndDate: endDate}
}

// Validate checks the parameters, returning an error wrapping
// ErrInvalidArgument on failure.
func (p Params) Validate() error {
	if p.Days <= 0 {
		return fmt.Errorf("%w: days must be positive, got %d", ErrInvalidArgument, p.Days)
	}
	if p.Days > MaxDays {
		return fmt.Errorf("%w: days must be at most %d, got %d", ErrInvalidArgument, MaxDays, p.Days)
	}
	if p.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", ErrInvalidArgument)
	}
	return nil
}

// StartDate returns the first day of the range.
func (p Params) StartDate() time.Time {
	return Day(p.EndDate).AddDate(0, 0, -(p.Days - 1))
}

// Key returns a canonical string identifying the parameters.
func (p Params) Key() string {
	return fmt.Sprintf("%d/%d/%s", p.Seed, p.Days, Day(p.EndDate).Format(DateLayout))
}

// NewSeededRNG creates the random stream for one generation run. Streams
// must not be shared between runs.
func NewSeededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic data, not security sensitive
}

// Generate produces the event table for p.
//
// Days are visited oldest first. Each event consumes draws from a single
// stream in a fixed order: platform, risk level, severity, hour, sentiment,
// intervention, keyword. Reordering any draw changes every downstream value.
func Generate(p Params) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rng := NewSeededRNG(p.Seed)
	start := p.StartDate()
	events := make([]Event, 0, p.Days*(minDailyEvents+maxDailyEvents)/2)

	for d := 0; d < p.Days; d++ {
		day := start.AddDate(0, 0, d)
		n := minDailyEvents + rng.Intn(maxDailyEvents-minDailyEvents+1)
		for range n {
			events = append(events, drawEvent(rng, day))
		}
	}

	return &Table{events: events}, nil
}

func drawEvent(rng *rand.Rand, day time.Time) Event {
	platform := Platform(pick(rng, platformWeights))
	risk := RiskLevel(pick(rng, riskLevelWeights))

	band := severityBands[risk]
	severity := band[0] + (band[1]-band[0])*rng.Float64()

	hour := rng.Intn(24)
	if hour <= nightLastHour {
		severity *= nightMultiplier
	}

	sentiment := drawSentiment(rng, severity)
	intervention := rng.Float64() < severity/interventionScale
	keyword := Keyword(rng.Intn(len(keywordNames)))

	return Event{
		Timestamp:    day,
		Hour:         hour,
		Platform:     platform,
		RiskLevel:    risk,
		Severity:     severity,
		Sentiment:    sentiment,
		Intervention: intervention,
		Keyword:      keyword,
	}
}

func drawSentiment(rng *rand.Rand, severity float64) Sentiment {
	dist := sentimentMild
	switch {
	case severity > 7:
		dist = sentimentSevere
	case severity > 4:
		dist = sentimentElevated
	}
	return dist.outcomes[pick(rng, dist.weights)]
}

// pick draws an index from a categorical distribution using one uniform draw.
func pick(rng *rand.Rand, weights []float64) int {
	u := rng.Float64()
	var cum float64
	for i, w := range weights {
		cum += w
		if u < cum {
			return i
		}
	}
	// Rounding in the cumulative sum can leave u just above the total.
	return len(weights) - 1
}
