// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

// Package dataset defines the risk-event data model and the seeded generator
// that produces the synthetic event table.
package dataset

import (
	"fmt"
	"strings"
	"time"
)

// Platform is the social-media platform an event was observed on.
type Platform int

// Platforms in their fixed enumeration order. Aggregates that break ties
// by platform use this order.
const (
	Twitter Platform = iota
	Reddit
	Instagram
	Facebook
)

var platformNames = [...]string{"Twitter", "Reddit", "Instagram", "Facebook"}

// Platforms returns every platform in enumeration order.
func Platforms() []Platform {
	return []Platform{Twitter, Reddit, Instagram, Facebook}
}

// Valid reports whether p is one of the enumerated platforms.
func (p Platform) Valid() bool { return p >= 0 && int(p) < len(platformNames) }

func (p Platform) String() string {
	if p < 0 || int(p) >= len(platformNames) {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platformNames[p]
}

// ParsePlatform resolves a platform by name, case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	i, ok := lookup(platformNames[:], s)
	if !ok {
		return 0, fmt.Errorf("%w: unknown platform %q (valid: %s)", ErrInvalidArgument, s, strings.Join(platformNames[:], ", "))
	}
	return Platform(i), nil
}

// MarshalText encodes the platform as its display name.
func (p Platform) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText decodes a platform display name.
func (p *Platform) UnmarshalText(b []byte) error {
	v, err := ParsePlatform(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// RiskLevel is the ordinal urgency classification of an event.
// Low < Medium < High < Critical.
type RiskLevel int

const (
	Low RiskLevel = iota
	Medium
	High
	Critical
)

var riskLevelNames = [...]string{"Low", "Medium", "High", "Critical"}

// RiskLevels returns every risk level in ascending order.
func RiskLevels() []RiskLevel {
	return []RiskLevel{Low, Medium, High, Critical}
}

// Valid reports whether r is one of the enumerated risk levels.
func (r RiskLevel) Valid() bool { return r >= 0 && int(r) < len(riskLevelNames) }

func (r RiskLevel) String() string {
	if r < 0 || int(r) >= len(riskLevelNames) {
		return fmt.Sprintf("RiskLevel(%d)", int(r))
	}
	return riskLevelNames[r]
}

// IsHigh reports whether the level counts as high risk (High or Critical).
func (r RiskLevel) IsHigh() bool { return r == High || r == Critical }

// ParseRiskLevel resolves a risk level by name, case-insensitively.
func ParseRiskLevel(s string) (RiskLevel, error) {
	i, ok := lookup(riskLevelNames[:], s)
	if !ok {
		return 0, fmt.Errorf("%w: unknown risk level %q (valid: %s)", ErrInvalidArgument, s, strings.Join(riskLevelNames[:], ", "))
	}
	return RiskLevel(i), nil
}

// MarshalText encodes the risk level as its display name.
func (r RiskLevel) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes a risk level display name.
func (r *RiskLevel) UnmarshalText(b []byte) error {
	v, err := ParseRiskLevel(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Sentiment is the emotional tone attached to an event.
type Sentiment int

const (
	Positive Sentiment = iota
	Neutral
	Negative
)

var sentimentNames = [...]string{"Positive", "Neutral", "Negative"}

// Sentiments returns every sentiment in enumeration order.
func Sentiments() []Sentiment {
	return []Sentiment{Positive, Neutral, Negative}
}

// Valid reports whether s is one of the enumerated sentiments.
func (s Sentiment) Valid() bool { return s >= 0 && int(s) < len(sentimentNames) }

func (s Sentiment) String() string {
	if s < 0 || int(s) >= len(sentimentNames) {
		return fmt.Sprintf("Sentiment(%d)", int(s))
	}
	return sentimentNames[s]
}

// ParseSentiment resolves a sentiment by name, case-insensitively.
func ParseSentiment(s string) (Sentiment, error) {
	i, ok := lookup(sentimentNames[:], s)
	if !ok {
		return 0, fmt.Errorf("%w: unknown sentiment %q", ErrInvalidArgument, s)
	}
	return Sentiment(i), nil
}

// MarshalText encodes the sentiment as its display name.
func (s Sentiment) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a sentiment display name.
func (s *Sentiment) UnmarshalText(b []byte) error {
	v, err := ParseSentiment(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Keyword is one of the fixed risk-associated phrases attached to an event.
type Keyword int

var keywordNames = [...]string{
	"hopeless", "alone", "suicide", "depressed", "worthless",
	"end it", "give up", "no point", "can't go on", "better off dead",
}

// Keywords returns every keyword in enumeration order.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywordNames))
	for i := range out {
		out[i] = Keyword(i)
	}
	return out
}

// Valid reports whether k is one of the fixed keywords.
func (k Keyword) Valid() bool { return k >= 0 && int(k) < len(keywordNames) }

func (k Keyword) String() string {
	if k < 0 || int(k) >= len(keywordNames) {
		return fmt.Sprintf("Keyword(%d)", int(k))
	}
	return keywordNames[k]
}

// ParseKeyword resolves a keyword phrase, case-insensitively.
func ParseKeyword(s string) (Keyword, error) {
	i, ok := lookup(keywordNames[:], s)
	if !ok {
		return 0, fmt.Errorf("%w: unknown keyword %q", ErrInvalidArgument, s)
	}
	return Keyword(i), nil
}

// MarshalText encodes the keyword as its phrase.
func (k Keyword) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a keyword phrase.
func (k *Keyword) UnmarshalText(b []byte) error {
	v, err := ParseKeyword(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func lookup(names []string, s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, true
		}
	}
	return 0, false
}

// Event is one row of the generated table.
type Event struct {
	// ID and Handle are only populated by Annotate.
	ID     string `json:"id,omitempty"`
	Handle string `json:"handle,omitempty"`

	Timestamp    time.Time `json:"timestamp"`
	Hour         int       `json:"hour"`
	Platform     Platform  `json:"platform"`
	RiskLevel    RiskLevel `json:"risk_level"`
	Severity     float64   `json:"severity_score"`
	Sentiment    Sentiment `json:"sentiment"`
	Intervention bool      `json:"intervention"`
	Keyword      Keyword   `json:"keyword"`
}

// HighRisk reports whether the event is High or Critical.
func (e Event) HighRisk() bool { return e.RiskLevel.IsHigh() }

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the calendar-date layout used by flags, config and exports.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date %q (want YYYY-MM-DD)", ErrInvalidArgument, s)
	}
	return t, nil
}
