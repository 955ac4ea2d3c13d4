// Package types provides the canonical domain model shared across the talent-sonar system.
package types

import "strings"

// ProficiencyLevel is an ordered skill proficiency label.
type ProficiencyLevel string

// Proficiency levels, ordered from weakest to strongest.
const (
	LevelNone         ProficiencyLevel = "none"
	LevelBeginner     ProficiencyLevel = "beginner"
	LevelIntermediate ProficiencyLevel = "intermediate"
	LevelAdvanced     ProficiencyLevel = "advanced"
	LevelExpert       ProficiencyLevel = "expert"
)

// levelOrdinals is the single source of truth for proficiency ordering.
// Every skill comparison in the system goes through Ordinal; the mapping
// must not be duplicated elsewhere.
var levelOrdinals = map[ProficiencyLevel]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

// Ordinal returns the integer rank of a proficiency level.
// Unknown labels (including LevelNone) rank 0, below beginner.
func (l ProficiencyLevel) Ordinal() int {
	return levelOrdinals[ProficiencyLevel(strings.ToLower(string(l)))]
}

// Meets reports whether a candidate at this level satisfies the required level.
func (l ProficiencyLevel) Meets(required ProficiencyLevel) bool {
	return l.Ordinal() >= required.Ordinal()
}

// ExperienceBand classifies the seniority a job asks for.
type ExperienceBand string

// Experience bands recognized by the scoring engine.
const (
	BandEntry  ExperienceBand = "entry"
	BandMid    ExperienceBand = "mid"
	BandSenior ExperienceBand = "senior"
	BandLead   ExperienceBand = "lead"
)

var bandYears = map[ExperienceBand]float64{
	BandEntry:  0,
	BandMid:    3,
	BandSenior: 7,
	BandLead:   10,
}

// RequiredYears returns the years of experience expected for the band.
// Unknown bands expect 0 years.
func (b ExperienceBand) RequiredYears() float64 {
	return bandYears[ExperienceBand(strings.ToLower(string(b)))]
}

// AvailabilityStatus describes how available a candidate is for a new role.
type AvailabilityStatus string

// Availability statuses.
const (
	Available          AvailabilityStatus = "available"
	PartiallyAvailable AvailabilityStatus = "partially_available"
	NotAvailable       AvailabilityStatus = "not_available"
)
