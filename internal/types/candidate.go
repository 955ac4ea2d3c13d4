package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Skill is one skill a candidate holds, with a proficiency level and tenure.
type Skill struct {
	Name              string           `json:"name"`
	Level             ProficiencyLevel `json:"level"`
	YearsOfExperience float64          `json:"years_of_experience"`
}

// WorkExperience is one employment interval in a candidate's history.
// EndDate is nil for a current position.
type WorkExperience struct {
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Description  string     `json:"description,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
}

// Candidate is the canonical candidate record. The matching core treats
// candidates as read-only snapshots; records are validated once at write
// time and never re-validated on read.
type Candidate struct {
	ID                 string             `json:"id" validate:"required"`
	FirstName          string             `json:"first_name" validate:"required,min=1"`
	LastName           string             `json:"last_name" validate:"required,min=1"`
	Email              string             `json:"email" validate:"required,email"`
	Location           string             `json:"location"`
	Skills             []Skill            `json:"skills"`
	Experience         []WorkExperience   `json:"experience"`
	Education          []string           `json:"education,omitempty"`
	ResumeText         string             `json:"resume_text,omitempty"`
	IsInternal         bool               `json:"is_internal"`
	Department         string             `json:"department,omitempty"`
	CurrentRole        string             `json:"current_role,omitempty"`
	CareerAspirations  []string           `json:"career_aspirations,omitempty"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	Embedding          []float64          `json:"embedding,omitempty"`
	LastUpdated        time.Time          `json:"last_updated"`
}

// ValidateCandidate checks the candidate invariants: well-formed email and
// non-empty first/last name. Repositories call this before accepting a write.
func ValidateCandidate(c *Candidate) error {
	validate := validator.New()
	return validate.Struct(c)
}

// FullName returns the candidate's display name.
func FullName(c *Candidate) string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// TotalExperienceYears sums the candidate's employment intervals in years.
// Open-ended positions count up to now.
func TotalExperienceYears(c *Candidate) float64 {
	return totalExperienceYearsAt(c, time.Now())
}

func totalExperienceYearsAt(c *Candidate, now time.Time) float64 {
	total := 0.0
	for _, exp := range c.Experience {
		end := now
		if exp.EndDate != nil {
			end = *exp.EndDate
		}
		if end.Before(exp.StartDate) {
			continue
		}
		total += end.Sub(exp.StartDate).Hours() / (24 * 365.25)
	}
	return total
}

// CandidateSearchText flattens a candidate into the lowercase text that gets
// embedded for similarity search: name, skills with levels, positions with
// technologies, and the free-text resume.
func CandidateSearchText(c *Candidate) string {
	var sb strings.Builder
	sb.WriteString(FullName(c))
	for _, skill := range c.Skills {
		sb.WriteString(" ")
		sb.WriteString(skill.Name)
		sb.WriteString(" ")
		sb.WriteString(string(skill.Level))
	}
	for _, exp := range c.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Position)
		sb.WriteString(" at ")
		sb.WriteString(exp.Company)
		for _, tech := range exp.Technologies {
			sb.WriteString(" ")
			sb.WriteString(tech)
		}
	}
	sb.WriteString(" ")
	sb.WriteString(c.ResumeText)
	return strings.ToLower(sb.String())
}
