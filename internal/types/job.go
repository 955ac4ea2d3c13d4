package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

// Job lifecycle states.
const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
	JobOnHold JobStatus = "on_hold"
)

// Requirement is one skill a job asks for. Weight declares relative
// importance on a 1-10 scale; the default aggregation uses an unweighted
// mean, see matching.SkillScoreWeighted for the weighted variant.
type Requirement struct {
	Skill    string           `json:"skill" validate:"required"`
	Level    ProficiencyLevel `json:"level" validate:"required"`
	Required bool             `json:"required"`
	Weight   int              `json:"weight" validate:"min=1,max=10"`
}

// Job is the canonical job record. Like candidates, jobs are validated at
// write time and borrowed read-only by the matching core.
type Job struct {
	ID              string         `json:"id" validate:"required"`
	Title           string         `json:"title" validate:"required,min=1"`
	Department      string         `json:"department" validate:"required,min=1"`
	Location        string         `json:"location"`
	Description     string         `json:"description"`
	Requirements    []Requirement  `json:"requirements" validate:"required,min=1,dive"`
	EmploymentType  string         `json:"employment_type,omitempty"`
	ExperienceLevel ExperienceBand `json:"experience_level"`
	IsInternal      bool           `json:"is_internal"`
	Status          JobStatus      `json:"status"`
	PostedDate      time.Time      `json:"posted_date"`
	ClosingDate     *time.Time     `json:"closing_date,omitempty"`
	HiringManager   string         `json:"hiring_manager,omitempty"`
	Embedding       []float64      `json:"embedding,omitempty"`
}

// ValidateJob checks the job invariants: non-empty title and department,
// and at least one requirement with a sane weight.
func ValidateJob(j *Job) error {
	validate := validator.New()
	return validate.Struct(j)
}

// JobSearchText flattens a job into the lowercase text that gets embedded
// for similarity search: title, department, description, and requirements.
func JobSearchText(j *Job) string {
	var sb strings.Builder
	sb.WriteString(j.Title)
	sb.WriteString(" ")
	sb.WriteString(j.Department)
	sb.WriteString(" ")
	sb.WriteString(j.Description)
	for _, req := range j.Requirements {
		sb.WriteString(" ")
		sb.WriteString(req.Skill)
		sb.WriteString(" ")
		sb.WriteString(string(req.Level))
	}
	return strings.ToLower(sb.String())
}
