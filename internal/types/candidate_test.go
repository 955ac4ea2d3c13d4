package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year, month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func validCandidate() *Candidate {
	return &Candidate{
		ID:                 "candidate_1",
		FirstName:          "John",
		LastName:           "Smith",
		Email:              "john.smith@company.com",
		Location:           "Budapest",
		AvailabilityStatus: Available,
	}
}

func TestValidateCandidate_Valid(t *testing.T) {
	require.NoError(t, ValidateCandidate(validCandidate()))
}

func TestValidateCandidate_RejectsBadEmail(t *testing.T) {
	c := validCandidate()
	c.Email = "not-an-email"
	assert.Error(t, ValidateCandidate(c))
}

func TestValidateCandidate_RejectsEmptyNames(t *testing.T) {
	c := validCandidate()
	c.FirstName = ""
	assert.Error(t, ValidateCandidate(c))

	c = validCandidate()
	c.LastName = ""
	assert.Error(t, ValidateCandidate(c))
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "John Smith", FullName(validCandidate()))
}

func TestTotalExperienceYears_ClosedIntervals(t *testing.T) {
	c := validCandidate()
	c.Experience = []WorkExperience{
		{Company: "Tech Corp", Position: "Developer", StartDate: date(2020, 1, 1), EndDate: datePtr(2024, 1, 1)},
		{Company: "Other Corp", Position: "Intern", StartDate: date(2018, 1, 1), EndDate: datePtr(2019, 1, 1)},
	}

	years := totalExperienceYearsAt(c, date(2026, 1, 1))
	assert.InDelta(t, 5.0, years, 0.05)
}

func TestTotalExperienceYears_OpenIntervalCountsToNow(t *testing.T) {
	c := validCandidate()
	c.Experience = []WorkExperience{
		{Company: "Tech Corp", Position: "Developer", StartDate: date(2023, 1, 1)},
	}

	years := totalExperienceYearsAt(c, date(2026, 1, 1))
	assert.InDelta(t, 3.0, years, 0.05)
}

func TestTotalExperienceYears_IgnoresInvertedIntervals(t *testing.T) {
	c := validCandidate()
	c.Experience = []WorkExperience{
		{Company: "Tech Corp", Position: "Developer", StartDate: date(2024, 1, 1), EndDate: datePtr(2020, 1, 1)},
	}

	assert.Equal(t, 0.0, totalExperienceYearsAt(c, date(2026, 1, 1)))
}

func TestCandidateSearchText(t *testing.T) {
	c := validCandidate()
	c.Skills = []Skill{{Name: "JavaScript", Level: LevelAdvanced}}
	c.Experience = []WorkExperience{
		{Company: "Tech Corp", Position: "Senior Developer", Technologies: []string{"React"}},
	}
	c.ResumeText = "Experienced full-stack developer"

	text := CandidateSearchText(c)
	assert.Contains(t, text, "john smith")
	assert.Contains(t, text, "javascript advanced")
	assert.Contains(t, text, "senior developer at tech corp")
	assert.Contains(t, text, "react")
	assert.Contains(t, text, "experienced full-stack developer")
}
