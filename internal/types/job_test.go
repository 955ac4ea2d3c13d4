package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob() *Job {
	return &Job{
		ID:         "job_1",
		Title:      "Senior Full-Stack Developer",
		Department: "Engineering",
		Location:   "Budapest",
		Requirements: []Requirement{
			{Skill: "JavaScript", Level: LevelAdvanced, Required: true, Weight: 9},
		},
		ExperienceLevel: BandSenior,
		Status:          JobOpen,
	}
}

func TestValidateJob_Valid(t *testing.T) {
	require.NoError(t, ValidateJob(validJob()))
}

func TestValidateJob_RequiresAtLeastOneRequirement(t *testing.T) {
	j := validJob()
	j.Requirements = nil
	assert.Error(t, ValidateJob(j))
}

func TestValidateJob_RejectsEmptyTitleOrDepartment(t *testing.T) {
	j := validJob()
	j.Title = ""
	assert.Error(t, ValidateJob(j))

	j = validJob()
	j.Department = ""
	assert.Error(t, ValidateJob(j))
}

func TestValidateJob_RejectsWeightOutOfRange(t *testing.T) {
	j := validJob()
	j.Requirements[0].Weight = 11
	assert.Error(t, ValidateJob(j))

	j = validJob()
	j.Requirements[0].Weight = 0
	assert.Error(t, ValidateJob(j))
}

func TestJobSearchText(t *testing.T) {
	j := validJob()
	j.Description = "We are looking for a senior developer"

	text := JobSearchText(j)
	assert.Contains(t, text, "senior full-stack developer")
	assert.Contains(t, text, "engineering")
	assert.Contains(t, text, "javascript advanced")
	assert.Contains(t, text, "we are looking for a senior developer")
}
