package store

import (
	"context"
	"time"

	"github.com/andras/talent-sonar/internal/types"
)

// SeedDemoData loads a small candidate/job dataset into the repository so
// the CLI and demos have something to match against.
func SeedDemoData(ctx context.Context, repo Repository) error {
	for _, c := range DemoCandidates() {
		if err := repo.AddCandidate(ctx, c); err != nil {
			return err
		}
	}
	for _, j := range DemoJobs() {
		if err := repo.AddJob(ctx, j); err != nil {
			return err
		}
	}
	return nil
}

// DemoCandidates returns the demo candidate pool.
func DemoCandidates() []*types.Candidate {
	end2024 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*types.Candidate{
		{
			ID:        "candidate_1",
			FirstName: "John",
			LastName:  "Smith",
			Email:     "john.smith@company.com",
			Location:  "Budapest",
			Skills: []types.Skill{
				{Name: "JavaScript", Level: types.LevelAdvanced, YearsOfExperience: 5},
				{Name: "React", Level: types.LevelAdvanced, YearsOfExperience: 4},
				{Name: "Node.js", Level: types.LevelIntermediate, YearsOfExperience: 3},
			},
			Experience: []types.WorkExperience{
				{
					Company:      "Tech Corp",
					Position:     "Senior Developer",
					StartDate:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
					EndDate:      &end2024,
					Description:  "Full-stack development",
					Technologies: []string{"JavaScript", "React", "Node.js"},
				},
			},
			Education:          []string{"Computer Science Degree"},
			ResumeText:         "Experienced full-stack developer with expertise in modern web technologies",
			IsInternal:         true,
			Department:         "Engineering",
			CurrentRole:        "Senior Developer",
			CareerAspirations:  []string{"Team Lead", "Architect"},
			AvailabilityStatus: types.Available,
			LastUpdated:        time.Now(),
		},
		{
			ID:        "candidate_2",
			FirstName: "Sarah",
			LastName:  "Johnson",
			Email:     "sarah.johnson@external.com",
			Location:  "Budapest",
			Skills: []types.Skill{
				{Name: "Python", Level: types.LevelExpert, YearsOfExperience: 7},
				{Name: "Machine Learning", Level: types.LevelAdvanced, YearsOfExperience: 5},
				{Name: "TensorFlow", Level: types.LevelAdvanced, YearsOfExperience: 4},
			},
			Experience: []types.WorkExperience{
				{
					Company:      "AI Solutions",
					Position:     "ML Engineer",
					StartDate:    time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
					Description:  "Machine learning model development",
					Technologies: []string{"Python", "TensorFlow", "Scikit-learn"},
				},
			},
			Education:          []string{"PhD in Computer Science"},
			ResumeText:         "PhD-level machine learning engineer with extensive experience in AI model development",
			IsInternal:         false,
			AvailabilityStatus: types.Available,
			LastUpdated:        time.Now(),
		},
	}
}

// DemoJobs returns the demo job postings.
func DemoJobs() []*types.Job {
	return []*types.Job{
		{
			ID:          "job_1",
			Title:       "Senior Full-Stack Developer",
			Department:  "Engineering",
			Location:    "Budapest",
			Description: "We are looking for a senior full-stack developer to join our team",
			Requirements: []types.Requirement{
				{Skill: "JavaScript", Level: types.LevelAdvanced, Required: true, Weight: 9},
				{Skill: "React", Level: types.LevelAdvanced, Required: true, Weight: 8},
				{Skill: "Node.js", Level: types.LevelIntermediate, Required: true, Weight: 7},
				{Skill: "TypeScript", Level: types.LevelIntermediate, Required: false, Weight: 6},
			},
			EmploymentType:  "full-time",
			ExperienceLevel: types.BandSenior,
			Status:          types.JobOpen,
			PostedDate:      time.Now(),
			HiringManager:   "Jane Doe",
		},
		{
			ID:          "job_2",
			Title:       "AI/ML Engineer",
			Department:  "Data Science",
			Location:    "Budapest",
			Description: "Join our AI team to build cutting-edge machine learning solutions",
			Requirements: []types.Requirement{
				{Skill: "Python", Level: types.LevelAdvanced, Required: true, Weight: 10},
				{Skill: "Machine Learning", Level: types.LevelAdvanced, Required: true, Weight: 9},
				{Skill: "TensorFlow", Level: types.LevelIntermediate, Required: true, Weight: 8},
				{Skill: "Deep Learning", Level: types.LevelIntermediate, Required: false, Weight: 7},
			},
			EmploymentType:  "full-time",
			ExperienceLevel: types.BandSenior,
			Status:          types.JobOpen,
			PostedDate:      time.Now(),
			HiringManager:   "Bob Wilson",
		},
	}
}
