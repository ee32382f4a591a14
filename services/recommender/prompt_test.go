package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/models/jobs"
	"jobboard-backend/models/users"
)

func TestBuildMatchPrompt(t *testing.T) {
	profile := &users.UserProfile{
		Skills:          "Python, SQL",
		Location:        "Berlin",
		ExperienceYears: 4,
		SalaryRange:     "60000-80000",
	}
	openJobs := []jobs.Job{
		{
			ID:             1,
			Title:          "Backend Developer",
			Company:        "Acme",
			SkillsRequired: "Python",
			Location:       "Berlin",
			SalaryRange:    "65000-85000",
			JobType:        "full_time",
			Description:    "Build services",
		},
		{
			ID:             2,
			Title:          "Welder",
			Company:        "SteelCo",
			SkillsRequired: "Welding",
			Location:       "Hamburg",
			SalaryRange:    "40000-50000",
			JobType:        "full_time",
			Description:    "Weld things",
		},
	}

	prompt, err := BuildMatchPrompt(profile, openJobs)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Skills: Python, SQL")
	assert.Contains(t, prompt, "Location: Berlin")
	assert.Contains(t, prompt, "Experience Years: 4")
	assert.Contains(t, prompt, `"required_skills": "Welding"`)
	assert.Contains(t, prompt, `"title": "Backend Developer"`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, "salary_match_score")
	assert.Contains(t, prompt, "top 5 best matching jobs")
}

func TestBuildMatchPromptEmptyProfileFields(t *testing.T) {
	prompt, err := BuildMatchPrompt(&users.UserProfile{}, []jobs.Job{{ID: 1}})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Skills: Not specified")
	assert.Contains(t, prompt, "Location: Not specified")
	assert.Contains(t, prompt, "Experience Years: Not specified")
	assert.Contains(t, prompt, "Expected Salary: Not specified")
}
