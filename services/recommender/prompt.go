package recommender

import (
	"encoding/json"
	"fmt"

	"jobboard-backend/models/jobs"
	"jobboard-backend/models/users"
)

type jobSummary struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	RequiredSkills string `json:"required_skills"`
	Location       string `json:"location"`
	SalaryRange    string `json:"salary_range"`
	JobType        string `json:"job_type"`
	Description    string `json:"description"`
}

const promptTemplate = `You are a job recommendation assistant. Analyze and match jobs to the user based on multiple criteria.

User Profile:
- Skills: %s
- Location: %s
- Experience Years: %s
- Expected Salary: %s

Available Jobs:
%s

For each job, calculate match scores (0.0 to 1.0) for:
1. skill_match_score - How well user's skills match required skills
2. location_match_score - Location compatibility
3. salary_match_score - Salary range compatibility
4. experience_match_score - Experience level match

Then calculate an overall match_score (weighted average).

Return ONLY valid JSON with this exact structure:
{
    "recommendations": [
        {
            "job_id": 1,
            "match_score": 0.85,
            "skill_match_score": 0.9,
            "location_match_score": 1.0,
            "salary_match_score": 0.8,
            "experience_match_score": 0.85,
            "match_reasons": {"skills": "Strong match in Python and JavaScript", "location": "Same city"},
            "missing_skills": {"required": ["Docker", "AWS"], "recommendation": "Consider learning cloud technologies"}
        }
    ]
}

Recommend the top 5 best matching jobs, ordered by match_score (highest first).`

// BuildMatchPrompt собирает запрос к модели по профилю и полному списку вакансий
func BuildMatchPrompt(profile *users.UserProfile, openJobs []jobs.Job) (string, error) {
	summaries := make([]jobSummary, 0, len(openJobs))
	for _, job := range openJobs {
		summaries = append(summaries, jobSummary{
			ID:             job.ID,
			Title:          job.Title,
			Company:        job.Company,
			RequiredSkills: job.SkillsRequired,
			Location:       job.Location,
			SalaryRange:    job.SalaryRange,
			JobType:        job.JobType,
			Description:    job.Description,
		})
	}

	jobsJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize jobs list: %w", err)
	}

	experience := "Not specified"
	if profile.ExperienceYears > 0 {
		experience = fmt.Sprintf("%d", profile.ExperienceYears)
	}

	return fmt.Sprintf(promptTemplate,
		orNotSpecified(profile.Skills),
		orNotSpecified(profile.Location),
		experience,
		orNotSpecified(profile.SalaryRange),
		string(jobsJSON),
	), nil
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
