package jobs

import (
	"time"

	"jobboard-backend/config"
)

// Job — вакансия, размещённая работодателем
type Job struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	EmployerID     uint   `json:"employer_id" gorm:"not null"`
	Company        string `json:"company" gorm:"size:200;not null"`
	Title          string `json:"title" gorm:"size:50;not null"`
	Location       string `json:"location" gorm:"size:320;not null"`
	JobType        string `json:"job_type" gorm:"size:20;not null"`
	SalaryRange    string `json:"salary_range" gorm:"size:100;not null"`
	Description    string `json:"description" gorm:"size:320;not null"`
	SkillsRequired string `json:"skills_required" gorm:"size:320;not null"`
	Requirements   string `json:"requirements" gorm:"size:200;not null"`

	Applications []Application `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Application struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `json:"user_id" gorm:"not null"`
	JobID      uint    `json:"job_id" gorm:"not null"`
	MatchScore float64 `json:"match_score"`

	CoverLetter string `json:"cover_letter" gorm:"type:text"`
	ResumeURL   string `json:"resume_url" gorm:"size:500"`

	Job Job `json:"job" gorm:"constraint:OnDelete:CASCADE"`

	AppliedAt  time.Time  `json:"applied_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

func ListOpenJobs() ([]Job, error) {
	var all []Job
	if err := config.DB.Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

func GetJobByID(jobID uint) (*Job, error) {
	var job Job
	if err := config.DB.First(&job, jobID).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func ListByEmployer(employerID uint) ([]Job, error) {
	var posted []Job
	if err := config.DB.Where("employer_id = ?", employerID).
		Order("created_at DESC").Find(&posted).Error; err != nil {
		return nil, err
	}
	return posted, nil
}
