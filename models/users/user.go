package users

import (
	"time"

	"jobboard-backend/config"

	"jobboard-backend/models/jobs"
	"jobboard-backend/models/recommend"
)

const (
	RoleJobSeeker = "job_seeker"
	RoleCompany   = "company"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `json:"email" gorm:"size:255;unique;not null"`
	Password string `json:"-" gorm:"size:320;not null"`
	Phone    string `json:"phone" gorm:"size:100;not null"`
	Role     string `json:"role" gorm:"size:20;not null;default:user"`

	Profile         *UserProfile                  `json:"profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Applications    []jobs.Application            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Recommendations []recommend.JobRecommendation `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PostedJobs      []jobs.Job                    `json:"-" gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile — анкета соискателя или компании, одна на пользователя
type UserProfile struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `json:"user_id" gorm:"unique;not null;constraint:OnDelete:CASCADE"`
	FullName        string `json:"full_name" gorm:"size:100"`
	Location        string `json:"location" gorm:"size:320;not null"`
	CompanyName     string `json:"company_name" gorm:"size:100"`
	Skills          string `json:"skills" gorm:"size:320"`
	Role            string `json:"role" gorm:"size:20;not null;default:user"`
	Bio             string `json:"bio" gorm:"size:400"`
	ExperienceYears int    `json:"experience_years" gorm:"default:0"`
	Certification   string `json:"certification" gorm:"size:100"`
	SalaryRange     string `json:"salary_range" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func GetUserByID(userID uint) (*User, error) {
	var user User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetProfileByUserID(userID uint) (*UserProfile, error) {
	var profile UserProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
