package recommend

import (
	"time"

	"gorm.io/datatypes"

	"jobboard-backend/models/jobs"
)

// JobRecommendation — одна рекомендация AI для пары (пользователь, вакансия).
// Свежая генерация полностью заменяет прежний набор строк пользователя.
type JobRecommendation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `json:"user_id" gorm:"not null;index"`
	JobID  uint `json:"job_id" gorm:"not null"`

	MatchScore           float64  `json:"match_score"`
	SkillMatchScore      *float64 `json:"skill_match_score,omitempty"`
	LocationMatchScore   *float64 `json:"location_match_score,omitempty"`
	SalaryMatchScore     *float64 `json:"salary_match_score,omitempty"`
	ExperienceMatchScore *float64 `json:"experience_match_score,omitempty"`

	// Пояснения храним сериализованным JSON, разбирает их только презентер
	MatchReasons  datatypes.JSON `json:"match_reasons,omitempty"`
	MissingSkills datatypes.JSON `json:"missing_skills,omitempty"`

	Job jobs.Job `json:"job" gorm:"constraint:OnDelete:CASCADE"`

	RecommendedAt time.Time  `json:"recommended_at" gorm:"autoCreateTime"`
	ViewedAt      *time.Time `json:"viewed_at,omitempty"`
}
