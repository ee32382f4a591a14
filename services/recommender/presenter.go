package recommender

import (
	"encoding/json"
	"time"

	"jobboard-backend/models/jobs"
	"jobboard-backend/models/recommend"
)

// MissingSkills — разбор блоба missing_skills: каких навыков не хватает и что изучить
type MissingSkills struct {
	Required       []string `json:"required"`
	Recommendation string   `json:"recommendation"`
}

type DashboardEntry struct {
	Job                  jobs.Job          `json:"job"`
	MatchScore           float64           `json:"match_score"`
	SkillMatchScore      *float64          `json:"skill_match_score,omitempty"`
	LocationMatchScore   *float64          `json:"location_match_score,omitempty"`
	SalaryMatchScore     *float64          `json:"salary_match_score,omitempty"`
	ExperienceMatchScore *float64          `json:"experience_match_score,omitempty"`
	MatchReasons         map[string]string `json:"match_reasons"`
	MissingSkills        MissingSkills     `json:"missing_skills"`
	RecommendedAt        time.Time         `json:"recommended_at"`
}

type DashboardView struct {
	HasRecommendations bool             `json:"has_recommendations"`
	Recommendations    []DashboardEntry `json:"recommendations"`
}

type recommendationReader interface {
	ListByUser(userID uint) ([]recommend.JobRecommendation, error)
}

// Presenter читает сохранённый набор и готовит его к показу, без побочных эффектов
type Presenter struct {
	store recommendationReader
}

func NewPresenter(store recommendationReader) *Presenter {
	return &Presenter{store: store}
}

// BuildDashboard собирает выдачу пользователя; пустой набор — это пустая
// выдача, а не ошибка
func (p *Presenter) BuildDashboard(userID uint) (*DashboardView, error) {
	recs, err := p.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]DashboardEntry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, DashboardEntry{
			Job:                  rec.Job,
			MatchScore:           rec.MatchScore,
			SkillMatchScore:      rec.SkillMatchScore,
			LocationMatchScore:   rec.LocationMatchScore,
			SalaryMatchScore:     rec.SalaryMatchScore,
			ExperienceMatchScore: rec.ExperienceMatchScore,
			MatchReasons:         decodeReasons(rec.MatchReasons),
			MissingSkills:        decodeMissingSkills(rec.MissingSkills),
			RecommendedAt:        rec.RecommendedAt,
		})
	}

	return &DashboardView{
		HasRecommendations: len(entries) > 0,
		Recommendations:    entries,
	}, nil
}

// Нечитаемый или пустой блоб даёт пустую структуру, ошибок наружу нет
func decodeReasons(blob []byte) map[string]string {
	reasons := map[string]string{}
	if len(blob) == 0 {
		return reasons
	}
	if err := json.Unmarshal(blob, &reasons); err != nil || reasons == nil {
		return map[string]string{}
	}
	return reasons
}

func decodeMissingSkills(blob []byte) MissingSkills {
	var missing MissingSkills
	if len(blob) == 0 {
		return missing
	}
	if err := json.Unmarshal(blob, &missing); err != nil {
		return MissingSkills{}
	}
	return missing
}
