package recommender

import (
	"gorm.io/gorm"

	"jobboard-backend/models/jobs"
	"jobboard-backend/models/recommend"
	"jobboard-backend/models/users"
)

// Store — gorm-реализация хранилища рекомендаций и read-only доступа
// к профилю и каталогу вакансий. Общая сессия наружу не отдаётся.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ReplaceRecommendations атомарно заменяет набор пользователя: удаление старых
// строк и вставка новых коммитятся вместе либо откатываются вместе.
// Пустой список допустим только для явной очистки — сервис его сюда не передаёт.
func (s *Store) ReplaceRecommendations(userID uint, recs []recommend.JobRecommendation) (int64, error) {
	var inserted int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&recommend.JobRecommendation{}).Error; err != nil {
			return err
		}

		if len(recs) == 0 {
			return nil
		}

		// Вставляем копию, чтобы не трогать срез вызывающего
		rows := make([]recommend.JobRecommendation, len(recs))
		copy(rows, recs)
		for i := range rows {
			rows[i].UserID = userID
		}

		result := tx.Create(&rows)
		if result.Error != nil {
			return result.Error
		}
		inserted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, &PersistenceError{Err: err}
	}

	return inserted, nil
}

// ListByUser возвращает текущий набор по убыванию match_score,
// равные скоры упорядочены по id для стабильности выдачи
func (s *Store) ListByUser(userID uint) ([]recommend.JobRecommendation, error) {
	var recs []recommend.JobRecommendation
	if err := s.db.Preload("Job").
		Where("user_id = ?", userID).
		Order("match_score DESC, id ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *Store) GetProfile(userID uint) (*users.UserProfile, error) {
	var profile users.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) ListOpenJobs() ([]jobs.Job, error) {
	var all []jobs.Job
	if err := s.db.Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

func (s *Store) GetJob(jobID uint) (*jobs.Job, error) {
	var job jobs.Job
	if err := s.db.First(&job, jobID).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
