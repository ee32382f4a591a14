package recommender

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"jobboard-backend/models/jobs"
	"jobboard-backend/models/recommend"
	"jobboard-backend/models/users"
)

type ProfileSource interface {
	GetProfile(userID uint) (*users.UserProfile, error)
}

type JobCatalog interface {
	ListOpenJobs() ([]jobs.Job, error)
}

type RecommendationStore interface {
	ReplaceRecommendations(userID uint, recs []recommend.JobRecommendation) (int64, error)
	ListByUser(userID uint) ([]recommend.JobRecommendation, error)
}

// Service — конвейер генерации: профиль + каталог -> промпт -> модель ->
// валидация -> атомарная замена набора. Любой сбой оставляет прежний набор.
type Service struct {
	profiles  ProfileSource
	catalog   JobCatalog
	store     RecommendationStore
	completer Completer
	logger    *zap.Logger

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewService(store *Store, completer Completer, logger *zap.Logger) *Service {
	return &Service{
		profiles:  store,
		catalog:   store,
		store:     store,
		completer: completer,
		logger:    logger,
		locks:     make(map[uint]*sync.Mutex),
	}
}

// Generate выполняет один синхронный цикл генерации для пользователя
// и возвращает число сохранённых рекомендаций.
// Конкурентные вызовы для одного пользователя сериализуются целиком, так что
// чередование delete+insert двух генераций исключено.
func (s *Service) Generate(ctx context.Context, userID uint) (int64, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	profile, err := s.profiles.GetProfile(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load profile for user %d: %w", userID, err)
	}

	openJobs, err := s.catalog.ListOpenJobs()
	if err != nil {
		return 0, fmt.Errorf("failed to load job catalog: %w", err)
	}

	if len(openJobs) == 0 {
		return 0, ErrNoJobs
	}

	prompt, err := BuildMatchPrompt(profile, openJobs)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("requesting job matches",
		zap.Uint("user_id", userID),
		zap.Int("jobs", len(openJobs)),
		zap.Int("prompt_length", len(prompt)),
	)

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return 0, err
	}

	recs, err := parseRecommendations(raw, s.logger)
	if err != nil {
		return 0, err
	}

	inserted, err := s.store.ReplaceRecommendations(userID, recs)
	if err != nil {
		return 0, err
	}

	s.logger.Info("recommendations replaced",
		zap.Uint("user_id", userID),
		zap.Int64("inserted", inserted),
	)

	return inserted, nil
}

func (s *Service) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
