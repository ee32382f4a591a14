package recommender

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobboard-backend/models/jobs"
	"jobboard-backend/models/recommend"
	"jobboard-backend/models/users"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&users.UserProfile{},
		&jobs.Job{},
		&recommend.JobRecommendation{},
	))

	return db
}

func seedJobs(t *testing.T, db *gorm.DB, openJobs ...jobs.Job) {
	t.Helper()
	for i := range openJobs {
		require.NoError(t, db.Create(&openJobs[i]).Error)
	}
}

func TestReplaceRecommendationsInsertsBatch(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	inserted, err := store.ReplaceRecommendations(7, []recommend.JobRecommendation{
		{JobID: 1, MatchScore: 0.9},
		{JobID: 2, MatchScore: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	recs, err := store.ListByUser(7)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, uint(7), rec.UserID)
	}
}

func TestReplaceRecommendationsReplacesWholeBatch(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	_, err := store.ReplaceRecommendations(7, []recommend.JobRecommendation{
		{JobID: 1, MatchScore: 0.9},
		{JobID: 2, MatchScore: 0.5},
	})
	require.NoError(t, err)

	inserted, err := store.ReplaceRecommendations(7, []recommend.JobRecommendation{
		{JobID: 3, MatchScore: 0.7},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	// Вторая генерация не объединяется с первой
	recs, err := store.ListByUser(7)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, uint(3), recs[0].JobID)
}

func TestReplaceRecommendationsKeepsOtherUsers(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	_, err := store.ReplaceRecommendations(1, []recommend.JobRecommendation{{JobID: 1, MatchScore: 0.9}})
	require.NoError(t, err)
	_, err = store.ReplaceRecommendations(2, []recommend.JobRecommendation{{JobID: 2, MatchScore: 0.8}})
	require.NoError(t, err)

	recs, err := store.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, uint(1), recs[0].JobID)
}

func TestReplaceRecommendationsEmptyClearsBatch(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	_, err := store.ReplaceRecommendations(7, []recommend.JobRecommendation{{JobID: 1, MatchScore: 0.9}})
	require.NoError(t, err)

	inserted, err := store.ReplaceRecommendations(7, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	recs, err := store.ListByUser(7)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestReplaceRecommendationsRollsBackOnInsertFailure(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	_, err := store.ReplaceRecommendations(7, []recommend.JobRecommendation{
		{JobID: 1, MatchScore: 0.6},
		{JobID: 2, MatchScore: 0.4},
	})
	require.NoError(t, err)

	// Дубликат первичного ключа валит вставку внутри транзакции
	_, err = store.ReplaceRecommendations(7, []recommend.JobRecommendation{
		{ID: 5, JobID: 3, MatchScore: 0.9},
		{ID: 5, JobID: 4, MatchScore: 0.8},
	})

	var persistErr *PersistenceError
	require.True(t, errors.As(err, &persistErr))

	// Удаление откатилось вместе со вставкой: прежний набор цел
	recs, err := store.ListByUser(7)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, uint(1), recs[0].JobID)
	assert.Equal(t, 0.6, recs[0].MatchScore)
	assert.Equal(t, uint(2), recs[1].JobID)
}

func TestReplaceRecommendationsDoesNotMutateInput(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	input := []recommend.JobRecommendation{
		{JobID: 1, MatchScore: 0.9},
		{JobID: 2, MatchScore: 0.5},
	}

	_, err := store.ReplaceRecommendations(7, input)
	require.NoError(t, err)

	for _, rec := range input {
		assert.Zero(t, rec.ID)
		assert.Zero(t, rec.UserID)
	}
}

func TestListByUserOrdering(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	_, err := store.ReplaceRecommendations(7, []recommend.JobRecommendation{
		{JobID: 1, MatchScore: 0.5},
		{JobID: 2, MatchScore: 0.9},
		{JobID: 3, MatchScore: 0.5},
		{JobID: 4, MatchScore: 0.7},
	})
	require.NoError(t, err)

	recs, err := store.ListByUser(7)
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t, uint(2), recs[0].JobID)
	assert.Equal(t, uint(4), recs[1].JobID)
	// Равные скоры сохраняют порядок вставки
	assert.Equal(t, uint(1), recs[2].JobID)
	assert.Equal(t, uint(3), recs[3].JobID)
}

func TestListByUserPreloadsJob(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	seedJobs(t, db, jobs.Job{ID: 1, Title: "Backend Developer", Company: "Acme"})

	_, err := store.ReplaceRecommendations(7, []recommend.JobRecommendation{{JobID: 1, MatchScore: 0.9}})
	require.NoError(t, err)

	recs, err := store.ListByUser(7)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Backend Developer", recs[0].Job.Title)
}

func TestListByUserEmpty(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	recs, err := store.ListByUser(42)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStoreCollaboratorReads(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	require.NoError(t, db.Create(&users.UserProfile{UserID: 7, Skills: "Go", Location: "Berlin"}).Error)
	seedJobs(t, db,
		jobs.Job{ID: 1, Title: "Backend Developer"},
		jobs.Job{ID: 2, Title: "Welder"},
	)

	profile, err := store.GetProfile(7)
	require.NoError(t, err)
	assert.Equal(t, "Go", profile.Skills)

	open, err := store.ListOpenJobs()
	require.NoError(t, err)
	assert.Len(t, open, 2)

	job, err := store.GetJob(2)
	require.NoError(t, err)
	assert.Equal(t, "Welder", job.Title)

	_, err = store.GetProfile(99)
	require.Error(t, err)
}
