package testsrvc

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelane/backend/vacsrvc"
)

// newTestPgDb returns a pool to a unique, fully migrated test database on
// the local dev postgres. Set PG_TEST_HOST to run these.
func newTestPgDb(t *testing.T) *pgxpool.Pool {
	t.Helper()
	host := os.Getenv("PG_TEST_HOST")
	if host == "" {
		t.Skip("PG_TEST_HOST is not set")
	}
	ctx := context.Background()
	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       "hirelane",
		Password:   "hirelane",
		Host:       host,
		Port:       "5433",
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New("../migrate")
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(ctx, config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func pgSeedVacancy(t *testing.T, pool *pgxpool.Pool, testTime int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO vacancies (id, title, content, type, state, test_time, created_at)
		VALUES ($1, 'Backend Engineer', 'build services', 1, 1, $2, NOW())
	`, id, testTime)
	require.NoError(t, err)
	return id
}

func TestPgTestingRepoRoundTrip(t *testing.T) {
	pool := newTestPgDb(t)
	ctx := context.Background()
	repo := NewPgTestingRepo(pool)
	vacancyID := pgSeedVacancy(t, pool, 7)

	tst := Testing{
		ID:             uuid.New(),
		Title:          "Screening",
		Content:        "answer everything",
		Type:           TestPractical,
		CorrectPercent: 60,
		VacancyID:      vacancyID,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.Create(ctx, tst))

	got, err := repo.Get(ctx, tst.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tst.Title, got.Title)
	assert.Equal(t, TestPractical, got.Type)
	assert.Equal(t, 60, got.CorrectPercent)

	missing, err := repo.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	listed, err := repo.ListByVacancy(ctx, vacancyID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, repo.Delete(ctx, tst.ID))
	got, err = repo.Get(ctx, tst.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPgAttemptRepoFirstAndResult(t *testing.T) {
	pool := newTestPgDb(t)
	ctx := context.Background()
	testings := NewPgTestingRepo(pool)
	attempts := NewPgAttemptRepo(pool)
	vacancyID := pgSeedVacancy(t, pool, 7)

	tst := Testing{
		ID: uuid.New(), Title: "t", Content: "c", Type: TestPractical,
		CorrectPercent: 50, VacancyID: vacancyID, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, testings.Create(ctx, tst))

	user := uuid.New()
	base := time.Now().UTC().Truncate(time.Microsecond)
	first := Attempt{
		ID: uuid.New(), Percent: 0, Status: AttemptPending,
		UserID: user, TestID: tst.ID, CreatedAt: base,
	}
	second := Attempt{
		ID: uuid.New(), Percent: 70, Status: AttemptGraded,
		UserID: user, TestID: tst.ID, CreatedAt: base.Add(time.Hour),
	}
	require.NoError(t, attempts.Create(ctx, first))
	require.NoError(t, attempts.Create(ctx, second))

	got, err := attempts.GetFirst(ctx, user, tst.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	require.NoError(t, attempts.SetResult(ctx, first.ID, 40, AttemptGraded))

	listed, err := attempts.ListByUser(ctx, user, &tst.ID, 10, 0, "created_at")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, 40, listed[0].Percent)
	assert.Equal(t, AttemptGraded, listed[0].Status)
	assert.Equal(t, tst.Title, listed[0].Test.Title)
}

func TestPgAttemptRepoApprovedUsers(t *testing.T) {
	pool := newTestPgDb(t)
	ctx := context.Background()
	testings := NewPgTestingRepo(pool)
	attempts := NewPgAttemptRepo(pool)
	vacancyID := pgSeedVacancy(t, pool, 7)

	t1 := Testing{
		ID: uuid.New(), Title: "theory", Content: "c", Type: TestTheoretical,
		CorrectPercent: 50, VacancyID: vacancyID, CreatedAt: time.Now().UTC(),
	}
	t2 := Testing{
		ID: uuid.New(), Title: "practice", Content: "c", Type: TestPractical,
		CorrectPercent: 80, VacancyID: vacancyID, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, testings.Create(ctx, t1))
	require.NoError(t, testings.Create(ctx, t2))

	passer := uuid.New()
	partial := uuid.New()
	now := time.Now().UTC()

	// passer: a failed try then a pass on each testing
	for _, a := range []Attempt{
		{ID: uuid.New(), Percent: 20, Status: AttemptGraded, UserID: passer, TestID: t1.ID, CreatedAt: now},
		{ID: uuid.New(), Percent: 90, Status: AttemptGraded, UserID: passer, TestID: t1.ID, CreatedAt: now},
		{ID: uuid.New(), Percent: 85, Status: AttemptGraded, UserID: passer, TestID: t2.ID, CreatedAt: now},
		// partial only passes the theory testing
		{ID: uuid.New(), Percent: 60, Status: AttemptGraded, UserID: partial, TestID: t1.ID, CreatedAt: now},
		{ID: uuid.New(), Percent: 79, Status: AttemptGraded, UserID: partial, TestID: t2.ID, CreatedAt: now},
	} {
		require.NoError(t, attempts.Create(ctx, a))
	}

	approved, err := attempts.ApprovedUsers(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, passer, approved[0].UserID)
	assert.Equal(t, vacancyID, approved[0].VacancyID)
	assert.Equal(t, vacsrvc.VacancyOpened, approved[0].VacancyState)
	require.Len(t, approved[0].Testings, 2)
	for _, pt := range approved[0].Testings {
		switch pt.ID {
		case t1.ID:
			assert.Equal(t, 90, pt.Percent, "best attempt wins")
		case t2.ID:
			assert.Equal(t, 85, pt.Percent)
		default:
			t.Fatalf("unexpected testing %s in report", pt.ID)
		}
	}
}
