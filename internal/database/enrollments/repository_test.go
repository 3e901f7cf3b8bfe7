package enrollments

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/storage"
	"github.com/mrlokans/learnhub/internal/storage/storagetest"
)

func setupTestRepo(t *testing.T) (*Repository, *storage.MemoryBackend) {
	store, backend, _ := storagetest.NewStore(t)
	return NewRepository(store), backend
}

func TestRepository_CreateEnrollment(t *testing.T) {
	repo, _ := setupTestRepo(t)

	e, err := repo.CreateEnrollment("u1", "c1")

	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "u1", e.UserID)
	assert.Equal(t, "c1", e.CourseID)
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)

	got, err := repo.GetEnrollmentByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestRepository_CreateEnrollment_IsUniquePerPair(t *testing.T) {
	repo, _ := setupTestRepo(t)

	first, err := repo.CreateEnrollment("u1", "c1")
	require.NoError(t, err)
	second, err := repo.CreateEnrollment("u1", "c1")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	all, err := repo.GetEnrollments()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_CreateEnrollment_Validation(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.CreateEnrollment("", "c1")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestRepository_GetEnrollmentsByUserAndCourse(t *testing.T) {
	repo, _ := setupTestRepo(t)
	for _, pair := range [][2]string{{"u1", "c1"}, {"u2", "c1"}, {"u1", "c2"}} {
		_, err := repo.CreateEnrollment(pair[0], pair[1])
		require.NoError(t, err)
	}

	byUser, err := repo.GetEnrollmentsByUser("u1")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, "c1", byUser[0].CourseID)
	assert.Equal(t, "c2", byUser[1].CourseID)

	byCourse, err := repo.GetEnrollmentsByCourse("c1")
	require.NoError(t, err)
	assert.Len(t, byCourse, 2)

	enrolled, err := repo.IsEnrolled("u2", "c2")
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestRepository_DeleteEnrollment(t *testing.T) {
	repo, backend := setupTestRepo(t)
	e, err := repo.CreateEnrollment("u1", "c1")
	require.NoError(t, err)

	ok, err := repo.DeleteEnrollment(e.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	before := backend.Snapshot()
	ok, err = repo.DeleteEnrollment(e.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, backend.Snapshot())

	_, err = repo.GetEnrollmentByID(e.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestRepository_DeleteEnrollmentByUserAndCourse(t *testing.T) {
	repo, _ := setupTestRepo(t)
	_, err := repo.CreateEnrollment("u1", "c1")
	require.NoError(t, err)
	_, err = repo.CreateEnrollment("u1", "c2")
	require.NoError(t, err)

	ok, err := repo.DeleteEnrollmentByUserAndCourse("u1", "c1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DeleteEnrollmentByUserAndCourse("u1", "c1")
	require.NoError(t, err)
	assert.False(t, ok)

	remaining, err := repo.GetEnrollmentsByUser("u1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "c2", remaining[0].CourseID)
}
