package users

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
	"github.com/mrlokans/learnhub/internal/storage/storagetest"
)

func setupTestRepo(t *testing.T) (*Repository, *storage.MemoryBackend) {
	store, backend, _ := storagetest.NewStore(t)
	return NewRepository(store), backend
}

func newStudent(email string) entities.NewUser {
	return entities.NewUser{Email: email, FullName: "Jane Student", Role: entities.RoleStudent}
}

func TestRepository_CreateUser(t *testing.T) {
	repo, _ := setupTestRepo(t)

	user, err := repo.CreateUser(newStudent("student@example.com"))

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "student@example.com", user.Email)
	assert.Equal(t, entities.RoleStudent, user.Role)
	assert.Nil(t, user.AvatarURL)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestRepository_CreateThenGetByID(t *testing.T) {
	repo, _ := setupTestRepo(t)
	avatar := "https://example.com/a.png"

	created, err := repo.CreateUser(entities.NewUser{
		Email: "i@example.com", FullName: "John Instructor", AvatarURL: &avatar, Role: entities.RoleInstructor,
	})
	require.NoError(t, err)

	got, err := repo.GetUserByID(created.ID)

	require.NoError(t, err)
	assert.Equal(t, created, got)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, avatar, *got.AvatarURL)
}

func TestRepository_CreateUser_Validation(t *testing.T) {
	repo, _ := setupTestRepo(t)

	tests := []struct {
		name string
		in   entities.NewUser
	}{
		{name: "missing email", in: entities.NewUser{FullName: "x", Role: entities.RoleStudent}},
		{name: "unknown role", in: entities.NewUser{Email: "a@b.c", Role: "teacher"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateUser(tt.in)
			assert.True(t, errors.Is(err, apperr.ErrValidation))
		})
	}
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.CreateUser(newStudent("dup@example.com"))
	require.NoError(t, err)

	_, err = repo.CreateUser(newStudent("dup@example.com"))
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	all, err := repo.GetUsers()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_GetUserByEmail(t *testing.T) {
	repo, _ := setupTestRepo(t)
	created, err := repo.CreateUser(newStudent("student@example.com"))
	require.NoError(t, err)

	user, err := repo.GetUserByEmail("student@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = repo.GetUserByEmail("Student@Example.com")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestRepository_GetUserByID_NotFound(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.GetUserByID("missing")

	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestRepository_UpdateUser(t *testing.T) {
	repo, _ := setupTestRepo(t)
	created, err := repo.CreateUser(newStudent("student@example.com"))
	require.NoError(t, err)

	name := "Jane Q. Student"
	role := entities.RoleInstructor
	updated, err := repo.UpdateUser(created.ID, entities.UserUpdate{FullName: &name, Role: &role})

	require.NoError(t, err)
	assert.Equal(t, name, updated.FullName)
	assert.Equal(t, role, updated.Role)
	assert.Equal(t, "student@example.com", updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	got, err := repo.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestRepository_UpdateUser_ClearAvatar(t *testing.T) {
	repo, _ := setupTestRepo(t)
	avatar := "https://example.com/a.png"
	created, err := repo.CreateUser(entities.NewUser{Email: "a@example.com", AvatarURL: &avatar, Role: entities.RoleStudent})
	require.NoError(t, err)

	var none *string
	updated, err := repo.UpdateUser(created.ID, entities.UserUpdate{AvatarURL: &none})

	require.NoError(t, err)
	assert.Nil(t, updated.AvatarURL)
}

func TestRepository_UpdateUser_NotFoundLeavesStoreUnchanged(t *testing.T) {
	repo, backend := setupTestRepo(t)
	_, err := repo.CreateUser(newStudent("student@example.com"))
	require.NoError(t, err)
	before := backend.Snapshot()

	name := "ghost"
	_, err = repo.UpdateUser("missing", entities.UserUpdate{FullName: &name})

	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, before, backend.Snapshot())
}

func TestRepository_UpdateUser_EmailTaken(t *testing.T) {
	repo, _ := setupTestRepo(t)
	_, err := repo.CreateUser(newStudent("a@example.com"))
	require.NoError(t, err)
	b, err := repo.CreateUser(newStudent("b@example.com"))
	require.NoError(t, err)

	email := "a@example.com"
	_, err = repo.UpdateUser(b.ID, entities.UserUpdate{Email: &email})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	own := "b@example.com"
	_, err = repo.UpdateUser(b.ID, entities.UserUpdate{Email: &own})
	assert.NoError(t, err)
}

func TestRepository_CreateUser_UniqueIDs(t *testing.T) {
	repo, _ := setupTestRepo(t)

	user1, err := repo.CreateUser(newStudent("user1@example.com"))
	require.NoError(t, err)
	user2, err := repo.CreateUser(newStudent("user2@example.com"))
	require.NoError(t, err)

	assert.NotEqual(t, user1.ID, user2.ID)
}
