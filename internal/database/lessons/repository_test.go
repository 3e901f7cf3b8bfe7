package lessons

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage/storagetest"
)

func setupTestRepo(t *testing.T) *Repository {
	store, _, _ := storagetest.NewStore(t)
	return NewRepository(store)
}

func newLesson(title, moduleID string, pos int) entities.NewLesson {
	video := "https://example.com/" + title + ".mp4"
	return entities.NewLesson{
		Title:       title,
		Description: "About " + title,
		VideoURL:    &video,
		ModuleID:    moduleID,
		Position:    pos,
	}
}

func TestRepository_CreateThenGet(t *testing.T) {
	repo := setupTestRepo(t)

	created, err := repo.CreateLesson(newLesson("variables", "m1", 1))
	require.NoError(t, err)

	got, err := repo.GetLessonByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	require.NotNil(t, got.VideoURL)
	assert.Nil(t, got.PDFURL)
}

func TestRepository_CreateLesson_Validation(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.CreateLesson(entities.NewLesson{ModuleID: "m1"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = repo.CreateLesson(entities.NewLesson{Title: "x"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestRepository_GetLessonsByModule(t *testing.T) {
	repo := setupTestRepo(t)
	_, err := repo.CreateLesson(newLesson("a", "m1", 1))
	require.NoError(t, err)
	_, err = repo.CreateLesson(newLesson("b", "m2", 1))
	require.NoError(t, err)
	_, err = repo.CreateLesson(newLesson("c", "m1", 2))
	require.NoError(t, err)

	got, err := repo.GetLessonsByModule("m1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, "c", got[1].Title)

	multi, err := repo.GetLessonsByModules([]string{"m1", "m2"})
	require.NoError(t, err)
	assert.Len(t, multi, 3)

	none, err := repo.GetLessonsByModules(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_UpdateLesson(t *testing.T) {
	repo := setupTestRepo(t)
	created, err := repo.CreateLesson(newLesson("a", "m1", 1))
	require.NoError(t, err)

	pdf := "https://example.com/a.pdf"
	pdfPtr := &pdf
	var noVideo *string
	updated, err := repo.UpdateLesson(created.ID, entities.LessonUpdate{PDFURL: &pdfPtr, VideoURL: &noVideo})

	require.NoError(t, err)
	require.NotNil(t, updated.PDFURL)
	assert.Equal(t, pdf, *updated.PDFURL)
	assert.Nil(t, updated.VideoURL)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	title := "x"
	_, err = repo.UpdateLesson("missing", entities.LessonUpdate{Title: &title})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
