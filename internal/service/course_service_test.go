package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub-backend/internal/model"
)

func newTestCourseService(store CourseStore) *CourseService {
	return NewCourseService(store, unreachableRedis(), time.Minute, zerolog.Nop())
}

func TestCourseService_CreateBindsCreator(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := newTestCourseService(store)
	adminID := uuid.NewString()

	course, err := svc.Create(context.Background(), adminID, &model.CreateCourseRequest{
		Title:    "Go Basics",
		Price:    19.99,
		ImageURL: "https://videos.example.com/go.mp4",
	})
	require.NoError(t, err)
	require.NotEmpty(t, course.ID)
	assert.Equal(t, adminID, course.CreatorID)
}

func TestCourseService_ListByCreatorScoped(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := newTestCourseService(store)
	adminA := uuid.NewString()
	adminB := uuid.NewString()

	created, err := svc.Create(context.Background(), adminA, &model.CreateCourseRequest{Title: "A's course"})
	require.NoError(t, err)

	own, err := svc.ListByCreator(context.Background(), adminA)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, created.ID, own[0].ID)

	other, err := svc.ListByCreator(context.Background(), adminB)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCourseService_UpdateOnlyByOwner(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := newTestCourseService(store)
	owner := uuid.NewString()
	stranger := uuid.NewString()

	course, err := svc.Create(context.Background(), owner, &model.CreateCourseRequest{Title: "Before"})
	require.NoError(t, err)

	err = svc.Update(context.Background(), stranger, &model.UpdateCourseRequest{
		CourseID: course.ID,
		Title:    strPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.Equal(t, "Before", store.byID[course.ID].Title)

	err = svc.Update(context.Background(), owner, &model.UpdateCourseRequest{
		CourseID: course.ID,
		Title:    strPtr("After"),
		Price:    f64Ptr(9.99),
	})
	require.NoError(t, err)
	assert.Equal(t, "After", store.byID[course.ID].Title)
	assert.Equal(t, 9.99, store.byID[course.ID].Price)
}

func TestCourseService_UpdateKeepsOmittedFields(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := newTestCourseService(store)
	owner := uuid.NewString()

	course, err := svc.Create(context.Background(), owner, &model.CreateCourseRequest{
		Title:       "Go Basics",
		Description: "An introduction",
		ImageURL:    "https://videos.example.com/go.mp4",
		Price:       49.99,
	})
	require.NoError(t, err)

	// A title-only update leaves every other field untouched.
	err = svc.Update(context.Background(), owner, &model.UpdateCourseRequest{
		CourseID: course.ID,
		Title:    strPtr("Go Basics, 2nd Edition"),
	})
	require.NoError(t, err)

	stored := store.byID[course.ID]
	assert.Equal(t, "Go Basics, 2nd Edition", stored.Title)
	assert.Equal(t, "An introduction", stored.Description)
	assert.Equal(t, "https://videos.example.com/go.mp4", stored.ImageURL)
	assert.Equal(t, 49.99, stored.Price)
}

func TestCourseService_DeleteOnlyByOwner(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := newTestCourseService(store)
	owner := uuid.NewString()
	stranger := uuid.NewString()

	course, err := svc.Create(context.Background(), owner, &model.CreateCourseRequest{Title: "Keep"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), stranger, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.Contains(t, store.byID, course.ID)

	err = svc.Delete(context.Background(), owner, course.ID)
	require.NoError(t, err)
	assert.NotContains(t, store.byID, course.ID)

	err = svc.Delete(context.Background(), owner, uuid.NewString())
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseService_CatalogFallsBackWhenCacheDown(t *testing.T) {
	t.Parallel()

	store := newMemCourseStore()
	svc := newTestCourseService(store)

	_, err := svc.Create(context.Background(), uuid.NewString(), &model.CreateCourseRequest{Title: "One"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), uuid.NewString(), &model.CreateCourseRequest{Title: "Two"})
	require.NoError(t, err)

	courses, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}
