package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub-backend/internal/model"
)

func TestPurchaseService_DuplicatePurchasesAccepted(t *testing.T) {
	t.Parallel()

	courses := newMemCourseStore()
	purchases := &memPurchaseStore{}
	svc := NewPurchaseService(purchases, courses, zerolog.Nop())

	course := &model.Course{Title: "Go Basics", CreatorID: uuid.NewString()}
	require.NoError(t, courses.Create(context.Background(), course))

	userID := uuid.NewString()
	for i := 0; i < 2; i++ {
		_, err := svc.Purchase(context.Background(), userID, course.ID)
		require.NoError(t, err)
	}

	got, courseData, err := svc.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 2, "both purchase records survive, no dedup")
	for _, p := range got {
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, course.ID, p.CourseID)
	}
	// The join resolves the course once, over distinct ids.
	require.Len(t, courseData, 1)
	assert.Equal(t, course.ID, courseData[0].ID)
}

func TestPurchaseService_ListScopedToUser(t *testing.T) {
	t.Parallel()

	courses := newMemCourseStore()
	purchases := &memPurchaseStore{}
	svc := NewPurchaseService(purchases, courses, zerolog.Nop())

	course := &model.Course{Title: "Redis Patterns", CreatorID: uuid.NewString()}
	require.NoError(t, courses.Create(context.Background(), course))

	alice := uuid.NewString()
	bob := uuid.NewString()

	_, err := svc.Purchase(context.Background(), alice, course.ID)
	require.NoError(t, err)
	_, err = svc.Purchase(context.Background(), bob, course.ID)
	require.NoError(t, err)

	got, _, err := svc.ListForUser(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, alice, got[0].UserID)
}

func TestPurchaseService_InsertUnconditional(t *testing.T) {
	t.Parallel()

	courses := newMemCourseStore()
	purchases := &memPurchaseStore{}
	svc := NewPurchaseService(purchases, courses, zerolog.Nop())

	// A purchase of a course id that resolves to nothing still succeeds;
	// the join then simply returns no course data.
	userID := uuid.NewString()
	ghost := uuid.NewString()
	_, err := svc.Purchase(context.Background(), userID, ghost)
	require.NoError(t, err)

	got, courseData, err := svc.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, courseData)
}

func TestPurchaseService_EmptyListForNewUser(t *testing.T) {
	t.Parallel()

	svc := NewPurchaseService(&memPurchaseStore{}, newMemCourseStore(), zerolog.Nop())

	got, courseData, err := svc.ListForUser(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, courseData)
}
