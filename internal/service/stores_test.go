package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/learnhub/learnhub-backend/internal/model"
	"github.com/learnhub/learnhub-backend/internal/repository"
)

// In-memory store fakes backing the service tests.

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

type memAccountStore struct {
	byEmail map[string]*model.Account
}

func newMemAccountStore() *memAccountStore {
	return &memAccountStore{byEmail: make(map[string]*model.Account)}
}

func (m *memAccountStore) Create(_ context.Context, a *model.Account) error {
	if _, ok := m.byEmail[a.Email]; ok {
		return repository.ErrEmailTaken
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.byEmail[a.Email] = &cp
	return nil
}

func (m *memAccountStore) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

type memCourseStore struct {
	byID map[string]*model.Course
}

func newMemCourseStore() *memCourseStore {
	return &memCourseStore{byID: make(map[string]*model.Course)}
}

func (m *memCourseStore) Create(_ context.Context, c *model.Course) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCourseStore) UpdateOwned(_ context.Context, creatorID string, req *model.UpdateCourseRequest) (bool, error) {
	existing, ok := m.byID[req.CourseID]
	if !ok || existing.CreatorID != creatorID {
		return false, nil
	}
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.ImageURL != nil {
		existing.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	existing.UpdatedAt = time.Now()
	return true, nil
}

func (m *memCourseStore) DeleteOwned(_ context.Context, courseID, creatorID string) (bool, error) {
	existing, ok := m.byID[courseID]
	if !ok || existing.CreatorID != creatorID {
		return false, nil
	}
	delete(m.byID, courseID)
	return true, nil
}

func (m *memCourseStore) ListByCreator(_ context.Context, creatorID string) ([]model.Course, error) {
	var courses []model.Course
	for _, c := range m.byID {
		if c.CreatorID == creatorID {
			courses = append(courses, *c)
		}
	}
	return courses, nil
}

func (m *memCourseStore) ListAll(_ context.Context) ([]model.Course, error) {
	var courses []model.Course
	for _, c := range m.byID {
		courses = append(courses, *c)
	}
	return courses, nil
}

func (m *memCourseStore) GetByIDs(_ context.Context, ids []string) ([]model.Course, error) {
	var courses []model.Course
	for _, id := range ids {
		if c, ok := m.byID[id]; ok {
			courses = append(courses, *c)
		}
	}
	return courses, nil
}

type memPurchaseStore struct {
	purchases []model.Purchase
}

func (m *memPurchaseStore) Create(_ context.Context, p *model.Purchase) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	m.purchases = append(m.purchases, *p)
	return nil
}

func (m *memPurchaseStore) ListByUser(_ context.Context, userID string) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range m.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// unreachableRedis returns a client that fails fast, exercising the
// cache-miss fallback paths without a live server.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            "127.0.0.1:1",
		DialTimeout:     50 * time.Millisecond,
		ReadTimeout:     50 * time.Millisecond,
		WriteTimeout:    50 * time.Millisecond,
		MaxRetries:      -1,
		PoolTimeout:     50 * time.Millisecond,
		MinIdleConns:    0,
		ConnMaxIdleTime: time.Millisecond,
	})
}
