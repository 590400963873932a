package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub-backend/internal/config"
	"github.com/learnhub/learnhub-backend/internal/model"
)

// ErrCourseNotFound covers both "no such course" and "not the owner": the
// ownership filter collapses them into a single no-match outcome.
var ErrCourseNotFound = errors.New("course not found")

// CourseStore is the persistence surface CourseService needs.
type CourseStore interface {
	Create(ctx context.Context, c *model.Course) error
	UpdateOwned(ctx context.Context, creatorID string, req *model.UpdateCourseRequest) (bool, error)
	DeleteOwned(ctx context.Context, courseID, creatorID string) (bool, error)
	ListByCreator(ctx context.Context, creatorID string) ([]model.Course, error)
	ListAll(ctx context.Context) ([]model.Course, error)
}

// CourseService implements ownership-scoped course CRUD and the redis-cached
// public catalog.
type CourseService struct {
	store    CourseStore
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

func NewCourseService(store CourseStore, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *CourseService {
	return &CourseService{
		store:    store,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "course_service").Logger(),
	}
}

// Create inserts a course owned by creatorID. Course fields are stored as
// received; the client owns price/URL validation.
func (s *CourseService) Create(ctx context.Context, creatorID string, req *model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		CreatorID:   creatorID,
	}
	if err := s.store.Create(ctx, course); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return course, nil
}

// Update applies the fields present in req to a course owned by creatorID;
// omitted fields keep their stored values. A non-owner's update matches
// nothing and reports ErrCourseNotFound.
func (s *CourseService) Update(ctx context.Context, creatorID string, req *model.UpdateCourseRequest) error {
	matched, err := s.store.UpdateOwned(ctx, creatorID, req)
	if err != nil {
		return err
	}
	if !matched {
		return ErrCourseNotFound
	}
	s.invalidateCatalog(ctx)
	return nil
}

// Delete removes a course with the same ownership filter as Update.
func (s *CourseService) Delete(ctx context.Context, creatorID, courseID string) error {
	matched, err := s.store.DeleteOwned(ctx, courseID, creatorID)
	if err != nil {
		return err
	}
	if !matched {
		return ErrCourseNotFound
	}
	s.invalidateCatalog(ctx)
	return nil
}

// ListByCreator returns every course owned by creatorID.
func (s *CourseService) ListByCreator(ctx context.Context, creatorID string) ([]model.Course, error) {
	return s.store.ListByCreator(ctx, creatorID)
}

// Catalog returns the public course catalog, cache-aside through Redis.
// Cache failures fall back to the database and are only logged.
func (s *CourseService) Catalog(ctx context.Context) ([]model.Course, error) {
	key := config.CacheKey.CourseCatalogKey()

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var courses []model.Course
		if err := json.Unmarshal([]byte(cached), &courses); err == nil {
			return courses, nil
		}
		s.log.Warn().Msg("corrupt catalog cache entry, refetching")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("catalog cache read failed")
	}

	courses, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(courses); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return courses, nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.CourseCatalogKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
