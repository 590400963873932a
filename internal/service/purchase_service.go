package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub-backend/internal/model"
)

// PurchaseStore is the persistence surface PurchaseService needs.
type PurchaseStore interface {
	Create(ctx context.Context, p *model.Purchase) error
	ListByUser(ctx context.Context, userID string) ([]model.Purchase, error)
}

// CourseLookup resolves course documents referenced by purchases.
type CourseLookup interface {
	GetByIDs(ctx context.Context, ids []string) ([]model.Course, error)
}

// PurchaseService records purchases and lists them joined against courses.
type PurchaseService struct {
	purchases PurchaseStore
	courses   CourseLookup
	log       zerolog.Logger
}

func NewPurchaseService(purchases PurchaseStore, courses CourseLookup, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		courses:   courses,
		log:       log.With().Str("component", "purchase_service").Logger(),
	}
}

// Purchase records that userID bought courseID. The insert is unconditional:
// no existence check on the course, no dedup, no payment step. UserID always
// comes from the verified token, never from the request body.
func (s *PurchaseService) Purchase(ctx context.Context, userID, courseID string) (*model.Purchase, error) {
	purchase := &model.Purchase{UserID: userID, CourseID: courseID}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("course_id", courseID).Msg("course purchased")
	return purchase, nil
}

// ListForUser returns the user's purchases plus the referenced courses,
// resolved in one batched lookup over the distinct course ids.
func (s *PurchaseService) ListForUser(ctx context.Context, userID string) ([]model.Purchase, []model.Course, error) {
	purchases, err := s.purchases.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]struct{}, len(purchases))
	ids := make([]string, 0, len(purchases))
	for _, p := range purchases {
		if _, ok := seen[p.CourseID]; ok {
			continue
		}
		seen[p.CourseID] = struct{}{}
		ids = append(ids, p.CourseID)
	}

	courses, err := s.courses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return purchases, courses, nil
}
