package leads

import (
	"context"
	"fmt"
	"math"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/clock"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/ids"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/pkg/logger"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/store"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
)

// Service captures leads. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	store store.Store
	clock clock.Clock
	ids   ids.Generator
}

// NewService creates a lead service backed by the given store.
func NewService(s store.Store, c clock.Clock, g ids.Generator) *Service {
	return &Service{store: s, clock: c, ids: g}
}

// Subscribe stores a newsletter subscription. It returns ErrDuplicateEmail
// when the email is already present. The lookup and insert are not atomic,
// so two simultaneous signups for one address can both succeed.
func (s *Service) Subscribe(ctx context.Context, in validation.NewsletterInput) (*domain.NewsletterSubscription, error) {
	rec := newSubscription(s.ids.NewID(), s.clock.Now(), in)

	err := s.store.WithSession(ctx, func(ctx context.Context, db store.Database) error {
		coll := db.Collection(domain.CollectionNewsletter)
		exists, err := coll.Exists(ctx, bson.M{"email": rec.Email})
		if err != nil {
			return fmt.Errorf("check existing subscription: %w", err)
		}
		if exists {
			return ErrDuplicateEmail
		}
		if err := coll.Insert(ctx, rec); err != nil {
			return fmt.Errorf("store subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("newsletter subscription stored", "id", rec.ID, "email", rec.Email)
	return rec, nil
}

// SubmitContact stores a contact-form message. Repeat submissions are allowed.
func (s *Service) SubmitContact(ctx context.Context, in validation.ContactInput) (*domain.ContactMessage, error) {
	rec := newContactMessage(s.ids.NewID(), s.clock.Now(), in)
	if err := s.insert(ctx, domain.CollectionContacts, rec); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}
	logger.Info("contact message stored", "id", rec.ID, "email", rec.Email, "service_type", rec.ServiceType)
	return rec, nil
}

// SubmitAssessment scores a self-assessment, picks its recommendations and
// stores the result.
func (s *Service) SubmitAssessment(ctx context.Context, in validation.AssessmentInput) (*domain.AssessmentRecord, error) {
	rec := newAssessmentRecord(s.ids.NewID(), s.clock.Now(), in)
	if !finite(rec.Score) {
		return nil, fmt.Errorf("score assessment: %w", ErrNonFiniteResult)
	}
	if err := s.insert(ctx, domain.CollectionAssessments, rec); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}
	logger.Info("assessment stored", "id", rec.ID, "score", rec.Score, "level", rec.Level)
	return rec, nil
}

// CalculateROI projects the visitor's ROI and stores the calculation.
func (s *Service) CalculateROI(ctx context.Context, in validation.ROIInput) (*domain.ROICalculation, error) {
	rec := newROICalculation(s.ids.NewID(), s.clock.Now(), in)
	if !roiFinite(rec.Results) {
		return nil, fmt.Errorf("project roi: %w", ErrNonFiniteResult)
	}
	if err := s.insert(ctx, domain.CollectionROI, rec); err != nil {
		return nil, fmt.Errorf("store roi calculation: %w", err)
	}
	logger.Info("roi calculation stored", "id", rec.ID, "roi_percentage", rec.Results.ROIPercentage)
	return rec, nil
}

func (s *Service) insert(ctx context.Context, collection string, doc any) error {
	return s.store.WithSession(ctx, func(ctx context.Context, db store.Database) error {
		return db.Collection(collection).Insert(ctx, doc)
	})
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func roiFinite(r domain.ROIResults) bool {
	if r.PaybackMonths != nil && !finite(*r.PaybackMonths) {
		return false
	}
	return finite(r.AnnualSavings) && finite(r.NetAnnualBenefit) &&
		finite(r.TotalBenefits3yr) && finite(r.ROIPercentage)
}
