package leads

import (
	"time"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/assessment"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/roi"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/validation"
)

func newSubscription(id string, now time.Time, in validation.NewsletterInput) *domain.NewsletterSubscription {
	return &domain.NewsletterSubscription{
		ID:           id,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Region:       in.Region,
		SubscribedAt: now,
		Status:       domain.SubscriptionActive,
		Preferences:  domain.DefaultPreferences(),
		Source:       domain.SourceNewsletter,
	}
}

func newContactMessage(id string, now time.Time, in validation.ContactInput) *domain.ContactMessage {
	tags := []string{domain.ContactTag}
	if in.ServiceType != "" {
		tags = append(tags, in.ServiceType)
	}
	return &domain.ContactMessage{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Phone:       in.Phone,
		ServiceType: in.ServiceType,
		Message:     in.Message,
		Region:      in.Region,
		SubmittedAt: now,
		Status:      domain.ContactNew,
		Tags:        tags,
		Source:      domain.SourceContact,
	}
}

func newAssessmentRecord(id string, now time.Time, in validation.AssessmentInput) *domain.AssessmentRecord {
	score := assessment.Score(assessment.Points(in.Responses))
	return &domain.AssessmentRecord{
		ID:              id,
		CompanyName:     in.CompanyName,
		Industry:        in.Industry,
		CompanySize:     in.CompanySize,
		CurrentAIUsage:  in.CurrentAIUsage,
		Email:           in.Email,
		Responses:       in.Responses,
		Score:           score,
		Level:           assessment.LevelFor(score),
		Recommendations: assessment.Recommend(score),
		CompletedAt:     now,
		Source:          domain.SourceAssessment,
	}
}

func newROICalculation(id string, now time.Time, in validation.ROIInput) *domain.ROICalculation {
	return &domain.ROICalculation{
		ID:           id,
		CompanyName:  in.CompanyName,
		Industry:     in.Industry,
		Email:        in.Email,
		Inputs:       in.Figures,
		Results:      roi.Project(in.Figures),
		CalculatedAt: now,
		Source:       domain.SourceROI,
	}
}
