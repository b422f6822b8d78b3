package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/clock"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/metrics"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/pkg/httputil"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/service/leads"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/validation"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Orgainse Consulting API"

// maxBodyBytes caps every form payload.
const maxBodyBytes = 1 << 20

// Handlers contains the HTTP handlers for the lead endpoints.
type Handlers struct {
	leads   *leads.Service
	clock   clock.Clock
	metrics *metrics.Metrics
}

// NewHandlers creates the endpoint handlers. m may be nil.
func NewHandlers(svc *leads.Service, clk clock.Clock, m *metrics.Metrics) *Handlers {
	return &Handlers{leads: svc, clock: clk, metrics: m}
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// SubscribeResponse is the body of a successful newsletter signup.
type SubscribeResponse struct {
	Message        string `json:"message"`
	SubscriptionID string `json:"subscription_id"`
	Email          string `json:"email"`
}

// ContactResponse is the body of a successful contact submission.
type ContactResponse struct {
	Message   string `json:"message"`
	ContactID string `json:"contact_id"`
}

// AssessmentResponse is the body of a scored assessment.
type AssessmentResponse struct {
	AssessmentID    string               `json:"assessment_id"`
	Score           float64              `json:"score"`
	Level           domain.MaturityLevel `json:"level"`
	Recommendations []string             `json:"recommendations"`
	Message         string               `json:"message"`
}

// ROIResponse is the body of a completed ROI calculation.
type ROIResponse struct {
	CalculationID string            `json:"calculation_id"`
	Results       domain.ROIResults `json:"results"`
	Message       string            `json:"message"`
}

// Health reports liveness. It does not touch the store.
//
//	GET /api/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, HealthResponse{
		Status:    "healthy",
		Timestamp: h.clock.Now(),
		Service:   ServiceName,
	})
}

// Subscribe handles POST /api/newsletter.
func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	in, err := validation.ParseNewsletter(body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	sub, err := h.leads.Subscribe(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.metrics.RecordLead(domain.SourceNewsletter)
	httputil.OK(w, SubscribeResponse{
		Message:        "Successfully subscribed to newsletter",
		SubscriptionID: sub.ID,
		Email:          sub.Email,
	})
}

// SubmitContact handles POST /api/contact.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	in, err := validation.ParseContact(body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	msg, err := h.leads.SubmitContact(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.metrics.RecordLead(domain.SourceContact)
	httputil.OK(w, ContactResponse{
		Message:   "Thank you for your message. We will get back to you within 24 hours.",
		ContactID: msg.ID,
	})
}

// SubmitAssessment handles POST /api/ai-assessment.
func (h *Handlers) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	in, err := validation.ParseAssessment(body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	rec, err := h.leads.SubmitAssessment(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.metrics.RecordLead(domain.SourceAssessment)
	httputil.OK(w, AssessmentResponse{
		AssessmentID:    rec.ID,
		Score:           rec.Score,
		Level:           rec.Level,
		Recommendations: rec.Recommendations,
		Message:         "AI maturity assessment completed",
	})
}

// CalculateROI handles POST /api/roi-calculator.
func (h *Handlers) CalculateROI(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	in, err := validation.ParseROI(body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	calc, err := h.leads.CalculateROI(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.metrics.RecordLead(domain.SourceROI)
	httputil.OK(w, ROIResponse{
		CalculationID: calc.ID,
		Results:       calc.Results,
		Message:       "ROI calculation completed",
	})
}

// readBody reads the whole request body. An oversized body is a client error;
// any other read failure is not.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &validation.Error{
				Code:    validation.CodeMalformedJSON,
				Message: "Request body too large",
			}
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return body, nil
}
