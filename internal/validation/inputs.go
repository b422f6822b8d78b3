package validation

import (
	"encoding/json"
	"strings"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
)

// NewsletterInput is a validated newsletter signup.
type NewsletterInput struct {
	Email     string
	FirstName string
	LastName  string
	Region    string
}

type newsletterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Region    string `json:"region"`
}

// ParseNewsletter validates a POST /api/newsletter body. Only email is required.
func ParseNewsletter(body []byte) (NewsletterInput, error) {
	var req newsletterRequest
	if err := decode(body, &req); err != nil {
		return NewsletterInput{}, err
	}
	email, verr := normalizeEmail(req.Email)
	if verr != nil {
		return NewsletterInput{}, verr
	}
	return NewsletterInput{
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Region:    regionOrDefault(req.Region),
	}, nil
}

// ContactInput is a validated contact-form submission.
type ContactInput struct {
	Name        string
	Email       string
	Company     string
	Phone       string
	ServiceType string
	Message     string
	Region      string
}

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Phone       string `json:"phone"`
	ServiceType string `json:"service_type"`
	Message     string `json:"message"`
	Region      string `json:"region"`
}

// ParseContact validates a POST /api/contact body. Name, email and message
// are required.
func ParseContact(body []byte) (ContactInput, error) {
	var req contactRequest
	if err := decode(body, &req); err != nil {
		return ContactInput{}, err
	}
	name, verr := requireText(req.Name, "name", "Name")
	if verr != nil {
		return ContactInput{}, verr
	}
	email, verr := normalizeEmail(req.Email)
	if verr != nil {
		return ContactInput{}, verr
	}
	message, verr := requireText(req.Message, "message", "Message")
	if verr != nil {
		return ContactInput{}, verr
	}
	return ContactInput{
		Name:        name,
		Email:       email,
		Company:     strings.TrimSpace(req.Company),
		Phone:       strings.TrimSpace(req.Phone),
		ServiceType: strings.TrimSpace(req.ServiceType),
		Message:     message,
		Region:      regionOrDefault(req.Region),
	}, nil
}

// AssessmentInput is a validated self-assessment submission.
type AssessmentInput struct {
	Email          string
	CompanyName    string
	Industry       string
	CompanySize    string
	CurrentAIUsage string
	Responses      []domain.AssessmentResponse
}

type assessmentRequest struct {
	Email          string                      `json:"email"`
	CompanyName    string                      `json:"company_name"`
	Industry       string                      `json:"industry"`
	CompanySize    string                      `json:"company_size"`
	CurrentAIUsage string                      `json:"current_ai_usage"`
	Responses      []domain.AssessmentResponse `json:"responses"`
}

// ParseAssessment validates a POST /api/ai-assessment body. Email and a
// non-empty responses array are required; a response without a score counts
// as 0.
func ParseAssessment(body []byte) (AssessmentInput, error) {
	var req assessmentRequest
	if err := decode(body, &req); err != nil {
		return AssessmentInput{}, err
	}
	email, verr := normalizeEmail(req.Email)
	if verr != nil {
		return AssessmentInput{}, verr
	}
	if len(req.Responses) == 0 {
		return AssessmentInput{}, missing("responses", "Assessment responses")
	}
	return AssessmentInput{
		Email:          email,
		CompanyName:    strings.TrimSpace(req.CompanyName),
		Industry:       strings.TrimSpace(req.Industry),
		CompanySize:    strings.TrimSpace(req.CompanySize),
		CurrentAIUsage: strings.TrimSpace(req.CurrentAIUsage),
		Responses:      req.Responses,
	}, nil
}

// ROIInput is a validated ROI calculator submission.
type ROIInput struct {
	Email       string
	CompanyName string
	Industry    string
	Figures     domain.ROIInputs
}

type roiRequest struct {
	Email               string          `json:"email"`
	CompanyName         string          `json:"company_name"`
	Industry            string          `json:"industry"`
	AnnualRevenue       json.RawMessage `json:"annual_revenue"`
	CurrentEfficiency   json.RawMessage `json:"current_efficiency"`
	TargetEfficiency    json.RawMessage `json:"target_efficiency"`
	ImplementationCost  json.RawMessage `json:"implementation_cost"`
	AnnualOperatingCost json.RawMessage `json:"annual_operating_cost"`
}

// ParseROI validates a POST /api/roi-calculator body. Numbers may arrive as
// JSON numbers or numeric strings. Revenue must be positive, costs must not be
// negative and efficiencies must satisfy 0 <= current < target <= 100. Both
// costs default to 0.
func ParseROI(body []byte) (ROIInput, error) {
	var req roiRequest
	if err := decode(body, &req); err != nil {
		return ROIInput{}, err
	}
	email, verr := normalizeEmail(req.Email)
	if verr != nil {
		return ROIInput{}, verr
	}

	revenue, verr := requiredNumber(req.AnnualRevenue, "annual_revenue", "Annual revenue")
	if verr != nil {
		return ROIInput{}, verr
	}
	current, verr := requiredNumber(req.CurrentEfficiency, "current_efficiency", "Current efficiency")
	if verr != nil {
		return ROIInput{}, verr
	}
	target, verr := requiredNumber(req.TargetEfficiency, "target_efficiency", "Target efficiency")
	if verr != nil {
		return ROIInput{}, verr
	}
	implCost, _, verr := parseNumber(req.ImplementationCost, "implementation_cost")
	if verr != nil {
		return ROIInput{}, verr
	}
	opCost, _, verr := parseNumber(req.AnnualOperatingCost, "annual_operating_cost")
	if verr != nil {
		return ROIInput{}, verr
	}

	if revenue <= 0 {
		return ROIInput{}, fail(CodeInvalidNumber, "annual_revenue", "Annual revenue must be greater than zero")
	}
	if implCost < 0 {
		return ROIInput{}, fail(CodeInvalidNumber, "implementation_cost", "Implementation cost cannot be negative")
	}
	if opCost < 0 {
		return ROIInput{}, fail(CodeInvalidNumber, "annual_operating_cost", "Annual operating cost cannot be negative")
	}
	if current < 0 || target > 100 || current >= target {
		return ROIInput{}, fail(CodeInvalidEfficiencyRange, "target_efficiency",
			"Efficiency values must satisfy 0 <= current < target <= 100")
	}

	return ROIInput{
		Email:       email,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Industry:    strings.TrimSpace(req.Industry),
		Figures: domain.ROIInputs{
			AnnualRevenue:       revenue,
			CurrentEfficiency:   current,
			TargetEfficiency:    target,
			ImplementationCost:  implCost,
			AnnualOperatingCost: opCost,
		},
	}, nil
}

func requiredNumber(raw json.RawMessage, field, label string) (float64, *Error) {
	v, present, verr := parseNumber(raw, field)
	if verr != nil {
		return 0, verr
	}
	if !present {
		return 0, missing(field, label)
	}
	return v, nil
}

func regionOrDefault(raw string) string {
	if r := strings.TrimSpace(raw); r != "" {
		return r
	}
	return domain.DefaultRegion
}
