package domain

import "time"

// ROIInputs are the validated figures a visitor entered in the calculator.
// Efficiencies are percent points in [0, 100].
type ROIInputs struct {
	AnnualRevenue       float64 `json:"annual_revenue" bson:"annual_revenue"`
	CurrentEfficiency   float64 `json:"current_efficiency" bson:"current_efficiency"`
	TargetEfficiency    float64 `json:"target_efficiency" bson:"target_efficiency"`
	ImplementationCost  float64 `json:"implementation_cost" bson:"implementation_cost"`
	AnnualOperatingCost float64 `json:"annual_operating_cost" bson:"annual_operating_cost"`
}

// ROIResults are the derived projections. PaybackMonths is nil (JSON/BSON
// null) whenever NetAnnualBenefit <= 0.
type ROIResults struct {
	AnnualSavings    float64  `json:"annual_savings" bson:"annual_savings"`
	NetAnnualBenefit float64  `json:"net_annual_benefit" bson:"net_annual_benefit"`
	TotalBenefits3yr float64  `json:"total_benefits_3yr" bson:"total_benefits_3yr"`
	ROIPercentage    float64  `json:"roi_percentage" bson:"roi_percentage"`
	PaybackMonths    *float64 `json:"payback_months" bson:"payback_months"`
}

// ROICalculation is one run of the ROI calculator.
type ROICalculation struct {
	ID           string     `json:"id" bson:"id"`
	CompanyName  string     `json:"company_name,omitempty" bson:"company_name,omitempty"`
	Industry     string     `json:"industry,omitempty" bson:"industry,omitempty"`
	Email        string     `json:"email" bson:"email"`
	Inputs       ROIInputs  `json:"inputs" bson:"inputs"`
	Results      ROIResults `json:"results" bson:"results"`
	CalculatedAt time.Time  `json:"calculated_at" bson:"calculated_at"`
	Source       string     `json:"source" bson:"source"`
}
