// Package roi projects the return on an AI efficiency programme from a
// visitor's revenue and efficiency figures.
package roi

import (
	"math"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
)

const (
	// BaselineOperatingCostShare is the fixed share of annual revenue assumed
	// to be operating cost that efficiency gains can reduce.
	BaselineOperatingCostShare = 0.30

	// ProjectionYears is the horizon of the cumulative benefit figure.
	ProjectionYears = 3
)

// Project derives savings, net benefit, 3-year benefit, ROI and payback from
// validated inputs. Monetary figures are rounded to cents, percentages and
// months to one decimal. Negative ROI is reported as is. PaybackMonths is
// nil when the net annual benefit is not positive.
func Project(in domain.ROIInputs) domain.ROIResults {
	efficiencyGain := in.TargetEfficiency - in.CurrentEfficiency
	baselineOpCost := in.AnnualRevenue * BaselineOperatingCostShare
	annualSavings := baselineOpCost * (efficiencyGain / 100)
	netAnnualBenefit := annualSavings - in.AnnualOperatingCost
	totalBenefits := netAnnualBenefit * ProjectionYears

	var roiPct float64
	if in.ImplementationCost > 0 {
		roiPct = (totalBenefits - in.ImplementationCost) / in.ImplementationCost * 100
	}

	// Decide on the rounded figure so a reported 0.00 never carries a payback.
	net := roundTo(netAnnualBenefit, 2)
	var payback *float64
	if net > 0 {
		months := roundTo(in.ImplementationCost/netAnnualBenefit*12, 1)
		payback = &months
	}

	return domain.ROIResults{
		AnnualSavings:    roundTo(annualSavings, 2),
		NetAnnualBenefit: net,
		TotalBenefits3yr: roundTo(totalBenefits, 2),
		ROIPercentage:    roundTo(roiPct, 1),
		PaybackMonths:    payback,
	}
}

// roundTo rounds a float to the given number of decimal places, halves to
// even. Values too large to scale are already whole and pass through.
func roundTo(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	scaled := val * pow
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return val
	}
	return math.RoundToEven(scaled) / pow
}
