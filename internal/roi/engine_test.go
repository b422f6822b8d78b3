package roi

import (
	"math"
	"math/rand"
	"testing"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_PositiveReturn(t *testing.T) {
	got := Project(domain.ROIInputs{
		AnnualRevenue:       1_000_000,
		CurrentEfficiency:   50,
		TargetEfficiency:    70,
		ImplementationCost:  100_000,
		AnnualOperatingCost: 20_000,
	})

	assert.Equal(t, 60000.00, got.AnnualSavings)
	assert.Equal(t, 40000.00, got.NetAnnualBenefit)
	assert.Equal(t, 120000.00, got.TotalBenefits3yr)
	assert.Equal(t, 20.0, got.ROIPercentage)
	require.NotNil(t, got.PaybackMonths)
	assert.Equal(t, 30.0, *got.PaybackMonths)
}

func TestProject_NoPayback(t *testing.T) {
	got := Project(domain.ROIInputs{
		AnnualRevenue:       100_000,
		CurrentEfficiency:   50,
		TargetEfficiency:    55,
		ImplementationCost:  100_000,
		AnnualOperatingCost: 10_000,
	})

	assert.Equal(t, 1500.00, got.AnnualSavings)
	assert.Equal(t, -8500.00, got.NetAnnualBenefit)
	assert.Equal(t, -25500.00, got.TotalBenefits3yr)
	assert.Equal(t, -125.5, got.ROIPercentage)
	assert.Nil(t, got.PaybackMonths)
}

func TestProject_ZeroNetBenefitHasNoPayback(t *testing.T) {
	got := Project(domain.ROIInputs{
		AnnualRevenue:       100_000,
		CurrentEfficiency:   0,
		TargetEfficiency:    10,
		ImplementationCost:  5_000,
		AnnualOperatingCost: 3_000,
	})

	assert.Equal(t, 0.0, got.NetAnnualBenefit)
	assert.Nil(t, got.PaybackMonths)
}

func TestProject_ZeroImplementationCost(t *testing.T) {
	got := Project(domain.ROIInputs{
		AnnualRevenue:     500_000,
		CurrentEfficiency: 10,
		TargetEfficiency:  40,
	})

	assert.Equal(t, 0.0, got.ROIPercentage)
	require.NotNil(t, got.PaybackMonths)
	assert.Equal(t, 0.0, *got.PaybackMonths)
}

func TestProject_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		c := float64(rng.Intn(100))
		tgt := c + 1 + float64(rng.Intn(int(100-c)))
		in := domain.ROIInputs{
			AnnualRevenue:       1_000 + rng.Float64()*10_000_000,
			CurrentEfficiency:   c,
			TargetEfficiency:    tgt,
			ImplementationCost:  rng.Float64() * 500_000,
			AnnualOperatingCost: rng.Float64() * 200_000,
		}

		got := Project(in)

		assert.Greater(t, got.AnnualSavings, 0.0, "inputs=%+v", in)
		assert.InDelta(t, got.AnnualSavings-in.AnnualOperatingCost, got.NetAnnualBenefit, 0.011)
		assert.InDelta(t, 3*got.NetAnnualBenefit, got.TotalBenefits3yr, 0.031)
		if got.NetAnnualBenefit > 0 {
			require.NotNil(t, got.PaybackMonths, "inputs=%+v", in)
			assert.GreaterOrEqual(t, *got.PaybackMonths, 0.0)
			assert.False(t, math.IsInf(*got.PaybackMonths, 0))
		}
		if got.NetAnnualBenefit <= 0 {
			assert.Nil(t, got.PaybackMonths, "inputs=%+v", in)
		}
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.2, roundTo(0.25, 1))
	assert.Equal(t, 0.8, roundTo(0.75, 1))
	assert.Equal(t, 2.0, roundTo(2.5, 0))
	assert.Equal(t, -125.5, roundTo(-125.5, 1))
	assert.Equal(t, 3e306, roundTo(3e306, 2))
	assert.True(t, math.IsInf(roundTo(math.Inf(1), 2), 1))
}

func TestProject_LargeRevenueStaysFinite(t *testing.T) {
	got := Project(domain.ROIInputs{
		AnnualRevenue:    1e307,
		TargetEfficiency: 100,
	})

	assert.InEpsilon(t, 3e306, got.AnnualSavings, 1e-9)
	assert.False(t, math.IsInf(got.NetAnnualBenefit, 0))
	assert.False(t, math.IsInf(got.TotalBenefits3yr, 0))
	require.NotNil(t, got.PaybackMonths)
	assert.Equal(t, 0.0, *got.PaybackMonths)
}
