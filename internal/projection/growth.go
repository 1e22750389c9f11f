package projection

import "math"

// ProjectionYears are the horizons shown in SIP projection tables.
var ProjectionYears = []int{1, 3, 5, 10}

// CompoundFutureValue returns principal × (1 + r/n)^(n × years) where r is
// annualRatePercent/100 and n is compoundsPerYear (1 when not positive).
// Negative rates model decline.
func CompoundFutureValue(principal, annualRatePercent, years, compoundsPerYear float64) float64 {
	if compoundsPerYear <= 0 {
		compoundsPerYear = 1
	}
	if years == 0 {
		return principal
	}
	rate := annualRatePercent / 100
	return principal * math.Pow(1+rate/compoundsPerYear, compoundsPerYear*years)
}

// SIPFutureValue returns the future value of a recurring installment series
// paid at the start of each period (annuity-due). installmentsPerYear defaults
// to 12 when not positive. A non-positive periodic rate degrades to plain
// accumulation of the installments.
func SIPFutureValue(installment, annualRatePercent, years, installmentsPerYear float64) float64 {
	if installmentsPerYear <= 0 {
		installmentsPerYear = 12
	}
	totalInstallments := years * installmentsPerYear
	periodicRate := annualRatePercent / 100 / installmentsPerYear

	if periodicRate <= 0 {
		return installment * totalInstallments
	}

	growth := (math.Pow(1+periodicRate, totalInstallments) - 1) / periodicRate
	return installment * growth * (1 + periodicRate)
}

// ProjectionPoint is one row of a SIP projection table.
type ProjectionPoint struct {
	Years       int     `json:"years"`
	Invested    float64 `json:"invested"`
	FutureValue float64 `json:"futureValue"`
	Gain        float64 `json:"gain"`
}

// ProjectSIP evaluates a monthly SIP at each of the given horizons.
func ProjectSIP(monthlyInstallment, annualRatePercent float64, horizons []int) []ProjectionPoint {
	points := make([]ProjectionPoint, 0, len(horizons))
	for _, y := range horizons {
		invested := monthlyInstallment * 12 * float64(y)
		fv := SIPFutureValue(monthlyInstallment, annualRatePercent, float64(y), 12)
		points = append(points, ProjectionPoint{
			Years:       y,
			Invested:    invested,
			FutureValue: fv,
			Gain:        fv - invested,
		})
	}
	return points
}
