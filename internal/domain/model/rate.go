package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// PeriodicRate converts a nominal annual rate plus a compounding convention
// into the per-payment-period rate used by the annuity formula.
//
// The nominal rate is first reduced to the rate of one compounding period,
//
//	r_c = annualRate / periodsPerYear(compounding)
//
// then converted to the payment cadence preserving the effective annual rate:
//
//	r_payment = (1 + r_c)^(periodsPerYear(compounding) / periodsPerYear(frequency)) - 1
//
// so the schedule reflects the compounding convention even when payments occur
// at a different cadence than compounding. The fractional power uses float64,
// the result switches back to decimal for monetary arithmetic.
func PeriodicRate(
	annualRate decimal.Decimal,
	compounding valueobject.CompoundingPeriod,
	frequency valueobject.PaymentFrequency,
) (decimal.Decimal, error) {
	if annualRate.IsNegative() {
		return decimal.Decimal{}, &valueobject.InvalidRateError{
			Reason: fmt.Sprintf("nominal annual rate must not be negative, got %s", annualRate),
		}
	}

	cpy := compounding.PeriodsPerYear()
	fpy := frequency.PeriodsPerYear()
	if cpy == 0 {
		return decimal.Decimal{}, &valueobject.InvalidRateError{Reason: "compounding period is not initialised"}
	}
	if fpy == 0 {
		return decimal.Decimal{}, &valueobject.InvalidRateError{Reason: "payment frequency is not initialised"}
	}

	if annualRate.IsZero() {
		return decimal.Zero, nil
	}

	compoundingRate := annualRate.InexactFloat64() / float64(cpy)
	paymentRate := math.Pow(1+compoundingRate, float64(cpy)/float64(fpy)) - 1

	return decimal.NewFromFloat(paymentRate), nil
}
