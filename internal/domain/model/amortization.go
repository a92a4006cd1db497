package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// AmortizationEntry is an immutable value object representing one period in an
// amortization schedule.
//
// Invariant between adjacent entries:
//
//	RemainingPrincipal[i] = RemainingPrincipal[i-1] - PrincipalAmount[i] + CapitalizedInterest[i]
type AmortizationEntry struct {
	PaymentNumber       int
	PaymentDate         time.Time
	PaymentAmount       decimal.Decimal
	PrincipalAmount     decimal.Decimal
	InterestAmount      decimal.Decimal
	RemainingPrincipal  decimal.Decimal
	Status              valueobject.EntryStatus
	IsDeferred          bool
	DeferralType        valueobject.DeferralType
	ExtraPayment        decimal.Decimal
	CapitalizedInterest decimal.Decimal
}

// RoundingTolerance is one minor currency unit. The final entry of a
// non-overridden schedule zeroes out within this tolerance.
var RoundingTolerance = decimal.NewFromFloat(0.01)

// GenerateSchedule produces the full theoretical amortization schedule from a
// liability's static terms: one entry per payment due date from the start date
// to the end date, advancing by the payment-frequency interval.
//
// The schedule is a pure function of the terms: no I/O, no clock reads, and
// regenerating from identical terms yields an identical sequence.
func GenerateSchedule(l Liability) ([]AmortizationEntry, error) {
	dates := paymentDates(l.startDate, l.endDate, l.paymentFrequency)
	n := len(dates)
	if n == 0 {
		return nil, &valueobject.InvalidTermError{
			Reason: "term contains no payment periods at the configured frequency",
		}
	}

	r, err := PeriodicRate(l.interestRate, l.compoundingPeriod, l.paymentFrequency)
	if err != nil {
		return nil, err
	}

	deferred := deferredPeriods(l.deferralType, l.deferralMonths, l.paymentFrequency)
	if deferred > n {
		deferred = n
	}

	overridden := l.paymentOverride != nil
	payment := annuityPayment(l.principalAmount, r, n)
	if overridden {
		payment = l.paymentOverride.Round(2)
	}

	schedule := make([]AmortizationEntry, 0, n)
	remaining := l.principalAmount

	for i := 1; i <= n; i++ {
		entry := AmortizationEntry{
			PaymentNumber: i,
			PaymentDate:   dates[i-1],
			Status:        valueobject.EntryStatusScheduled,
			DeferralType:  l.deferralType,
			ExtraPayment:  decimal.Zero,
		}

		interest := remaining.Mul(r).Round(2)

		switch {
		case i <= deferred && l.deferralType.Equal(valueobject.DeferralTotal):
			// No cash payment; interest accrues and is capitalized into the
			// outstanding balance.
			remaining = remaining.Add(interest)
			entry.PaymentAmount = decimal.Zero
			entry.PrincipalAmount = decimal.Zero
			entry.InterestAmount = interest
			entry.CapitalizedInterest = interest
			entry.IsDeferred = true

		case i <= deferred && l.deferralType.Equal(valueobject.DeferralPartial):
			// Interest-only period; the balance is untouched.
			entry.PaymentAmount = interest
			entry.PrincipalAmount = decimal.Zero
			entry.InterestAmount = interest
			entry.CapitalizedInterest = decimal.Zero
			entry.IsDeferred = true

		default:
			if i == deferred+1 && deferred > 0 && !overridden {
				// First period past the deferral window: re-spread the
				// (possibly inflated) balance over the remaining periods.
				payment = annuityPayment(remaining, r, n-deferred)
			}

			principal := payment.Sub(interest)
			total := payment
			if i == n || principal.GreaterThan(remaining) {
				// Force an exact zero-out on the final period, unless a fixed
				// override cannot cover the balance, in which case a residual
				// remains and the schedule still stops at period n.
				if !overridden || principal.GreaterThanOrEqual(remaining) {
					principal = remaining
					total = principal.Add(interest)
				}
			}
			remaining = remaining.Sub(principal)

			entry.PaymentAmount = total
			entry.PrincipalAmount = principal
			entry.InterestAmount = interest
			entry.CapitalizedInterest = decimal.Zero
		}

		entry.RemainingPrincipal = remaining
		schedule = append(schedule, entry)
	}

	return schedule, nil
}

// annuityPayment computes the level periodic payment that fully amortizes
// principal over n periods at periodic rate r.
func annuityPayment(principal, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	// P * r / (1 - (1+r)^-n)
	one := decimal.NewFromInt(1)
	factor := one.Add(r).Pow(decimal.NewFromInt(int64(n)))
	denominator := one.Sub(one.Div(factor))
	return principal.Mul(r).Div(denominator).Round(2)
}

// paymentDates returns every payment due date in (start, end], advancing from
// the start date by the payment-frequency interval. Dates are anchored on the
// start date so month-end drift does not accumulate.
func paymentDates(start, end time.Time, frequency valueobject.PaymentFrequency) []time.Time {
	var dates []time.Time
	for i := 1; ; i++ {
		d := dateAt(start, frequency, i)
		if d.After(end) {
			return dates
		}
		dates = append(dates, d)
	}
}

func dateAt(start time.Time, frequency valueobject.PaymentFrequency, i int) time.Time {
	switch frequency {
	case valueobject.FrequencyWeekly:
		return start.AddDate(0, 0, 7*i)
	case valueobject.FrequencyBiWeekly:
		return start.AddDate(0, 0, 14*i)
	case valueobject.FrequencyMonthly:
		return start.AddDate(0, i, 0)
	case valueobject.FrequencyQuarterly:
		return start.AddDate(0, 3*i, 0)
	case valueobject.FrequencyAnnually:
		return start.AddDate(i, 0, 0)
	default:
		return start
	}
}

// deferredPeriods converts the deferral window from months into whole payment
// periods. A zero-month window behaves exactly like no deferral.
func deferredPeriods(deferral valueobject.DeferralType, months int, frequency valueobject.PaymentFrequency) int {
	if deferral.Equal(valueobject.DeferralNone) || months <= 0 {
		return 0
	}
	return months * frequency.PeriodsPerYear() / 12
}
