// Package payroll computes the gross-to-net monthly salary breakdown shown
// on the employee detail flow. The split is fixed policy: basic is half of
// gross, HRA is 40% of basic, the special allowance absorbs the remainder.
package payroll

const (
	basicShare = 0.50
	hraShare   = 0.40

	// Professional tax applies only when the month's earned gross crosses
	// the statutory threshold.
	professionalTaxThreshold = 15000.0
	professionalTaxAmount    = 200.0
)

// Breakdown is one month's salary computation for an employee.
type Breakdown struct {
	Gross            float64
	Basic            float64
	HRA              float64
	SpecialAllowance float64
	LossOfPay        float64
	EarnedGross      float64
	ProfessionalTax  float64
	Net              float64
}

// Compute derives the breakdown for a monthly gross salary. unpaidDays are
// prorated against daysInMonth as loss of pay before the professional-tax
// threshold is evaluated. A non-positive daysInMonth disables proration.
func Compute(gross float64, unpaidDays, daysInMonth int) Breakdown {
	b := Breakdown{Gross: gross}
	if gross <= 0 {
		return b
	}

	b.Basic = gross * basicShare
	b.HRA = b.Basic * hraShare
	b.SpecialAllowance = gross - b.Basic - b.HRA

	if daysInMonth > 0 && unpaidDays > 0 {
		if unpaidDays > daysInMonth {
			unpaidDays = daysInMonth
		}
		b.LossOfPay = gross * float64(unpaidDays) / float64(daysInMonth)
	}

	b.EarnedGross = gross - b.LossOfPay
	if b.EarnedGross > professionalTaxThreshold {
		b.ProfessionalTax = professionalTaxAmount
	}

	b.Net = b.EarnedGross - b.ProfessionalTax
	return b
}
