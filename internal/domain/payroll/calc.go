package payroll

// Rates carries the configuration a calculation runs with. Defaults come
// from service configuration; a staff-level hourly rate override wins
// when present.
type Rates struct {
	HourlyRate         float64
	TaxRate            float64
	OvertimeMultiplier float64
}

func DefaultRates() Rates {
	return Rates{HourlyRate: 15.0, TaxRate: 0.20, OvertimeMultiplier: 1.5}
}

// Compute turns aggregated hours into a full breakdown. Pure arithmetic,
// no side effects. OtherDeductions is an extension point and stays zero.
func Compute(regularHours, overtimeHours float64, rates Rates) Breakdown {
	overtimeRate := rates.HourlyRate * rates.OvertimeMultiplier
	regularPay := regularHours * rates.HourlyRate
	overtimePay := overtimeHours * overtimeRate
	gross := regularPay + overtimePay
	taxDeductions := gross * rates.TaxRate
	otherDeductions := 0.0
	totalDeductions := taxDeductions + otherDeductions

	return Breakdown{
		HoursWorked:     regularHours,
		HourlyRate:      rates.HourlyRate,
		OvertimeHours:   overtimeHours,
		OvertimeRate:    overtimeRate,
		RegularPay:      regularPay,
		OvertimePay:     overtimePay,
		GrossEarnings:   gross,
		TaxDeductions:   taxDeductions,
		OtherDeductions: otherDeductions,
		TotalDeductions: totalDeductions,
		NetPay:          gross - totalDeductions,
	}
}
