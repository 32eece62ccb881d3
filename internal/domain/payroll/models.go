package payroll

import "time"

// Breakdown carries every intermediate value of one calculation so callers
// can audit or display it. Computed fresh on every run, never persisted.
type Breakdown struct {
	HoursWorked     float64 `json:"hoursWorked"`
	HourlyRate      float64 `json:"hourlyRate"`
	OvertimeHours   float64 `json:"overtimeHours"`
	OvertimeRate    float64 `json:"overtimeRate"`
	RegularPay      float64 `json:"regularPay"`
	OvertimePay     float64 `json:"overtimePay"`
	GrossEarnings   float64 `json:"grossEarnings"`
	TaxDeductions   float64 `json:"taxDeductions"`
	OtherDeductions float64 `json:"otherDeductions"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetPay          float64 `json:"netPay"`
}

// Record is the durable result for one (staff, period). Reruns overwrite
// it in place; there is one row per key.
type Record struct {
	ID         string    `json:"id"`
	StaffID    string    `json:"staffId"`
	Period     string    `json:"period"`
	GrossPay   float64   `json:"grossPay"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"netPay"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Payslip documents one calculation run. Append-only: a rerun adds a new
// row even though the payroll record was updated in place.
type Payslip struct {
	ID        string    `json:"id"`
	PayrollID string    `json:"payrollId"`
	FilePath  string    `json:"filePath"`
	IssuedAt  time.Time `json:"issuedAt"`
}

type RunResult struct {
	StaffID    string    `json:"staffId"`
	Period     string    `json:"period"`
	GrossPay   float64   `json:"grossPay"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"netPay"`
	Breakdown  Breakdown `json:"breakdown"`
	CreatedAt  time.Time `json:"createdAt"`
}
