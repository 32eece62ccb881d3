package attendance

import "time"

const (
	MethodManual = "manual"
	MethodCard   = "card"
	MethodMobile = "mobile"

	StatusPresent = "present"
	StatusLate    = "late"
)

// Record is one shift for a staff member. CheckOut stays nil while the
// shift is open.
type Record struct {
	ID        string     `json:"id"`
	StaffID   string     `json:"staffId"`
	CheckIn   time.Time  `json:"checkIn"`
	CheckOut  *time.Time `json:"checkOut,omitempty"`
	Method    string     `json:"method"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Hours returns the worked hours of a closed shift. Open shifts and
// shifts whose check-out precedes check-in count as zero.
func (r Record) Hours() float64 {
	if r.CheckOut == nil {
		return 0
	}
	hours := r.CheckOut.Sub(r.CheckIn).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
