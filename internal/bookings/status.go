package bookings

// Status is the booking lifecycle state. Set to pending at creation; mutated
// only through the admin API afterwards.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(status string) bool {
	switch Status(status) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
