package bookings

// requiredFields lists the intake fields that must be present, in the order
// they are reported back to the user.
var requiredFields = []string{
	"event_date",
	"budget",
	"event_type",
	"location",
	"full_name",
	"job_title",
	"gender",
	"phone",
	"email",
	"address",
	"airport",
}

// fieldValues maps intake field names to their submitted values.
func fieldValues(req SubmitBookingRequest) map[string]string {
	return map[string]string{
		"event_date": req.EventDate,
		"budget":     req.Budget,
		"event_type": req.EventType,
		"location":   req.Location,
		"full_name":  req.FullName,
		"job_title":  req.JobTitle,
		"gender":     req.Gender,
		"phone":      req.Phone,
		"email":      req.Email,
		"address":    req.Address,
		"airport":    req.Airport,
	}
}

// MissingFields returns the required fields that are absent or exactly empty,
// in reporting order. A value is missing only if it equals ""; no trimming is
// applied, so a whitespace-only value counts as present.
func MissingFields(req SubmitBookingRequest) []string {
	values := fieldValues(req)

	var missing []string
	for _, field := range requiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
