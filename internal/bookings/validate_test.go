package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeRequest() SubmitBookingRequest {
	return SubmitBookingRequest{
		CelebrityID: "6e7f3a3c-9a4c-4c5a-8a3e-2f1b9d8e7c6b",
		EventDate:   "2026-10-01",
		Budget:      "$10,000 - $20,000",
		EventType:   "Birthday",
		Location:    "Austin, TX",
		FullName:    "Jordan Smith",
		JobTitle:    "Event Planner",
		Gender:      "female",
		Phone:       "+1 555 0100",
		Email:       "jordan@example.com",
		Address:     "100 Main St",
		Airport:     "AUS",
	}
}

func TestMissingFieldsComplete(t *testing.T) {
	assert.Empty(t, MissingFields(completeRequest()))
}

func TestMissingFieldsReportsInOrder(t *testing.T) {
	req := completeRequest()
	req.Phone = ""
	req.EventDate = ""
	req.Airport = ""

	// Reporting order follows the form's field order, not the order the
	// fields were emptied in.
	assert.Equal(t, []string{"event_date", "phone", "airport"}, MissingFields(req))
}

func TestMissingFieldsAllEmpty(t *testing.T) {
	missing := MissingFields(SubmitBookingRequest{})
	assert.Equal(t, []string{
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
	}, missing)
}

func TestMissingFieldsWhitespaceCountsAsPresent(t *testing.T) {
	req := completeRequest()
	req.FullName = "   "
	req.Address = "\t"

	assert.Empty(t, MissingFields(req))
}

func TestMissingFieldsIgnoresOptionalFields(t *testing.T) {
	req := completeRequest()
	req.Message = ""
	req.FullDescription = ""

	assert.Empty(t, MissingFields(req))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Missing: []string{"phone", "email"}}
	assert.Equal(t, "Please fill in all required fields: phone, email", err.Error())
}

func TestNotificationErrorMessage(t *testing.T) {
	err := &NotificationError{Err: assert.AnError}
	assert.Equal(t, "Failed to send email notification: "+assert.AnError.Error(), err.Error())
}
