package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRateLimitType(t *testing.T) {
	cases := []struct {
		path     string
		expected RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/status", RateLimitTypeHealth},
		{"/api/v1/admin/bookings", RateLimitTypeAdmin},
		{"/api/v1/admin/celebrities", RateLimitTypeAdmin},
		{"/api/v1/admin/messages/:id", RateLimitTypeAdmin},
		{"/api/v1/auth/login", RateLimitTypeAuth},
		{"/api/v1/auth/signup", RateLimitTypeAuth},
		{"/api/v1/bookings", RateLimitTypeIntake},
		{"/api/v1/contact", RateLimitTypeIntake},
		{"/api/v1/celebrities", RateLimitTypePublic},
		{"/api/v1/celebrities/search", RateLimitTypePublic},
		{"/something-else", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, getRateLimitType(tc.path), "path %s", tc.path)
	}
}
