package ratelimit

import (
	"context"
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
		{"/api/v1/admin/reset", RateLimitTypeAdmin},
		{"/api/v1/admin/stats", RateLimitTypeAdmin},
		{"/api/v1/events/:id/purchase", RateLimitTypeBooking},
		{"/api/v1/events", RateLimitTypePublic},
		{"/api/v1/events/:id/availability", RateLimitTypePublic},
		{"/api/v1/bookings/:id", RateLimitTypePublic},
		{"/metrics", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, getRateLimitType(tc.path), "path %s", tc.path)
	}
}

func TestIsAllowed_DisabledAlwaysAllows(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		Enabled:         false,
		DefaultRequests: 10,
	})

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeDefault)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 10, result.Remaining)
}

func TestIsAllowed_WhitelistedIPBypassesLimit(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		Enabled:         true,
		BookingRequests: 20,
		WhitelistedIPs:  []string{"192.168.1.50"},
	})

	result, err := limiter.IsAllowed(context.Background(), "192.168.1.50", RateLimitTypeBooking)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
}
