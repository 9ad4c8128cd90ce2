package constants

// Redis cache key prefixes. Every key is namespaced under the service name
// so a shared Redis instance can be flushed per concern.
const (
	CacheKeyAvailabilityPrefix = "ticketly:availability:event:"
	CacheKeySeatDetailPrefix   = "ticketly:seats:event:"
	RateLimitKeyPrefix         = "ticketly:ratelimit:"
)

// Invalidation patterns used after a booking is committed or inventory is reset.
const (
	PatternInvalidateAvailabilityAll = CacheKeyAvailabilityPrefix + "*"
	PatternInvalidateSeatDetailAll   = CacheKeySeatDetailPrefix + "*"
)

// AvailabilityKey builds the cache key for an event's availability snapshot.
func AvailabilityKey(eventID string) string {
	return CacheKeyAvailabilityPrefix + eventID
}

// SeatDetailKey builds the cache key for one row's seat-level detail.
func SeatDetailKey(eventID, section, row string) string {
	return CacheKeySeatDetailPrefix + eventID + ":" + section + ":" + row
}
