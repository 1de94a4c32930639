package utils

// ContextKey is the type for request-scoped context values
type ContextKey string

// Request-scoped context keys for observability
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Scheduling constants
const (
	// DefaultUpcomingWindowDays is the default lookahead window for upcoming release listings
	DefaultUpcomingWindowDays = 7

	// MaxUpcomingWindowDays caps the lookahead window for upcoming release listings
	MaxUpcomingWindowDays = 90
)
