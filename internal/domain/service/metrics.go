package service

import "time"

// Login outcomes reported to AuthMetrics.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeTimeout     = "timeout"
	OutcomeUnavailable = "unavailable"
	OutcomeLimited     = "limited"
	OutcomeError       = "error"
)

// AuthMetrics records the operational counters of the auth flows.
type AuthMetrics interface {
	ObserveLogin(method, outcome string)
	ObserveProviderCall(operation string, duration time.Duration, err error)
	ObserveProfileCreated()
	ObserveRateLimited()
}
