// Package impl contains the implementation of the application's business logic.
package impl

import (
	"time"

	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/service"
)

// hintEmailNotConfirmed is the only provider detail exposed on a 401.
const hintEmailNotConfirmed = "Email not confirmed"

// mapProviderError turns a provider failure into an AppError. Timeouts and
// outages keep their own codes; every other kind collapses into fallback.
func mapProviderError(err error, fallback *domainerrors.BaseError) error {
	kind, ok := service.ProviderErrorKindOf(err)
	if !ok {
		return domainerrors.ErrProviderUnavailable.WithDetails(err.Error())
	}

	switch kind {
	case service.ProviderTimeout:
		return domainerrors.ErrSessionTimeout
	case service.ProviderUnavailable:
		return domainerrors.ErrProviderUnavailable.WithDetails(service.ProviderErrorDetailOf(err))
	default:
		return fallback
	}
}

// outcomeOf converts a sign-in error into a metrics outcome label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return service.OutcomeSuccess
	case domainerrors.CodeOf(err) == domainerrors.ErrInvalidCredentials.ErrorCode():
		return service.OutcomeInvalid
	case domainerrors.CodeOf(err) == domainerrors.ErrTooManyAttempts.ErrorCode():
		return service.OutcomeLimited
	case domainerrors.CodeOf(err) == domainerrors.ErrSessionTimeout.ErrorCode():
		return service.OutcomeTimeout
	case domainerrors.CodeOf(err) == domainerrors.ErrProviderUnavailable.ErrorCode():
		return service.OutcomeUnavailable
	default:
		return service.OutcomeError
	}
}

type noopMetrics struct{}

func (noopMetrics) ObserveLogin(string, string)                      {}
func (noopMetrics) ObserveProviderCall(string, time.Duration, error) {}
func (noopMetrics) ObserveProfileCreated()                           {}
func (noopMetrics) ObserveRateLimited()                              {}

func metricsOrNoop(m service.AuthMetrics) service.AuthMetrics {
	if m == nil {
		return noopMetrics{}
	}

	return m
}
