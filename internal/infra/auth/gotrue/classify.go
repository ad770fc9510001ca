package gotrue

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gestor/internal/domain/service"
)

// The client library reports non-2xx answers as "response status code N: body".
var statusPattern = regexp.MustCompile(`(?s)^response status code (\d{3})(?::\s*(.*))?$`)

// errorBody covers both the current and the legacy GoTrue error shapes.
type errorBody struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (b errorBody) detail() string {
	for _, s := range []string{b.Msg, b.Message, b.ErrorDescription, b.Error} {
		if s != "" {
			return s
		}
	}

	return ""
}

// classify turns any error from the client library into a *service.ProviderError.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pe *service.ProviderError
	if errors.As(err, &pe) {
		return err
	}

	if isTimeout(err) {
		return &service.ProviderError{Kind: service.ProviderTimeout, Detail: err.Error(), Err: err}
	}

	m := statusPattern.FindStringSubmatch(err.Error())
	if m == nil {
		// Transport failures, undecodable bodies, request validation.
		return &service.ProviderError{Kind: service.ProviderUnavailable, Detail: err.Error(), Err: err}
	}

	status, _ := strconv.Atoi(m[1])
	var body errorBody
	detail := strings.TrimSpace(m[2])
	if json.Unmarshal([]byte(m[2]), &body) == nil && body.detail() != "" {
		detail = body.detail()
	}

	return &service.ProviderError{
		Kind:   kindOf(status, body.ErrorCode, detail),
		Status: status,
		Detail: detail,
		Err:    err,
	}
}

func kindOf(status int, code, detail string) service.ProviderErrorKind {
	if status >= http.StatusInternalServerError {
		return service.ProviderUnavailable
	}
	if status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout {
		return service.ProviderTimeout
	}

	lower := strings.ToLower(detail)
	switch {
	case code == "email_not_confirmed" || strings.Contains(lower, "email not confirmed"):
		return service.ProviderEmailNotConfirmed
	case code == "user_already_exists" || code == "email_exists" || strings.Contains(lower, "already registered"):
		return service.ProviderAlreadyRegistered
	case code == "invalid_credentials" || strings.Contains(lower, "invalid login credentials") || lower == "invalid_grant":
		return service.ProviderInvalidCredentials
	case code == "bad_jwt" || code == "session_not_found" || code == "refresh_token_not_found" ||
		code == "refresh_token_already_used" || code == "user_not_found" ||
		strings.Contains(lower, "jwt") || strings.Contains(lower, "refresh token"):
		return service.ProviderInvalidToken
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return service.ProviderInvalidToken
	default:
		return service.ProviderRejected
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
