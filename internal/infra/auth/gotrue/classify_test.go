package gotrue

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gestor/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   service.ProviderErrorKind
		wantStatus int
		wantDetail string
	}{
		{
			name:       "refresh token not found",
			err:        fmt.Errorf("response status code 400: %s", `{"code":400,"error_code":"refresh_token_not_found","msg":"Invalid Refresh Token: Refresh Token Not Found"}`),
			wantKind:   service.ProviderInvalidToken,
			wantStatus: 400,
			wantDetail: "Invalid Refresh Token: Refresh Token Not Found",
		},
		{
			name:       "bare 401",
			err:        errors.New("response status code 401"),
			wantKind:   service.ProviderInvalidToken,
			wantStatus: 401,
		},
		{
			name:       "weak password",
			err:        fmt.Errorf("response status code 422: %s", `{"code":422,"error_code":"weak_password","msg":"Password should be at least 6 characters."}`),
			wantKind:   service.ProviderRejected,
			wantStatus: 422,
			wantDetail: "Password should be at least 6 characters.",
		},
		{
			name:       "gateway timeout",
			err:        errors.New("response status code 504: timeout"),
			wantKind:   service.ProviderUnavailable,
			wantStatus: 504,
			wantDetail: "timeout",
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("Post \"http://x/token\": %w", context.DeadlineExceeded),
			wantKind: service.ProviderTimeout,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
			wantKind: service.ProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pe *service.ProviderError
			require.ErrorAs(t, classify(tt.err), &pe)
			assert.Equal(t, tt.wantKind, pe.Kind)
			assert.Equal(t, tt.wantStatus, pe.Status)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, pe.Detail)
			}
		})
	}
}

func TestClassify_PassesThrough(t *testing.T) {
	assert.NoError(t, classify(nil))

	original := &service.ProviderError{Kind: service.ProviderAlreadyRegistered}
	assert.Same(t, original, classify(original))
}
