package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gestor/config"
	"gestor/internal/delivery/api/cookie"
	apimiddleware "gestor/internal/delivery/api/middleware"
	"gestor/internal/delivery/api/router"
	"gestor/internal/delivery/api/router/handler"
	"gestor/internal/domain/entity"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/infra/auth"
	"gestor/internal/infra/metrics"
	mockUsecase "gestor/internal/mocks/usecase"
	"gestor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const allowedOrigin = "https://app.example.com"

type testAPIFixtures struct {
	echo           *echo.Echo
	sessionUC      *mockUsecase.MockSessionUsecase
	registrationUC *mockUsecase.MockRegistrationUsecase
	passwordUC     *mockUsecase.MockPasswordUsecase
	patternUC      *mockUsecase.MockPatternUsecase
	accountUC      *mockUsecase.MockAccountUsecase
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth:   &config.AuthConfig{},
		Cookie: &config.CookieConfig{Name: "sb-refresh", SameSite: "None", Secure: true, MaxAge: 30 * 24 * time.Hour},
		CORS:   &config.CORSConfig{AllowedOrigins: []string{allowedOrigin}, AllowCredentials: true},
	}
	cfg.Env.ServiceName = "gestor-api"
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return cfg
}

func createTestAPI(t *testing.T) *testAPIFixtures {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cookies := cookie.NewPolicy(cfg)

	fx := &testAPIFixtures{
		sessionUC:      mockUsecase.NewMockSessionUsecase(t),
		registrationUC: mockUsecase.NewMockRegistrationUsecase(t),
		passwordUC:     mockUsecase.NewMockPasswordUsecase(t),
		patternUC:      mockUsecase.NewMockPatternUsecase(t),
		accountUC:      mockUsecase.NewMockAccountUsecase(t),
	}

	fx.echo = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			SessionUC:      fx.sessionUC,
			RegistrationUC: fx.registrationUC,
			PasswordUC:     fx.passwordUC,
			Cookies:        cookies,
			Logger:         logger,
		}),
		PatternHandler: handler.NewPatternHandler(handler.PatternHandlerParams{
			PatternUC: fx.patternUC,
			Cookies:   cookies,
		}),
		AccountHandler: handler.NewAccountHandler(fx.accountUC),
		HealthHandler:  handler.NewHealthHandler(cfg),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(auth.NewJWTVerifier(cfg)),
		Gatherer:       metrics.NewRegistry(),
	})

	return fx
}

func (fx *testAPIFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Envelope {
	t.Helper()
	var env domainerrors.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func testLoginOutput(remember bool) *usecase.LoginOutput {
	return &usecase.LoginOutput{
		Session: &entity.Session{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    3600,
			TokenType:    "bearer",
			Account: &entity.Account{
				ID:       uuid.New(),
				Email:    "ana@example.com",
				Metadata: map[string]any{entity.MetaFullName: "Ana Pérez"},
			},
		},
		Profile:    &entity.Profile{ID: uuid.New(), Username: "ana"},
		RememberMe: remember,
	}
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "gestor-api", body.Service)
	_, err := time.Parse(time.RFC3339, body.TS)
	assert.NoError(t, err)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_Metrics(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAPI_RoutingErrors(t *testing.T) {
	fx := createTestAPI(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
		code   string
	}{
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, "HTTP.NOT_FOUND"},
		{"wrong method", http.MethodPut, "/auth/login", http.StatusMethodNotAllowed, "HTTP.METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fx.do(tt.method, tt.target, "", nil)

			assert.Equal(t, tt.status, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, domainerrors.StatusError, env.Status)
			assert.Equal(t, tt.code, env.Code)
			assert.Empty(t, env.Data)
		})
	}
}

func TestAPI_Login(t *testing.T) {
	t.Run("remembered session sets cookie", func(t *testing.T) {
		fx := createTestAPI(t)
		out := testLoginOutput(true)
		fx.sessionUC.EXPECT().
			Login(mock.Anything, mock.MatchedBy(func(in usecase.LoginInput) bool {
				return in.Identifier == "ana" && in.Password == "secreto" && in.RememberMe && in.ClientIP != ""
			})).
			Return(out, nil)

		rec := fx.do(http.MethodPost, "/auth/login", `{"username":"ana","password":"secreto","recordarme":true}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "AUTH.LOGIN_OK", env.Code)
		assert.Equal(t, "Sesión iniciada", env.Message)
		require.Len(t, env.Data, 1)
		data := env.Data[0].(map[string]any)
		assert.Equal(t, out.Profile.ID.String(), data["usuarioId"])
		assert.Equal(t, "Ana Pérez", data["nombre"])
		assert.Equal(t, "ana", data["usuario"])
		assert.Equal(t, "access-token", data["accessToken"])
		assert.NotContains(t, rec.Body.String(), "refresh-token")

		setCookie := rec.Header().Get("Set-Cookie")
		assert.Contains(t, setCookie, "sb-refresh=refresh-token")
		assert.Contains(t, setCookie, "Max-Age=2592000")
	})

	t.Run("without remember clears cookie", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(testLoginOutput(false), nil)

		rec := fx.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"secreto"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
		assert.NotContains(t, rec.Body.String(), "refresh-token")
	})

	t.Run("invalid credentials carry hint", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessionUC.EXPECT().
			Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("Email not confirmed"))

		rec := fx.do(http.MethodPost, "/auth/login", `{"identifier":"ana","password":"secreto"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "AUTH.INVALID_CREDENTIALS", env.Code)
		assert.Equal(t, []any{"Email not confirmed"}, env.Data)
	})

	t.Run("validation aggregates messages", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/auth/login", `{"password":"123"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION.BAD_REQUEST", env.Code)
		assert.Equal(t, "identifier: es obligatorio; password: debe tener mínimo 6 caracteres", env.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/auth/login", `{"password":`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION.BAD_REQUEST", decodeEnvelope(t, rec).Code)
	})

	t.Run("wrong content type", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/auth/login", `identifier=ana`, map[string]string{
			echo.HeaderContentType: echo.MIMEApplicationForm,
		})

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, "VALIDATION.UNSUPPORTED_CONTENT_TYPE", decodeEnvelope(t, rec).Code)
	})

	t.Run("body too large", func(t *testing.T) {
		fx := createTestAPI(t)
		body := `{"identifier":"ana","password":"` + strings.Repeat("x", 2048) + `"}`

		rec := fx.do(http.MethodPost, "/auth/login", body, nil)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "VALIDATION.PAYLOAD_TOO_LARGE", decodeEnvelope(t, rec).Code)
	})

	t.Run("provider timeout", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrSessionTimeout)

		rec := fx.do(http.MethodPost, "/auth/login", `{"identifier":"ana","password":"secreto"}`, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "AUTH.PROVIDER_TIMEOUT", decodeEnvelope(t, rec).Code)
	})
}

func TestAPI_Refresh(t *testing.T) {
	refreshCookie := map[string]string{"Cookie": "sb-refresh=old-refresh"}

	t.Run("rotates cookie", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessionUC.EXPECT().Refresh(mock.Anything, "old-refresh").Return(testLoginOutput(true), nil)

		rec := fx.do(http.MethodGet, "/auth/refresh", "", refreshCookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "AUTH.REFRESH_OK", decodeEnvelope(t, rec).Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "sb-refresh=refresh-token")
		assert.NotContains(t, rec.Body.String(), "refresh-token")
	})

	t.Run("GET login is an alias", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessionUC.EXPECT().Refresh(mock.Anything, "old-refresh").Return(testLoginOutput(true), nil)

		rec := fx.do(http.MethodGet, "/auth/login", "", refreshCookie)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing cookie", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessionUC.EXPECT().Refresh(mock.Anything, "").Return(nil, domainerrors.ErrNoRefreshCookie)

		rec := fx.do(http.MethodGet, "/auth/refresh", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH.NO_REFRESH_COOKIE", decodeEnvelope(t, rec).Code)
		assert.Empty(t, rec.Header().Get("Set-Cookie"))
	})

	t.Run("failure clears cookie", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessionUC.EXPECT().
			Refresh(mock.Anything, "old-refresh").
			Return(nil, domainerrors.ErrRefreshFailed.WithDetails("Invalid Refresh Token"))

		rec := fx.do(http.MethodGet, "/auth/refresh", "", refreshCookie)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH.REFRESH_FAILED", decodeEnvelope(t, rec).Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
	})
}

func TestAPI_Logout(t *testing.T) {
	t.Run("with bearer", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.sessionUC.EXPECT().Logout(mock.Anything, "access-token").Return()

		rec := fx.do(http.MethodPost, "/auth/logout", "", map[string]string{"Authorization": "Bearer access-token"})

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "AUTH.LOGOUT_OK", env.Code)
		assert.Equal(t, []any{}, env.Data)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
	})

	t.Run("without bearer", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/auth/logout", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
	})
}

func TestAPI_Register(t *testing.T) {
	t.Run("session issued", func(t *testing.T) {
		fx := createTestAPI(t)
		login := testLoginOutput(true)
		profile := &entity.Profile{ID: uuid.New(), Username: "ana", Email: "ana@example.com"}
		fx.registrationUC.EXPECT().
			Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
				return in.GivenNames == "Ana María" && in.Surnames == "Pérez Soto" && in.Phone == "987654321"
			})).
			Return(&usecase.RegisterOutput{Profile: profile, Session: login.Session}, nil)

		rec := fx.do(http.MethodPost, "/auth/register",
			`{"username":"ana","email":"ana@example.com","password":"secreto","nombreCompleto":"Ana María Pérez Soto","phone":"987654321"}`, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "AUTH.REGISTER_OK", env.Code)
		assert.Equal(t, "Usuario registrado y sesión iniciada", env.Message)
		data := env.Data[0].(map[string]any)
		assert.Equal(t, profile.ID.String(), data["usuarioId"])
		assert.Equal(t, false, data["requiereConfirmacion"])
		assert.Equal(t, "access-token", data["accessToken"])
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "sb-refresh=refresh-token")
		assert.NotContains(t, rec.Body.String(), "refresh-token")
	})

	t.Run("confirmation required", func(t *testing.T) {
		fx := createTestAPI(t)
		profile := &entity.Profile{ID: uuid.New(), Username: "ana", Email: "ana@example.com"}
		fx.registrationUC.EXPECT().
			Register(mock.Anything, mock.Anything).
			Return(&usecase.RegisterOutput{Profile: profile, ConfirmationRequired: true}, nil)

		rec := fx.do(http.MethodPost, "/auth/register",
			`{"username":"ana","email":"ana@example.com","password":"secreto","nombres":"Ana","apellidos":"Pérez"}`, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Usuario registrado. Revisa tu correo para confirmar la cuenta.", env.Message)
		data := env.Data[0].(map[string]any)
		assert.Equal(t, true, data["requiereConfirmacion"])
		assert.NotContains(t, data, "accessToken")
		assert.Empty(t, rec.Header().Get("Set-Cookie"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.registrationUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateEmail)

		rec := fx.do(http.MethodPost, "/auth/register",
			`{"username":"ana","email":"ana@example.com","password":"secreto"}`, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DB.DUPLICATE.EMAIL", decodeEnvelope(t, rec).Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/auth/register", `{"username":"ana","email":"nope","password":"secreto"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email: correo inválido", decodeEnvelope(t, rec).Message)
	})
}

func TestAPI_ForgotPassword(t *testing.T) {
	fx := createTestAPI(t)
	fx.passwordUC.EXPECT().ForgotPassword(mock.Anything, "ana@example.com", "").Return()

	rec := fx.do(http.MethodPost, "/auth/forgot-password", `{"email":"ana@example.com"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "AUTH.RECOVERY_EMAIL_SENT", env.Code)
	assert.Equal(t, "Si el correo existe, se envió un enlace de recuperación.", env.Message)
}

func TestAPI_ResetPassword(t *testing.T) {
	t.Run("token in body", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.passwordUC.EXPECT().ResetPassword(mock.Anything, "recovery-token", "nueva-clave").Return(nil)

		rec := fx.do(http.MethodPost, "/auth/reset-password", `{"accessToken":"recovery-token","password":"nueva-clave"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "AUTH.RESET_OK", decodeEnvelope(t, rec).Code)
	})

	t.Run("token from bearer", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.passwordUC.EXPECT().ResetPassword(mock.Anything, "recovery-token", "nueva-clave").Return(nil)

		rec := fx.do(http.MethodPost, "/auth/reset-password", `{"password":"nueva-clave"}`,
			map[string]string{"Authorization": "Bearer recovery-token"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/auth/reset-password", `{"password":"nueva-clave"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH.MISSING_TOKEN", decodeEnvelope(t, rec).Code)
	})

	t.Run("provider rejects", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.passwordUC.EXPECT().
			ResetPassword(mock.Anything, "recovery-token", "nueva-clave").
			Return(domainerrors.ErrResetFailed.WithDetails("Password should be different"))

		rec := fx.do(http.MethodPost, "/auth/reset-password", `{"accessToken":"recovery-token","password":"nueva-clave"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "AUTH.RESET_FAILED", env.Code)
		assert.Equal(t, []any{"Password should be different"}, env.Data)
	})
}

func TestAPI_Me(t *testing.T) {
	t.Run("with profile", func(t *testing.T) {
		fx := createTestAPI(t)
		account := &entity.Account{ID: uuid.New(), Email: "ana@example.com"}
		profile := &entity.Profile{ID: uuid.New(), Username: "ana", GivenNames: "Ana", Surnames: "Pérez"}
		fx.accountUC.EXPECT().Me(mock.Anything, "access-token").Return(&usecase.MeOutput{Account: account, Profile: profile}, nil)

		rec := fx.do(http.MethodGet, "/auth/me", "", map[string]string{"Authorization": "Bearer access-token"})

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec).Data[0].(map[string]any)
		assert.Equal(t, profile.ID.String(), data["usuarioId"])
		assert.Equal(t, "ana", data["usuario"])
		assert.Equal(t, "Ana", data["nombres"])
		assert.Equal(t, "Pérez", data["apellidos"])
	})

	t.Run("missing bearer", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodGet, "/auth/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH.MISSING_TOKEN", decodeEnvelope(t, rec).Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.accountUC.EXPECT().Me(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken)

		rec := fx.do(http.MethodGet, "/auth/me", "", map[string]string{"Authorization": "Bearer expired"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH.INVALID_TOKEN", decodeEnvelope(t, rec).Code)
	})
}

func TestAPI_Pattern(t *testing.T) {
	t.Run("set pattern", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.patternUC.EXPECT().SetPattern(mock.Anything, "access-token", "14789").Return(nil)

		rec := fx.do(http.MethodPost, "/auth/pattern", `{"pattern":"14789"}`, map[string]string{"Authorization": "Bearer access-token"})

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("set pattern without bearer", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/auth/pattern", `{"pattern":"14789"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("short pattern", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/auth/pattern", `{"pattern":"14"}`, map[string]string{"Authorization": "Bearer access-token"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "pattern: debe tener mínimo 3 caracteres", decodeEnvelope(t, rec).Message)
	})

	t.Run("pattern login", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.patternUC.EXPECT().
			PatternLogin(mock.Anything, mock.MatchedBy(func(in usecase.PatternLoginInput) bool {
				return in.Identifier == "ana@example.com" && in.Pattern == "14789" && in.RememberMe
			})).
			Return(testLoginOutput(true), nil)

		rec := fx.do(http.MethodPost, "/auth/pattern/login", `{"email":"ana@example.com","pattern":"14789","recordarme":true}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "AUTH.LOGIN_OK", decodeEnvelope(t, rec).Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=2592000")
	})

	t.Run("pattern login rejected", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.patternUC.EXPECT().PatternLogin(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := fx.do(http.MethodPost, "/auth/pattern/login", `{"identifier":"ana","pattern":"99999"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH.INVALID_CREDENTIALS", decodeEnvelope(t, rec).Code)
	})
}

func TestAPI_CORS(t *testing.T) {
	preflight := func(origin string) map[string]string {
		return map[string]string{
			echo.HeaderOrigin:                     origin,
			echo.HeaderAccessControlRequestMethod: http.MethodPost,
		}
	}

	t.Run("allowed origin", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodOptions, "/auth/login", "", preflight(allowedOrigin))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, allowedOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("unknown origin", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodOptions, "/auth/login", "", preflight("https://evil.example.com"))

		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}
