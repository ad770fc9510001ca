package middleware

import (
	"mime"
	"net/http"

	domainerrors "gestor/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// RequireJSON rejects body-bearing requests whose Content-Type is not
// application/json.
func RequireJSON(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch c.Request().Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			return next(c)
		}

		mediaType, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
		if err != nil || mediaType != echo.MIMEApplicationJSON {
			return domainerrors.ErrUnsupportedContentType
		}

		return next(c)
	}
}
