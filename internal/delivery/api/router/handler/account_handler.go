package handler

import (
	"net/http"

	"gestor/internal/delivery/api/response"
	deliverycontext "gestor/internal/delivery/context"
	"gestor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler serves the current account.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

func NewAccountHandler(accountUC usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// MePayload is the data entry of GET /auth/me. Profile fields are empty when
// the account has no profile yet.
type MePayload struct {
	UsuarioID *uuid.UUID `json:"usuarioId"`
	AccountID uuid.UUID  `json:"accountId"`
	Email     string     `json:"email"`
	Usuario   string     `json:"usuario,omitempty"`
	Nombres   string     `json:"nombres,omitempty"`
	Apellidos string     `json:"apellidos,omitempty"`
}

// Me handles GET /auth/me. Requires AuthMiddleware.
func (h *AccountHandler) Me(c echo.Context) error {
	out, err := h.accountUC.Me(c.Request().Context(), deliverycontext.GetAccessToken(c))
	if err != nil {
		return err
	}

	payload := MePayload{
		AccountID: out.Account.ID,
		Email:     out.Account.Email,
	}
	if p := out.Profile; p != nil {
		id := p.ID
		payload.UsuarioID = &id
		payload.Usuario = p.Username
		payload.Nombres = p.GivenNames
		payload.Apellidos = p.Surnames
	}

	return response.Success(c, http.StatusOK, response.MeOK, payload)
}
