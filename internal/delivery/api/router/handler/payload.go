package handler

import (
	"gestor/internal/usecase"

	"github.com/google/uuid"
)

// SessionPayload is the data entry of login, refresh and pattern login.
// The refresh token never appears here; it travels in the cookie only.
type SessionPayload struct {
	UsuarioID   *uuid.UUID `json:"usuarioId"`
	Email       string     `json:"email"`
	Usuario     string     `json:"usuario,omitempty"`
	Nombre      string     `json:"nombre"`
	AccessToken string     `json:"accessToken"`
	ExpiresIn   int        `json:"expiresIn"`
	TokenType   string     `json:"tokenType"`
}

func newSessionPayload(out *usecase.LoginOutput) SessionPayload {
	payload := SessionPayload{
		Email:       out.Session.Account.Email,
		Nombre:      out.DisplayName(),
		AccessToken: out.Session.AccessToken,
		ExpiresIn:   out.Session.ExpiresIn,
		TokenType:   out.Session.TokenType,
	}
	if out.Profile != nil {
		id := out.Profile.ID
		payload.UsuarioID = &id
		payload.Usuario = out.Profile.Username
	}

	return payload
}
