// Package gotrue implements service.AuthProvider on top of a GoTrue server.
package gotrue

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gestor/config"
	"gestor/internal/domain/entity"
	"gestor/internal/domain/service"

	"github.com/google/uuid"
	gotrueapi "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"go.uber.org/fx"
)

// Provider operation names, used as metric labels.
const (
	opSignIn        = "sign_in"
	opRefresh       = "refresh"
	opGetUser       = "get_user"
	opSignUp        = "sign_up"
	opRecover       = "recover"
	opUpdateUser    = "update_user"
	opAdminUpdate   = "admin_update_user"
	opGenerateLink  = "generate_link"
	opVerify        = "verify"
	opLogout        = "logout"
	redirectToParam = "redirect_to"
)

const defaultTimeout = 10 * time.Second

// Params defines the dependencies of the provider.
type Params struct {
	fx.In

	Config  *config.Config
	Metrics service.AuthMetrics `optional:"true"`
}

// Provider talks to GoTrue with two clients: one carrying the anon key for
// end-user calls, one carrying the service-role key for admin calls.
type Provider struct {
	public  gotrueapi.Client
	admin   gotrueapi.Client
	base    http.RoundTripper
	timeout time.Duration
	siteURL string
	metrics service.AuthMetrics
}

// New builds the provider from config.
func New(params Params) service.AuthProvider {
	return newProvider(params.Config.Auth, http.DefaultTransport, params.Metrics)
}

func newProvider(cfg *config.AuthConfig, base http.RoundTripper, metrics service.AuthMetrics) *Provider {
	providerURL := strings.TrimRight(cfg.ProviderURL, "/")
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	p := &Provider{
		public:  gotrueapi.New("", cfg.AnonKey).WithCustomGoTrueURL(providerURL),
		base:    base,
		timeout: timeout,
		siteURL: cfg.SiteURL,
		metrics: metrics,
	}
	if p.siteURL == "" {
		p.siteURL = providerURL
	}
	if cfg.ServiceRoleKey != "" {
		p.admin = gotrueapi.New("", cfg.ServiceRoleKey).
			WithCustomGoTrueURL(providerURL).
			WithToken(cfg.ServiceRoleKey)
	}

	return p
}

// bind returns a copy of c whose HTTP calls are bound to ctx.
func (p *Provider) bind(ctx context.Context, c gotrueapi.Client, query url.Values) gotrueapi.Client {
	return c.WithClient(http.Client{
		Transport: &contextTransport{ctx: ctx, base: p.base, query: query},
		Timeout:   p.timeout,
	})
}

// call bounds fn by the provider timeout, classifies its error and records metrics.
func (p *Provider) call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	err := classify(fn(ctx))
	if p.metrics != nil {
		p.metrics.ObserveProviderCall(op, time.Since(start), err)
	}

	return err
}

func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	var session *entity.Session
	err := p.call(ctx, opSignIn, func(ctx context.Context) error {
		resp, err := p.bind(ctx, p.public, nil).SignInWithEmailPassword(email, password)
		if err != nil {
			return err
		}
		session = toSession(&resp.Session)

		return nil
	})

	return session, err
}

func (p *Provider) RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error) {
	var session *entity.Session
	err := p.call(ctx, opRefresh, func(ctx context.Context) error {
		resp, err := p.bind(ctx, p.public, nil).RefreshToken(refreshToken)
		if err != nil {
			return err
		}
		session = toSession(&resp.Session)

		return nil
	})

	return session, err
}

func (p *Provider) GetUser(ctx context.Context, accessToken string) (*entity.Account, error) {
	var account *entity.Account
	err := p.call(ctx, opGetUser, func(ctx context.Context) error {
		resp, err := p.bind(ctx, p.public.WithToken(accessToken), nil).GetUser()
		if err != nil {
			return err
		}
		account = toAccount(&resp.User)

		return nil
	})

	return account, err
}

func (p *Provider) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*service.SignUpResult, error) {
	var result *service.SignUpResult
	err := p.call(ctx, opSignUp, func(ctx context.Context) error {
		resp, err := p.bind(ctx, p.public, nil).Signup(types.SignupRequest{
			Email:    email,
			Password: password,
			Data:     metadata,
		})
		if err != nil {
			return err
		}

		if resp.Session.AccessToken != "" {
			session := toSession(&resp.Session)
			result = &service.SignUpResult{Account: session.Account, Session: session}

			return nil
		}

		if resp.User.ID == uuid.Nil {
			return &service.ProviderError{Kind: service.ProviderRejected, Status: http.StatusOK, Detail: "signup returned no user"}
		}
		// With email confirmation on, an existing address yields an obfuscated
		// user that has no identities.
		if len(resp.User.Identities) == 0 {
			return &service.ProviderError{
				Kind:   service.ProviderAlreadyRegistered,
				Status: http.StatusOK,
				Detail: "User already registered",
			}
		}
		result = &service.SignUpResult{Account: toAccount(&resp.User)}

		return nil
	})

	return result, err
}

func (p *Provider) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{redirectToParam: []string{redirectTo}}
	}

	return p.call(ctx, opRecover, func(ctx context.Context) error {
		return p.bind(ctx, p.public, query).Recover(types.RecoverRequest{Email: email})
	})
}

func (p *Provider) UpdatePassword(ctx context.Context, accessToken, password string) (*entity.Account, error) {
	var account *entity.Account
	err := p.call(ctx, opUpdateUser, func(ctx context.Context) error {
		resp, err := p.bind(ctx, p.public.WithToken(accessToken), nil).UpdateUser(types.UpdateUserRequest{
			Password: &password,
		})
		if err != nil {
			return err
		}
		account = toAccount(&resp.User)

		return nil
	})

	return account, err
}

func (p *Provider) AdminUpdatePassword(ctx context.Context, accountID uuid.UUID, password string) error {
	if p.admin == nil {
		return &service.ProviderError{Kind: service.ProviderUnavailable, Detail: service.ErrAdminNotConfigured.Error(), Err: service.ErrAdminNotConfigured}
	}

	return p.call(ctx, opAdminUpdate, func(ctx context.Context) error {
		_, err := p.bind(ctx, p.admin, nil).AdminUpdateUser(types.AdminUpdateUserRequest{
			UserID:   accountID,
			Password: password,
		})

		return err
	})
}

// IssueOneTimeSession generates a magic link with the admin client and follows
// its verification server-side, reading the tokens off the redirect fragment.
func (p *Provider) IssueOneTimeSession(ctx context.Context, email string) (*entity.Session, error) {
	if p.admin == nil {
		return nil, &service.ProviderError{Kind: service.ProviderUnavailable, Detail: service.ErrAdminNotConfigured.Error(), Err: service.ErrAdminNotConfigured}
	}

	var link *types.AdminGenerateLinkResponse
	err := p.call(ctx, opGenerateLink, func(ctx context.Context) error {
		var err error
		link, err = p.bind(ctx, p.admin, nil).AdminGenerateLink(types.AdminGenerateLinkRequest{
			Type:       types.LinkTypeMagicLink,
			Email:      email,
			RedirectTo: p.siteURL,
		})

		return err
	})
	if err != nil {
		return nil, err
	}
	if link.HashedToken == "" {
		return nil, &service.ProviderError{Kind: service.ProviderRejected, Detail: "generate_link returned no token"}
	}

	redirectTo := link.RedirectTo
	if redirectTo == "" {
		redirectTo = p.siteURL
	}

	var session *entity.Session
	err = p.call(ctx, opVerify, func(ctx context.Context) error {
		resp, err := p.bind(ctx, p.public, nil).Verify(types.VerifyRequest{
			Type:       types.VerificationTypeMagiclink,
			Token:      link.HashedToken,
			RedirectTo: redirectTo,
		})
		if err != nil {
			return err
		}
		if resp.Error != "" || resp.AccessToken == "" {
			detail := resp.ErrorDescription
			if detail == "" {
				detail = "verify returned no session"
			}

			return &service.ProviderError{Kind: service.ProviderRejected, Status: http.StatusSeeOther, Detail: detail}
		}
		session = &entity.Session{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			ExpiresIn:    resp.ExpiresIn,
			TokenType:    resp.TokenType,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The redirect carries tokens only; the account comes from the generated link.
	session.Account = toAccount(&link.User)
	if session.Account == nil {
		account, err := p.GetUser(ctx, session.AccessToken)
		if err != nil {
			return nil, err
		}
		session.Account = account
	}

	return session, nil
}

func (p *Provider) SignOut(ctx context.Context, accessToken string) error {
	return p.call(ctx, opLogout, func(ctx context.Context) error {
		return p.bind(ctx, p.public.WithToken(accessToken), nil).Logout()
	})
}

func toSession(s *types.Session) *entity.Session {
	return &entity.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		TokenType:    s.TokenType,
		Account:      toAccount(&s.User),
	}
}

func toAccount(u *types.User) *entity.Account {
	if u == nil || u.ID == uuid.Nil {
		return nil
	}

	return &entity.Account{
		ID:             u.ID,
		Email:          strings.ToLower(u.Email),
		Phone:          u.Phone,
		Metadata:       u.UserMetadata,
		EmailConfirmed: u.EmailConfirmedAt != nil,
	}
}
