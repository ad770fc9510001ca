package entity

// Session is a provider-issued token pair.
// RefreshToken must only ever travel inside the refresh cookie.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // Seconds until AccessToken expires.
	TokenType    string
	Account      *Account
}
