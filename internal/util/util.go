// Package util holds the identifier helpers shared by credential resolution,
// registration and profile reconciliation.
package util

import (
	"crypto/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 32

	// FallbackUsername replaces bases that sanitise to fewer than three characters.
	FallbackUsername = "user"

	suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

	minPhoneDigits = 7
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,32}$`)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail reports whether the identifier should be treated as an email.
func IsEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}

// IsUsername reports whether s, lowercased, is a well-formed username.
func IsUsername(s string) bool {
	return usernamePattern.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// LooksLikePhone reports whether s only holds phone punctuation and at least seven digits.
func LooksLikePhone(s string) bool {
	digits := 0
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= minPhoneDigits
}

// NormalizePhone keeps digits and '+' and applies the Peruvian numbering rules:
// 9 digits gain +51, 11 digits starting with 51 gain '+', anything else gets
// a leading '+' if it lacks one.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	if phone == "" {
		return ""
	}

	digits := strings.TrimLeft(phone, "+")
	switch {
	case len(digits) == 9 && !strings.HasPrefix(phone, "+"):
		return "+51" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "51"):
		return "+" + digits
	case strings.HasPrefix(phone, "+"):
		return phone
	default:
		return "+" + phone
	}
}

// foldAccents strips combining marks after canonical decomposition ("José" -> "Jose").
func foldAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return folded
}

// SanitizeUsername turns arbitrary input into a username of [a-z0-9._-].
// Disallowed characters become '-', runs of '-' collapse, separators are trimmed
// from both ends and the result is cut to 32 characters. Results shorter than
// three characters fall back to FallbackUsername.
func SanitizeUsername(raw string) string {
	s := strings.ToLower(foldAccents(strings.TrimSpace(raw)))

	var b strings.Builder
	b.Grow(len(s))
	lastDash := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	out := trimSeparators(b.String())
	if len(out) > usernameMaxLength {
		out = trimSeparators(out[:usernameMaxLength])
	}
	if len(out) < usernameMinLength {
		return FallbackUsername
	}

	return out
}

// WithSuffix appends "-suffix" to base, shortening base so the result fits in 32 characters.
func WithSuffix(base, suffix string) string {
	room := usernameMaxLength - len(suffix) - 1
	if room < 1 {
		return suffix
	}
	if len(base) > room {
		base = trimSeparators(base[:room])
	}
	if base == "" {
		return suffix
	}

	return base + "-" + suffix
}

// RandomSuffix returns n random characters from [a-z0-9].
func RandomSuffix(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms.
		panic(err)
	}
	for i := range b {
		b[i] = suffixCharset[int(b[i])%len(suffixCharset)]
	}

	return string(b)
}

func trimSeparators(s string) string {
	return strings.Trim(s, "-._")
}
