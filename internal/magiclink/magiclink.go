// Package magiclink issues and verifies the short-lived signed tokens used
// for admin impersonation of a customer session.
package magiclink

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const audience = "cooler-impersonation"

var (
	ErrExpired = errors.New("magic link expired")
	ErrInvalid = errors.New("magic link invalid")
)

// Issuer signs impersonation tokens with a static HMAC secret.
type Issuer struct {
	secret  []byte
	baseURL string
	ttl     time.Duration
}

func NewIssuer(secret, baseURL string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("magic link secret required")
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Issuer{secret: []byte(secret), baseURL: baseURL, ttl: ttl}, nil
}

// Issue returns the signed token for customerID plus the URL the admin opens
// and the expiry.
func (i *Issuer) Issue(customerID, actor string) (token, link string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub": customerID,
		"aud": audience,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"jti": uuid.New().String(),
	}
	if actor != "" {
		claims["act"] = actor
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("signing magic link: %w", err)
	}

	link = i.baseURL + "?token=" + url.QueryEscape(token)
	return token, link, expiresAt, nil
}

// Verify checks the signature, audience and expiry and returns the customer
// id the token impersonates.
func (i *Issuer) Verify(token string) (customerID string, err error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalid
	}
	return sub, nil
}
