// Package entitlement issues and verifies premium content grants. There is
// no real billing backend; upgrading mints a signed grant locally, the same
// way login fabricates a user. The signature still makes grants tamper-proof
// in the persisted session record.
package entitlement

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const PlanPremium = "premium"

var ErrInvalidGrant = errors.New("invalid entitlement grant")

// Claims carries the registered claims plus the plan the grant unlocks.
type Claims struct {
	jwt.RegisteredClaims
	Plan string `json:"plan"`
}

// Issuer mints premium grants.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue returns a signed premium grant for the given user id.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Plan: PlanPremium,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verifier checks grants.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// Verify reports whether the grant is a currently valid premium grant.
// Expired, tampered, and foreign-plan grants all fail.
func (v *Verifier) Verify(grant string) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(grant, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}
	if !token.Valid || claims.Plan != PlanPremium {
		return ErrInvalidGrant
	}
	return nil
}
