package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrSignatureInvalid  = errors.New("token signature invalid")
	ErrUnexpectedSigning = errors.New("unexpected signing method")
)

// JWTService mints and verifies HS256 bearer tokens. Verification is a
// pure signature check over the claim set; no store round-trip.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a claim set {sub, roles, iat, exp}. The roles baked in
// here stay trusted for the token's lifetime.
func (s *JWTService) Issue(subject string, roles []string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*outbound.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigning, token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, mapValidationError(err)
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, ErrTokenMalformed
	}

	rawRoles, ok := claims["roles"].([]interface{})
	if !ok {
		return nil, ErrTokenMalformed
	}
	roles := make([]string, 0, len(rawRoles))
	for _, r := range rawRoles {
		role, ok := r.(string)
		if !ok {
			return nil, ErrTokenMalformed
		}
		roles = append(roles, role)
	}

	return &outbound.TokenClaims{
		Username: subject,
		Roles:    roles,
	}, nil
}

func mapValidationError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignatureInvalid
	default:
		return ErrTokenMalformed
	}
}
