package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/baechuer/board-service/internal/application/user"
	"github.com/baechuer/board-service/internal/domain"
)

// MinSecretBytes is the shortest key accepted for HS256.
const MinSecretBytes = 32

var ErrSecretTooShort = fmt.Errorf("jwt secret must be at least %d bytes", MinSecretBytes)

type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer fails when the secret is too short for HS256.
// A non-positive ttl falls back to one hour.
func NewJWTIssuer(secret string, issuer string, ttl time.Duration) (*JWTIssuer, error) {
	if len(secret) < MinSecretBytes {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

type accessClaims struct {
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTIssuer) Issue(userID int64, displayName string, role domain.Role) (string, error) {
	now := s.now()
	claims := accessClaims{
		DisplayName: displayName,
		Role:        string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

// Verify accepts only HS256 tokens carrying exp and, when configured, our issuer.
func (s *JWTIssuer) Verify(token string) (user.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.TokenClaims{}, domain.ErrTokenExpired()
		}
		return user.TokenClaims{}, domain.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid {
		return user.TokenClaims{}, domain.ErrTokenInvalid()
	}

	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return user.TokenClaims{}, domain.ErrTokenInvalid()
	}

	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return user.TokenClaims{
		UserID:      uid,
		DisplayName: claims.DisplayName,
		Role:        domain.ParseRole(claims.Role),
		Exp:         exp,
	}, nil
}
