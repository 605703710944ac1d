// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"padifood/config"
	"padifood/internal/domain/entity"
	domainerrors "padifood/internal/domain/errors"
	"padifood/internal/domain/service"
	"padifood/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are stateless: once issued they stay valid until expiry, logout notwithstanding.
type jwtService struct {
	secret   string        // Secret key for signing access tokens.
	tokenTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService. A missing secret is not fatal
// here: issuance is refused per call so the rest of the API keeps serving.
func NewJWTService(cfg *config.Config) service.TokenService {
	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.Token,
		tokenTTL: ttl,
	}
}

// Sign mints an access token carrying the user's identity claims.
func (s *jwtService) Sign(user *entity.User) (string, error) {
	if s.secret == "" {
		return "", domainerrors.ErrConfiguration.WrapMessage("token signing secret is not configured")
	}
	if user == nil || user.ID == uuid.Nil {
		return "", domainerrors.ErrInvalidUser.WrapMessage("cannot sign token for user without id")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Verify checks the validity of a token string and extracts its identity claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	if s.secret == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("token signing secret is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token verification failed")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "unexpected claims type")
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "invalid subject claim")
	}

	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return &service.Claims{
		UserID: userID,
		Email:  email,
		Role:   entity.RoleFromString(role),
	}, nil
}
