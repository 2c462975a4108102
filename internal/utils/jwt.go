package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-food-order/models"
	"github.com/golang-jwt/jwt/v5"
)

// signingMethod is the only algorithm accepted when validating tokens.
// Pinning it rejects "alg: none" and algorithm-confusion tokens.
var signingMethod = jwt.SigningMethodHS256

// principalClaims is the claim set carried by every session token.
type principalClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateJWTToken issues an HMAC-SHA256 signed session token for the given
// principal.
//
// The token carries the principal ID ("uid"), the username, the issue time
// ("iat") and an absolute expiry ("exp") of now + tokenDuration.
//
// Returns an error if signKey is empty or tokenDuration is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(42, "alice", time.Hour, "secret")
func GenerateJWTToken(userID int64, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	return generateJWTToken(userID, username, tokenDuration, signKey, time.Now())
}

func generateJWTToken(userID int64, username string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, ErrEmptySignKey
	}
	if tokenDuration <= 0 {
		return models.Token{}, ErrInvalidTokenDuration
	}

	expiresAt := now.Add(tokenDuration)
	claims := &principalClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tokenString, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
		Principal:    models.Principal{ID: userID, Username: username},
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString with signKey and returns the
// principal embedded in it.
//
// Failures are reported as exactly one of:
//   - [ErrTokenInvalidSignature]: signature mismatch, wrong key, or an
//     algorithm other than HS256 (including "none");
//   - [ErrTokenExpired]: the current time is at or past "exp";
//   - [ErrTokenMalformed]: the token cannot be decoded into the expected
//     claim shape.
//
// Example usage:
//
//	principal, err := utils.ValidateAndParseJWTToken(rawToken, "secret")
//	if err != nil {
//	    // reject the request
//	}
func ValidateAndParseJWTToken(tokenString, signKey string) (models.Principal, error) {
	return validateAndParseJWTToken(tokenString, signKey, time.Now)
}

func validateAndParseJWTToken(tokenString, signKey string, now func() time.Time) (models.Principal, error) {
	if signKey == "" {
		return models.Principal{}, ErrEmptySignKey
	}

	claims := &principalClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Principal{}, classifyJWTError(err)
	}

	if claims.UserID <= 0 || claims.Username == "" {
		return models.Principal{}, fmt.Errorf("%w: missing principal claims", ErrTokenMalformed)
	}

	return models.Principal{ID: claims.UserID, Username: claims.Username}, nil
}

// classifyJWTError collapses jwt library errors into the three token
// failure kinds. Signature problems are checked first so that a tampered
// token never reports a more specific reason.
func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}

// ParseBearerToken extracts the token from an "Authorization" header value
// of the exact form "Bearer <token>": two parts separated by a single space,
// case-sensitive scheme, non-empty token.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(authorizationHeader, " ")
	if !found || scheme != BearerScheme || token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}

// BearerScheme is the only accepted "Authorization" scheme.
const BearerScheme = "Bearer"
