package utils

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(123, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, int64(123), token.Principal.ID)
	assert.Equal(t, "alice", token.Principal.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 2*time.Second)

	// three compact segments, HS256 header
	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)

	claims := &principalClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Method.Alg())
	assert.Equal(t, int64(123), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		key      string
		wantErr  error
	}{
		{"empty key", time.Hour, "", ErrEmptySignKey},
		{"zero duration", 0, testSignKey, ErrInvalidTokenDuration},
		{"negative duration", -time.Minute, testSignKey, ErrInvalidTokenDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(1, "alice", tt.duration, tt.key)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(456, "bob", 5*time.Minute, testSignKey)
	require.NoError(t, err)

	principal, err := ValidateAndParseJWTToken(token.SignedString, testSignKey)
	require.NoError(t, err)
	assert.Equal(t, int64(456), principal.ID)
	assert.Equal(t, "bob", principal.Username)
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := generateJWTToken(1, "alice", time.Hour, testSignKey, issuedAt)
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"immediately after issuance", issuedAt, nil},
		{"one second before expiry", issuedAt.Add(time.Hour - time.Second), nil},
		{"exactly at expiry", issuedAt.Add(time.Hour), ErrTokenExpired},
		{"expiry plus epsilon", issuedAt.Add(time.Hour + time.Second), ErrTokenExpired},
		{"long after expiry", issuedAt.Add(48 * time.Hour), ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := validateAndParseJWTToken(token.SignedString, testSignKey, fixedClock(tt.now))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, ErrTokenInvalidSignature)
				assert.NotErrorIs(t, err, ErrTokenMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", principal.Username)
		})
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(1, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-key")
	require.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestValidateAndParseJWTToken_SignatureBitFlip(t *testing.T) {
	token, err := GenerateJWTToken(1, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)
	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for i := range len(signature) * 8 {
		tampered := make([]byte, len(signature))
		copy(tampered, signature)
		tampered[i/8] ^= 1 << (i % 8)

		tamperedToken := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(tampered)

		_, err := ValidateAndParseJWTToken(tamperedToken, testSignKey)
		require.ErrorIs(t, err, ErrTokenInvalidSignature, "bit %d", i)
		require.NotErrorIs(t, err, ErrTokenExpired, "bit %d", i)
		require.NotErrorIs(t, err, ErrTokenMalformed, "bit %d", i)
	}
}

func TestValidateAndParseJWTToken_TamperedClaims(t *testing.T) {
	token, err := GenerateJWTToken(1, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"uid":2,"username":"mallory","exp":4102444800,"iat":1700000000}`),
	)

	_, err = ValidateAndParseJWTToken(parts[0]+"."+payload+"."+parts[2], testSignKey)
	require.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestValidateAndParseJWTToken_AlgNoneRejected(t *testing.T) {
	claims := &principalClaims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(unsigned, testSignKey)
	require.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestValidateAndParseJWTToken_OtherHMACAlgorithmRejected(t *testing.T) {
	claims := &principalClaims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey)
	require.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	signWith := func(claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
		require.NoError(t, err)
		return s
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "aaa.bbb"},
		{"bad base64 header", "!!!.e30.sig"},
		{"missing expiry", signWith(jwt.MapClaims{"uid": 1, "username": "alice"})},
		{"missing uid", signWith(jwt.MapClaims{"username": "alice", "exp": future.Unix()})},
		{"missing username", signWith(jwt.MapClaims{"uid": 1, "exp": future.Unix()})},
		{"uid wrong type", signWith(jwt.MapClaims{"uid": "one", "username": "alice", "exp": future.Unix()})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, testSignKey)
			require.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestValidateAndParseJWTToken_EmptyKey(t *testing.T) {
	_, err := ValidateAndParseJWTToken("a.b.c", "")
	require.ErrorIs(t, err, ErrEmptySignKey)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"scheme and space", "Bearer ", "", true},
		{"wrong scheme", "Token abc", "", true},
		{"lower-case scheme", "bearer abc", "", true},
		{"double space", "Bearer  abc", "", true},
		{"three parts", "Bearer abc def", "", true},
		{"leading space", " Bearer abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
