package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuyashSrivastava1/ReadAble/internal/config"
)

const testSecret = "test-secret-key"

// signToken issues a token the way the account service does
func signToken(t *testing.T, method jwt.SigningMethod, secret string, subject string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": "reader@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: testSecret})
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	claims, err := service.ValidateToken(signToken(t, jwt.SigningMethodHS256, testSecret, userID.String(), time.Hour))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, "reader@example.com", claims.Email)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New().String()

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{"empty", "", "token string is empty"},
		{"garbage", "not-a-jwt", "malformed token"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, "other-secret", userID, time.Hour), "invalid token signature"},
		{"expired", signToken(t, jwt.SigningMethodHS256, testSecret, userID, -time.Minute), "token expired"},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, testSecret, userID, time.Hour), "invalid token signature"},
		{"subject not uuid", signToken(t, jwt.SigningMethodHS256, testSecret, "64b7f0c2a1e4", time.Hour), "not a user id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJWTService_Leeway(t *testing.T) {
	service := NewJWTService(&config.JWTConfig{Secret: testSecret, Leeway: time.Minute})
	token := signToken(t, jwt.SigningMethodHS256, testSecret, uuid.New().String(), -10*time.Second)

	_, err := service.ValidateToken(token)
	assert.NoError(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	getter, err := service.AsTokenValidator().ValidateToken(signToken(t, jwt.SigningMethodHS256, testSecret, userID.String(), time.Hour))
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())

	_, err = service.AsTokenValidator().ValidateToken("bad")
	assert.Error(t, err)
}
