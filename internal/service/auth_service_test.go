package service

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmaster/booking-api/internal/models"
	"github.com/sportsmaster/booking-api/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test_secret",
		Expiration: time.Hour,
		Issuer:     "sports-master",
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := NewAuthService(validator.New(), testJWTConfig())

	res, err := svc.IssueToken(models.TokenRequest{Email: "user@example.com", Name: "User"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "User", claims.Name)
	assert.Equal(t, "user@example.com", claims.Subject)
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	svc := NewAuthService(validator.New(), testJWTConfig())

	_, err := svc.IssueToken(models.TokenRequest{Name: "No Email"})
	require.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(validator.New(), testJWTConfig())
	verifier := NewAuthService(validator.New(), config.JWTConfig{Secret: "other_secret", Expiration: time.Hour})

	res, err := issuer.IssueToken(models.TokenRequest{Email: "user@example.com"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(res.Token)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -time.Minute
	svc := NewAuthService(validator.New(), cfg)

	// The constructor falls back to one hour for non-positive expirations,
	// so sign with a dedicated short-lived service instead.
	short := &AuthService{validator: validator.New(), config: config.JWTConfig{Secret: cfg.Secret, Expiration: -time.Minute, Issuer: cfg.Issuer}}
	res, err := short.IssueToken(models.TokenRequest{Email: "user@example.com"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.Token)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(validator.New(), testJWTConfig())

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
