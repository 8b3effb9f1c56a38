package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Edmond40/hotel-management-system/models"
)

func TestSignupAndSignin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, token, err := svc.Signup("Alice", "Alice@Example.com", "hunter22", "")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, models.RoleGuest, user.Role)
	require.True(t, user.IsActive)

	same, token2, err := svc.Signin("alice@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	require.Equal(t, user.ID, same.ID)
}

func TestSignupValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Signup("A", "not-an-email", "123", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "name")
	require.Contains(t, verr.Fields, "email")
	require.Contains(t, verr.Fields, "password")
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Signup("Alice", "alice@example.com", "hunter22", "")
	require.NoError(t, err)

	_, _, err = svc.Signup("Alice Again", "ALICE@example.com", "hunter22", "")
	require.True(t, errors.Is(err, ErrEmailInUse))
}

func TestSigninBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Signup("Alice", "alice@example.com", "hunter22", "")
	require.NoError(t, err)

	// wrong password and unknown email look the same to the caller
	_, _, err = svc.Signin("alice@example.com", "wrong")
	require.True(t, errors.Is(err, ErrInvalidCredentials))

	_, _, err = svc.Signin("nobody@example.com", "hunter22")
	require.True(t, errors.Is(err, ErrInvalidCredentials))
}
