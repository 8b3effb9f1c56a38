package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Edmond40/hotel-management-system/models"
)

func strPtr(s string) *string { return &s }

func TestUserCreateWithDefaultPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create(UserParams{
		Name:  strPtr("Bob"),
		Email: strPtr("Bob@Example.com"),
	})
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", user.Email)
	require.Equal(t, models.RoleGuest, user.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(defaultPassword)))
}

func TestUserCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Create(UserParams{Name: strPtr(" "), Email: strPtr("nope")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "name")
	require.Contains(t, verr.Fields, "email")
}

func TestUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Create(UserParams{Name: strPtr("Bob"), Email: strPtr("bob@example.com")})
	require.NoError(t, err)

	_, err = svc.Create(UserParams{Name: strPtr("Bobby"), Email: strPtr("bob@example.com")})
	require.True(t, errors.Is(err, ErrEmailInUse))
}

func TestUserUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create(UserParams{Name: strPtr("Bob"), Email: strPtr("bob@example.com")})
	require.NoError(t, err)

	role := models.RoleAdmin
	updated, err := svc.Update(user.ID, UserParams{
		Role:      &role,
		StaffRole: strPtr("Receptionist"),
		Password:  strPtr("newpass123"),
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, updated.Role)
	require.Equal(t, "Receptionist", *updated.StaffRole)
	require.Equal(t, "Bob", updated.Name)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass123")))

	bad := models.Role("SUPERUSER")
	_, err = svc.Update(user.ID, UserParams{Role: &bad})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.Update(9999, UserParams{Name: strPtr("Ghost")})
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestUserDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create(UserParams{Name: strPtr("Bob"), Email: strPtr("bob@example.com")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID))
	require.True(t, errors.Is(svc.Delete(user.ID), ErrNotFound))
}
