package users_test

import (
	"testing"

	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/jrsteele09/go-jobboard/users"
	fakeuserrepo "github.com/jrsteele09/go-jobboard/users/repofake"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := users.HashPassword("Secret123")
	require.NoError(t, err)

	u := &users.User{PasswordHash: hash}
	require.True(t, u.CheckPassword("Secret123"))
	require.False(t, u.CheckPassword("secret123"))
}

func TestValidateRegistration(t *testing.T) {
	seeker := &users.User{FullName: "Sam", Email: "sam@example.com", AccountType: sessions.AccountJobSeeker}
	require.NoError(t, users.ValidateRegistration(seeker, "pw"))
	require.ErrorIs(t, users.ValidateRegistration(seeker, ""), errors.ErrValidation)

	employer := &users.User{FullName: "Eve", Email: "eve@example.com", AccountType: sessions.AccountEmployer}
	err := users.ValidateRegistration(employer, "pw")
	require.ErrorIs(t, err, errors.ErrValidation)
	require.Contains(t, err.Error(), "company name")

	employer.CompanyName = "Acme"
	require.NoError(t, users.ValidateRegistration(employer, "pw"))
}

func TestFakeUserRepo_EmailNamespacedByAccountType(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()

	require.NoError(t, repo.Insert(&users.User{Email: "Pat@Example.com", AccountType: sessions.AccountJobSeeker}))
	require.NoError(t, repo.Insert(&users.User{Email: "pat@example.com", AccountType: sessions.AccountEmployer}))
	require.ErrorIs(t, repo.Insert(&users.User{Email: "pat@example.com ", AccountType: sessions.AccountJobSeeker}), errors.ErrUserExists)

	seeker, err := repo.GetByEmail(sessions.AccountJobSeeker, "PAT@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, seeker.ID)
	require.False(t, seeker.IsEmployer())

	byID, err := repo.GetByID(seeker.ID)
	require.NoError(t, err)
	require.Equal(t, seeker.Email, byID.Email)

	_, err = repo.GetByID("missing")
	require.ErrorIs(t, err, errors.ErrNotFound)
}
