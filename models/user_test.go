package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateUser(db, "Alice Dupont", "alice@example.com", "Password1!")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "Password1!", user.Password)
	assert.True(t, VerifyPassword(user, "Password1!"))
	assert.False(t, VerifyPassword(user, "wrong-password"))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateUser(db, "Alice", "alice@example.com", "Password1!")
	require.NoError(t, err)

	_, err = CreateUser(db, "Impostor", "alice@example.com", "Password2!")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "failed registration must not create a row")
}

func TestFindUserByEmail(t *testing.T) {
	db := newTestDB(t)
	created := seedUser(t, db, "bob@example.com")

	found, err := FindUserByEmail(db, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = FindUserByEmail(db, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID(t *testing.T) {
	db := newTestDB(t)
	created := seedUser(t, db, "bob@example.com")

	found, err := FindUserByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", found.Email)

	_, err = FindUserByID(db, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
