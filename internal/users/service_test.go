package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteshq/notesapi/internal/auth"
	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryStore())
}

func register(t *testing.T, svc *Service, username, password, role string) *models.User {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: username,
		FullName: username + " test",
		Email:    username + "@example.com",
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	u := register(t, svc, "alice", "s3cret", "user")

	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, uuid.Nil, u.ID)

	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("s3cret", u.PasswordHash))

	require.NotNil(t, u.APIKey)
	assert.NotEmpty(t, *u.APIKey)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	first := register(t, svc, "alice", "one", "user")

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Password: "two", Role: "admin",
	})
	require.ErrorIs(t, err, common.ErrUserExists)

	// The original account is untouched.
	got, err := svc.store.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.True(t, auth.CheckPasswordHash("one", got.PasswordHash))
}

func TestRegisterInvalidRole(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Password: "pw", Role: "root",
	})
	require.ErrorIs(t, err, common.ErrBadRequest)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	register(t, svc, "alice", "s3cret", "user")

	u, err := svc.Authenticate(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	// Unknown user and wrong password are indistinguishable.
	_, err = svc.Authenticate(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody", "s3cret")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestDeactivate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	u := register(t, svc, "alice", "pw", "user")

	got, err := svc.Deactivate(context.Background(), u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	stored, err := svc.store.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	_, err = svc.Deactivate(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	u := register(t, svc, "alice", "old", "user")

	_, err := svc.ResetPassword(context.Background(), u.ID, "new")
	require.NoError(t, err)

	// Old password no longer works, new one does.
	_, err = svc.Authenticate(context.Background(), "alice", "old")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = svc.Authenticate(context.Background(), "alice", "new")
	require.NoError(t, err)

	_, err = svc.ResetPassword(context.Background(), uuid.New(), "x")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestUpdateRole(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	u := register(t, svc, "alice", "pw", "user")

	got, err := svc.UpdateRole(context.Background(), u.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)

	_, err = svc.UpdateRole(context.Background(), u.ID, "wizard")
	require.ErrorIs(t, err, common.ErrBadRequest)

	// The failed update left the role alone.
	stored, err := svc.store.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)

	_, err = svc.UpdateRole(context.Background(), uuid.New(), "user")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestDeleteByUsername(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	u := register(t, svc, "alice", "pw", "user")

	got, err := svc.DeleteByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.store.GetByUsername(context.Background(), "alice")
	require.ErrorIs(t, err, common.ErrUserNotFound)

	_, err = svc.DeleteByUsername(context.Background(), "alice")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	register(t, svc, "alice", "pw", "user")
	register(t, svc, "bob", "pw", "admin")

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "bob", list[1].Username)
}
