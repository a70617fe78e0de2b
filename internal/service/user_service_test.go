package service

import (
	"context"
	"io"
	"testing"

	"shareit/internal/database"
	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestService(users *mockUsers) *UserService {
	logger := zerolog.New(io.Discard)
	return NewUserService(users, &logger)
}

func TestUserCreate(t *testing.T) {
	users := &mockUsers{}
	svc := newUserTestService(users)

	users.On("CreateUser", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), &models.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	users := &mockUsers{}
	svc := newUserTestService(users)

	users.On("CreateUser", mock.Anything, mock.Anything).Return(database.ErrDuplicateEmail)

	_, err := svc.Create(context.Background(), &models.User{Name: "Alice", Email: "taken@example.com"})
	assert.ErrorIs(t, err, database.ErrDuplicateEmail)
}

func TestUserUpdate_PartialPatch(t *testing.T) {
	users := &mockUsers{}
	svc := newUserTestService(users)

	existing := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	users.On("GetUser", mock.Anything, int64(1)).Return(existing, nil)
	users.On("UpdateUser", mock.Anything, mock.Anything).Return(nil)

	name := "Alice B."
	blank := "   "
	user, err := svc.Update(context.Background(), 1, UserPatch{Name: &name, Email: &blank})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", user.Name)
	// Blank patch fields are ignored.
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserUpdate_NotFound(t *testing.T) {
	users := &mockUsers{}
	svc := newUserTestService(users)

	users.On("GetUser", mock.Anything, int64(404)).Return(nil, database.ErrUserNotFound)

	name := "ghost"
	_, err := svc.Update(context.Background(), 404, UserPatch{Name: &name})
	assert.ErrorIs(t, err, database.ErrUserNotFound)
	users.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserDelete(t *testing.T) {
	users := &mockUsers{}
	svc := newUserTestService(users)

	users.On("DeleteUser", mock.Anything, int64(1)).Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), 1))
}
