package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"recipeblog-backend/internal/domains/user"
	"recipeblog-backend/pkg/jwt"
)

// ---- fake repository ----

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.ErrEmailAlreadyExists
		}
		if existing.Username == u.Username {
			return user.ErrUsernameAlreadyExists
		}
	}
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// ---- helpers ----

func setupService(t *testing.T) (user.Service, *fakeUserRepo, *jwt.Manager) {
	t.Helper()
	repo := newFakeUserRepo()
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewUserService(repo, manager), repo, manager
}

func validRegister() user.RegisterRequest {
	return user.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "sup3rsecret",
	}
}

// ---- register ----

func TestRegister_Succeeds(t *testing.T) {
	svc, repo, manager := setupService(t)

	resp, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.User.Username)
	// Display name falls back to the username
	assert.Equal(t, "alice", resp.User.DisplayName)

	// The token resolves back to the new user's ID
	claims, err := manager.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)

	stored := repo.users[resp.User.ID]
	require.NotNil(t, stored)
	// Stored hash verifies against the original password and is not
	// the plaintext
	assert.NotEqual(t, "sup3rsecret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("sup3rsecret")))
}

func TestRegister_ExplicitDisplayName(t *testing.T) {
	svc, _, _ := setupService(t)

	req := validRegister()
	req.DisplayName = "Alice in Wonderland"

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Alice in Wonderland", resp.User.DisplayName)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	dup := validRegister()
	dup.Username = "alice2"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	dup := validRegister()
	dup.Email = "alice2@example.com"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)
}

func TestRegister_RejectsMissingPassword(t *testing.T) {
	svc, repo, _ := setupService(t)

	req := validRegister()
	req.Password = ""

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, repo.users)
}

func TestRegister_ShortCredentialsAccepted(t *testing.T) {
	svc, _, _ := setupService(t)

	resp, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "chef1",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "chef1", resp.User.Username)
}

// ---- login ----

func TestLogin_Succeeds(t *testing.T) {
	svc, _, manager := setupService(t)

	registered, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "alice@example.com",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	claims, err := manager.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID.String(), claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := setupService(t)

	// Unknown email and wrong password are indistinguishable
	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

// ---- profile ----

func TestUpdateProfile_MergesOnlyProvidedFields(t *testing.T) {
	svc, _, _ := setupService(t)

	req := validRegister()
	req.Bio = "I cook."
	registered, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	newName := "Chef Alice"
	dto, err := svc.UpdateProfile(context.Background(), registered.User.ID, user.UpdateProfileRequest{
		DisplayName: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Chef Alice", dto.DisplayName)
	assert.Equal(t, "I cook.", dto.Bio)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc, _, _ := setupService(t)

	name := "Ghost"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), user.UpdateProfileRequest{
		DisplayName: &name,
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

// ---- serialization ----

func TestUserDTO_NeverExposesPasswordHash(t *testing.T) {
	svc, _, _ := setupService(t)

	resp, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), "$2a$")
}
