package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"bookceleb/internal/admins"
	"bookceleb/internal/shared/config"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, profile *admins.Profile) error {
	args := m.Called(ctx, profile)
	if args.Error(0) == nil && profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*admins.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.Profile), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*admins.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.Profile), args.Error(1)
}

func (m *mockRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		AdminCode: "letmein",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func validSignup() SignupRequest {
	return SignupRequest{
		Email:     "operator@bookceleb.com",
		Password:  "Sup3rSecret",
		FullName:  "Site Operator",
		AdminCode: "letmein",
	}
}

func TestSignupRejectsWrongAdminCode(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	req := validSignup()
	req.AdminCode = "guess"

	result, err := svc.Signup(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidAdminCode)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupRejectsWhenNoCodeConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.AdminCode = ""
	svc := NewService(new(mockRepository), cfg)

	// An unset operator code disables signup entirely; an empty submitted
	// code must not match it.
	req := validSignup()
	req.AdminCode = ""

	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidAdminCode)
}

func TestSignupPasswordPolicy(t *testing.T) {
	svc := NewService(new(mockRepository), testConfig())

	weak := []string{
		"Sh0rt",        // under 8 characters
		"alllower1",    // no uppercase
		"ALLUPPER1",    // no lowercase
		"NoDigitsHere", // no digit
	}

	for _, password := range weak {
		req := validSignup()
		req.Password = password
		_, err := svc.Signup(context.Background(), req)
		assert.ErrorIs(t, err, ErrWeakPassword, "password %q should be rejected", password)
	}
}

func TestSignupRejectsTakenEmail(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	repo.On("ExistsByEmail", mock.Anything, "operator@bookceleb.com").Return(true, nil)

	_, err := svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupSuccess(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	repo.On("ExistsByEmail", mock.Anything, "operator@bookceleb.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Signup(context.Background(), validSignup())

	assert.NoError(t, err)
	assert.Equal(t, admins.RoleAdmin, result.Profile.Role)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	assert.Equal(t, int64(900), result.Tokens.ExpiresIn)

	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "Sup3rSecret", result.Profile.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.Profile.Password), []byte("Sup3rSecret")))
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.DefaultCost)
	repo.On("GetByEmail", mock.Anything, "operator@bookceleb.com").Return(&admins.Profile{
		ID:       uuid.New(),
		Email:    "operator@bookceleb.com",
		Password: string(hashed),
		Role:     admins.RoleAdmin,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "operator@bookceleb.com",
		Password: "WrongPassword1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	repo.On("GetByEmail", mock.Anything, "nobody@bookceleb.com").Return(nil, ErrProfileNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@bookceleb.com",
		Password: "Sup3rSecret",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRoundTrip(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	profile := &admins.Profile{
		ID:    uuid.New(),
		Email: "operator@bookceleb.com",
		Role:  admins.RoleAdmin,
	}
	repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(profile, nil)

	signedUp, err := svc.Signup(context.Background(), validSignup())
	assert.NoError(t, err)

	tokens, err := svc.Refresh(context.Background(), signedUp.Tokens.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	signedUp, err := svc.Signup(context.Background(), validSignup())
	assert.NoError(t, err)

	// An access token must not mint new token pairs.
	_, err = svc.Refresh(context.Background(), signedUp.Tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewService(new(mockRepository), testConfig())

	_, err := svc.Refresh(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
