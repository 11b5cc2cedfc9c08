package userservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"beerstock/internal/domain"
	apperror "beerstock/internal/errors"
	"beerstock/internal/pkg/logger"
	"beerstock/internal/service/userservice"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) GenerateToken(userID string, userRole string) (string, error) {
	args := m.Called(userID, userRole)
	return args.String(0), args.Error(1)
}

func setup() (*userservice.UserService, *MockUserRepository, *MockTokenGenerator) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenGenerator)
	return userservice.NewService(repo, tokens, logger.NewNop()), repo, tokens
}

func TestRegister_FirstUserIsAdmin(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()

	repo.On("Count", ctx).Return(0, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "admin@beerstock.dev" && u.Role == domain.RoleAdmin &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3nh4-f0rte")) == nil
	})).Return(domain.User{ID: "u1", Email: "admin@beerstock.dev", Role: domain.RoleAdmin}, nil)

	user, err := svc.Register(ctx, domain.UserRegistration{Email: " admin@beerstock.dev ", Password: "s3nh4-f0rte"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	repo.AssertExpectations(t)
}

func TestRegister_LaterUsersAreRegular(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()

	repo.On("Count", ctx).Return(3, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(u domain.User) bool { return u.Role == domain.RoleUser })).
		Return(domain.User{ID: "u4", Role: domain.RoleUser}, nil)

	user, err := svc.Register(ctx, domain.UserRegistration{Email: "op@beerstock.dev", Password: "12345678"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc, repo, _ := setup()

	cases := []domain.UserRegistration{
		{Email: "", Password: "12345678"},
		{Email: "op@beerstock.dev", Password: ""},
		{Email: "nao-e-email", Password: "12345678"},
		{Email: "op@beerstock.dev", Password: "curta"},
	}
	for _, c := range cases {
		_, err := svc.Register(context.Background(), c)
		assert.IsType(t, &apperror.ValidationError{}, err, "%+v", c)
	}
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()

	repo.On("Count", ctx).Return(1, nil)
	repo.On("Save", ctx, mock.Anything).Return(domain.User{}, domain.ErrDuplicateEmail)

	_, err := svc.Register(ctx, domain.UserRegistration{Email: "op@beerstock.dev", Password: "12345678"})

	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, tokens := setup()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("FindByEmail", ctx, "op@beerstock.dev").
		Return(domain.User{ID: "u1", PasswordHash: string(hash), Role: domain.RoleUser}, nil)
	tokens.On("GenerateToken", "u1", "user").Return("jwt-token", nil)

	tok, err := svc.Login(ctx, "op@beerstock.dev", "12345678")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", tok)
	tokens.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, repo, tokens := setup()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("FindByEmail", ctx, "op@beerstock.dev").Return(domain.User{ID: "u1", PasswordHash: string(hash)}, nil)
	repo.On("FindByEmail", ctx, "ghost@beerstock.dev").Return(domain.User{}, domain.ErrUserNotFound)

	_, err = svc.Login(ctx, "op@beerstock.dev", "errada")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	_, err = svc.Login(ctx, "ghost@beerstock.dev", "12345678")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	_, err = svc.Login(ctx, "", "")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestLogin_TokenFailureIsInternal(t *testing.T) {
	svc, repo, tokens := setup()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("FindByEmail", ctx, "op@beerstock.dev").Return(domain.User{ID: "u1", PasswordHash: string(hash), Role: domain.RoleAdmin}, nil)
	tokens.On("GenerateToken", "u1", "admin").Return("", errors.New("boom"))

	_, err = svc.Login(ctx, "op@beerstock.dev", "12345678")

	assert.IsType(t, &apperror.InternalError{}, err)
}
