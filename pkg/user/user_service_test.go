package user

import (
	"context"
	"testing"

	"fridgify/domain"
	"fridgify/entities"
	"fridgify/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byEmail: make(map[string]*entities.User),
		byID:    make(map[string]*entities.User),
	}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	req := domain.RegisterRequest{Email: "ana@example.com", Password: "secret-password", Name: "Ana"}

	res, err := service.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.Email)
	assert.NotEmpty(t, res.ID)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-password", stored.Password, "password must be stored hashed")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := service.Register(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := service.Login(context.Background(), domain.LoginRequest{
			Email:    "ana@example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.Equal(t, "bearer", res.TokenType)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), domain.LoginRequest{
			Email:    "ana@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(context.Background(), domain.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret-password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secret-password",
		Name:     "Ana",
		Locale:   "en",
	})
	require.NoError(t, err)

	me, err := service.Me(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", me.Email)
	assert.Equal(t, "Ana", me.Name)
	assert.Equal(t, "en", me.Locale)

	_, err = service.Me(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
