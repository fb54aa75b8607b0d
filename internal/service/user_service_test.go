package service

import (
	"context"
	"testing"
	"time"

	"arena45/backend/internal/clock"
	"arena45/backend/internal/domain"
	"arena45/backend/internal/password"
	"arena45/backend/internal/repository"
	"arena45/backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUserService(repo *mockUserRepo) UserService {
	return NewUserService(repo, validation.New(), clock.NewMockClock(time.Date(2030, 1, 2, 9, 0, 0, 0, time.UTC)))
}

func TestUserService_Register(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newUserService(repo)
	id := primitive.NewObjectID()

	repo.On("GetByEmail", mock.Anything, "anna@example.com").Return(nil, repository.ErrNotFound).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleMember &&
			u.Status == domain.UserActive &&
			password.Compare(u.PasswordHash, "secret1") == nil
	})).Return(id, nil).Once()

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Anna",
		Email:    "Anna@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, time.Date(2030, 1, 2, 9, 0, 0, 0, time.UTC), user.JoinDate)
	repo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newUserService(repo)

	repo.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.User{}, nil).Once()
	_, err := svc.Register(context.Background(), RegisterInput{Name: "Anna", Email: "anna@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	repo.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, repository.ErrNotFound).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(primitive.NilObjectID, repository.ErrDuplicateKey).Once()
	_, err = svc.Register(context.Background(), RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserService_Login(t *testing.T) {
	hash, err := password.Hash("secret1")
	require.NoError(t, err)

	repo := new(mockUserRepo)
	svc := newUserService(repo)
	repo.On("GetByEmail", mock.Anything, "anna@example.com").
		Return(&domain.User{Email: "anna@example.com", PasswordHash: hash, Status: domain.UserActive}, nil)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)
	repo.On("GetByEmail", mock.Anything, "off@example.com").
		Return(&domain.User{Email: "off@example.com", PasswordHash: hash, Status: domain.UserSuspended}, nil)

	user, err := svc.Login(context.Background(), LoginInput{Email: "anna@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	_, wrongPassword := svc.Login(context.Background(), LoginInput{Email: "anna@example.com", Password: "nope"})
	_, unknownEmail := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())

	_, err = svc.Login(context.Background(), LoginInput{Email: "off@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrAccountNotActive)
}

func TestUserService_ListStripsHashes(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newUserService(repo)

	repo.On("List", mock.Anything, domain.UserFilter{Role: domain.RoleTrainer}, domain.NewPage(1, 10)).
		Return([]domain.User{{Name: "T", PasswordHash: "x"}}, nil).Once()
	repo.On("Count", mock.Anything, domain.UserFilter{Role: domain.RoleTrainer}).Return(int64(1), nil).Once()

	users, p, err := svc.List(context.Background(), UserQuery{Role: "trainer"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].PasswordHash)
	assert.EqualValues(t, 1, p.TotalPages)
}
