package service

import (
	"context"
	"strings"

	"arena45/backend/internal/clock"
	"arena45/backend/internal/domain"
	"arena45/backend/internal/password"
	"arena45/backend/internal/repository"
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegisterInput struct {
	Name           string `json:"name" validate:"min=2"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"min=6"`
	Role           string `json:"role" validate:"omitempty,oneof=admin member trainer"`
	Phone          string `json:"phone"`
	MembershipType string `json:"membershipType" validate:"omitempty,oneof=basic premium vip"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserInput struct {
	Name           *string `json:"name" validate:"omitempty,min=2"`
	Phone          *string `json:"phone"`
	MembershipType *string `json:"membershipType" validate:"omitempty,oneof=basic premium vip"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

type UserQuery struct {
	Page   int64  `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit  int64  `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Role   string `form:"role" json:"role" validate:"omitempty,oneof=admin member trainer"`
	Status string `form:"status" json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// UserService manages accounts. Returned users never carry a password hash.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*domain.User, error)
	List(ctx context.Context, q UserQuery) ([]domain.User, domain.Pagination, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type userService struct {
	repo      repository.UserRepository
	validator *validation.Validator
	clock     clock.Clock
}

func NewUserService(repo repository.UserRepository, v *validation.Validator, clk clock.Clock) UserService {
	return &userService{repo: repo, validator: v, clock: clk}
}

// Register handles new user registration.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	_, err := s.repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, unexpected(err, "check user email")
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, unexpected(err, "hash password")
	}

	role := domain.Role(in.Role)
	if role == "" {
		role = domain.RoleMember
	}
	user := &domain.User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   hashed,
		Role:           role,
		Phone:          in.Phone,
		JoinDate:       s.clock.Now().UTC(),
		Status:         domain.UserActive,
		MembershipType: domain.MembershipType(in.MembershipType),
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		// Another request registered the same email after the check above.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, unexpected(err, "create user")
	}
	user.ID = id
	user.PasswordHash = ""
	return user, nil
}

// Login checks credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, in LoginInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, unexpected(err, "get user by email")
	}

	if err := password.Compare(user.PasswordHash, in.Password); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, unexpected(err, "compare password")
	}

	if !user.IsActive() {
		return nil, ErrAccountNotActive
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *userService) List(ctx context.Context, q UserQuery) ([]domain.User, domain.Pagination, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, domain.Pagination{}, err
	}
	filter := domain.UserFilter{Role: domain.Role(q.Role), Status: domain.UserStatus(q.Status)}
	page := domain.NewPage(q.Page, q.Limit)

	users, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, domain.Pagination{}, unexpected(err, "list users")
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, unexpected(err, "count users")
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, domain.NewPagination(page, total), nil
}

func (s *userService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, unexpected(err, "get user")
	}
	user.PasswordHash = ""
	return user, nil
}

// Update changes profile fields. The stored password hash is never rewritten here.
func (s *userService) Update(ctx context.Context, id primitive.ObjectID, in UpdateUserInput) (*domain.User, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		in.Name = &name
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	patch := domain.UserPatch{Name: in.Name, Phone: in.Phone}
	if in.MembershipType != nil {
		mt := domain.MembershipType(*in.MembershipType)
		patch.MembershipType = &mt
	}
	if in.Status != nil {
		st := domain.UserStatus(*in.Status)
		patch.Status = &st
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, unexpected(err, "update user")
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return unexpected(err, "delete user")
	}
	return nil
}
