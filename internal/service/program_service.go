package service

import (
	"context"
	"strings"

	"arena45/backend/internal/domain"
	"arena45/backend/internal/repository"
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateProgramInput struct {
	Title            string   `json:"title" validate:"min=3"`
	Slug             string   `json:"slug" validate:"min=3"`
	Description      string   `json:"description" validate:"min=10"`
	ShortDescription string   `json:"shortDescription" validate:"min=10"`
	Features         []string `json:"features"`
	Price            *float64 `json:"price"`
	Duration         string   `json:"duration" validate:"min=1"`
	SessionsPerWeek  *int     `json:"sessionsPerWeek"`
	Image            string   `json:"image"`
	Icon             string   `json:"icon" validate:"min=1"`
	IsFeatured       *bool    `json:"isFeatured"`
	Available        *bool    `json:"available"`
	Order            *int     `json:"order"`
}

// UpdateProgramInput is a partial update; absent fields keep their value.
type UpdateProgramInput struct {
	Title            *string   `json:"title" validate:"omitempty,min=3"`
	Slug             *string   `json:"slug" validate:"omitempty,min=3"`
	Description      *string   `json:"description" validate:"omitempty,min=10"`
	ShortDescription *string   `json:"shortDescription" validate:"omitempty,min=10"`
	Features         *[]string `json:"features"`
	Price            *float64  `json:"price"`
	Duration         *string   `json:"duration" validate:"omitempty,min=1"`
	SessionsPerWeek  *int      `json:"sessionsPerWeek"`
	Image            *string   `json:"image"`
	Icon             *string   `json:"icon" validate:"omitempty,min=1"`
	IsFeatured       *bool     `json:"isFeatured"`
	Available        *bool     `json:"available"`
	Order            *int      `json:"order"`
}

type ProgramService interface {
	Create(ctx context.Context, in CreateProgramInput) (*domain.Program, error)
	List(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error)
	// Get looks a program up by slug first, then by id.
	Get(ctx context.Context, slugOrID string) (*domain.Program, error)
	Update(ctx context.Context, id primitive.ObjectID, in UpdateProgramInput) (*domain.Program, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type programService struct {
	repo      repository.ProgramRepository
	validator *validation.Validator
}

func NewProgramService(repo repository.ProgramRepository, v *validation.Validator) ProgramService {
	return &programService{repo: repo, validator: v}
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *programService) Create(ctx context.Context, in CreateProgramInput) (*domain.Program, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = normalizeSlug(in.Slug)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	// Fast path only; the unique index decides under concurrent creates.
	if err := s.ensureSlugFree(ctx, in.Slug); err != nil {
		return nil, err
	}

	program := &domain.Program{
		Title:            in.Title,
		Slug:             in.Slug,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Features:         in.Features,
		Price:            in.Price,
		Duration:         in.Duration,
		SessionsPerWeek:  in.SessionsPerWeek,
		Image:            in.Image,
		Icon:             in.Icon,
		Available:        true,
	}
	if program.Features == nil {
		program.Features = []string{}
	}
	if in.IsFeatured != nil {
		program.IsFeatured = *in.IsFeatured
	}
	if in.Available != nil {
		program.Available = *in.Available
	}
	if in.Order != nil {
		program.Order = *in.Order
	}

	id, err := s.repo.Create(ctx, program)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, unexpected(err, "create program")
	}
	program.ID = id
	return program, nil
}

func (s *programService) ensureSlugFree(ctx context.Context, slug string) error {
	_, err := s.repo.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		return ErrDuplicateSlug
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return unexpected(err, "check program slug")
	}
}

func (s *programService) List(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error) {
	programs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, unexpected(err, "list programs")
	}
	return programs, nil
}

func (s *programService) Get(ctx context.Context, slugOrID string) (*domain.Program, error) {
	program, err := s.repo.GetBySlug(ctx, normalizeSlug(slugOrID))
	if err == nil {
		return program, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, unexpected(err, "get program by slug")
	}

	id, hexErr := primitive.ObjectIDFromHex(strings.TrimSpace(slugOrID))
	if hexErr != nil {
		return nil, ErrProgramNotFound
	}
	program, err = s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, unexpected(err, "get program")
	}
	return program, nil
}

func (s *programService) Update(ctx context.Context, id primitive.ObjectID, in UpdateProgramInput) (*domain.Program, error) {
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		in.Title = &t
	}
	if in.Slug != nil {
		slug := normalizeSlug(*in.Slug)
		in.Slug = &slug
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	program, err := s.repo.Update(ctx, id, domain.ProgramPatch{
		Title:            in.Title,
		Slug:             in.Slug,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Features:         in.Features,
		Price:            in.Price,
		Duration:         in.Duration,
		SessionsPerWeek:  in.SessionsPerWeek,
		Image:            in.Image,
		Icon:             in.Icon,
		IsFeatured:       in.IsFeatured,
		Available:        in.Available,
		Order:            in.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProgramNotFound
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrDuplicateSlug
		}
		return nil, unexpected(err, "update program")
	}
	return program, nil
}

func (s *programService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return unexpected(err, "delete program")
	}
	return nil
}
