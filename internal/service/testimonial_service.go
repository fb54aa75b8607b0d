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

type CreateTestimonialInput struct {
	Name     string   `json:"name" validate:"min=2"`
	Role     string   `json:"role" validate:"min=2"`
	Image    string   `json:"image"`
	Rating   *float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Text     string   `json:"text" validate:"min=10"`
	Program  string   `json:"program" validate:"omitempty,oneof=ems crossfit pilates general"`
	Approved *bool    `json:"approved"`
	Featured *bool    `json:"featured"`
}

type UpdateTestimonialInput struct {
	Approved *bool `json:"approved"`
	Featured *bool `json:"featured"`
}

type TestimonialQuery struct {
	Page     int64  `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit    int64  `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Program  string `form:"program" json:"program" validate:"omitempty,oneof=ems crossfit pilates general"`
	Approved *bool  `form:"approved" json:"approved"`
	Featured *bool  `form:"featured" json:"featured"`
}

type TestimonialService interface {
	Create(ctx context.Context, in CreateTestimonialInput) (*domain.Testimonial, error)
	List(ctx context.Context, q TestimonialQuery) ([]domain.Testimonial, domain.Pagination, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Testimonial, error)
	Update(ctx context.Context, id primitive.ObjectID, in UpdateTestimonialInput) (*domain.Testimonial, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type testimonialService struct {
	repo      repository.TestimonialRepository
	validator *validation.Validator
}

func NewTestimonialService(repo repository.TestimonialRepository, v *validation.Validator) TestimonialService {
	return &testimonialService{repo: repo, validator: v}
}

// Create stores a testimonial. New testimonials are hidden until approved.
func (s *testimonialService) Create(ctx context.Context, in CreateTestimonialInput) (*domain.Testimonial, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	in.Text = strings.TrimSpace(in.Text)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	t := &domain.Testimonial{
		Name:    in.Name,
		Role:    in.Role,
		Image:   in.Image,
		Rating:  *in.Rating,
		Text:    in.Text,
		Program: domain.TestimonialProgram(in.Program),
	}
	if in.Approved != nil {
		t.Approved = *in.Approved
	}
	if in.Featured != nil {
		t.Featured = *in.Featured
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, unexpected(err, "create testimonial")
	}
	t.ID = id
	return t, nil
}

func (s *testimonialService) List(ctx context.Context, q TestimonialQuery) ([]domain.Testimonial, domain.Pagination, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, domain.Pagination{}, err
	}
	filter := domain.TestimonialFilter{
		Approved: q.Approved,
		Featured: q.Featured,
		Program:  domain.TestimonialProgram(q.Program),
	}
	page := domain.NewPage(q.Page, q.Limit)

	items, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, domain.Pagination{}, unexpected(err, "list testimonials")
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, unexpected(err, "count testimonials")
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *testimonialService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Testimonial, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, unexpected(err, "get testimonial")
	}
	return t, nil
}

// Update changes the moderation flags only.
func (s *testimonialService) Update(ctx context.Context, id primitive.ObjectID, in UpdateTestimonialInput) (*domain.Testimonial, error) {
	t, err := s.repo.Update(ctx, id, domain.TestimonialPatch{Approved: in.Approved, Featured: in.Featured})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, unexpected(err, "update testimonial")
	}
	return t, nil
}

func (s *testimonialService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTestimonialNotFound
		}
		return unexpected(err, "delete testimonial")
	}
	return nil
}
