package service

import (
	"context"
	"strings"

	"arena45/backend/internal/domain"
	"arena45/backend/internal/notify"
	"arena45/backend/internal/repository"
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateContactInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

type ContactQuery struct {
	Page   int64  `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit  int64  `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Status string `form:"status" json:"status" validate:"omitempty,oneof=new read replied resolved"`
}

type ContactService interface {
	Create(ctx context.Context, in CreateContactInput) (*domain.Contact, error)
	List(ctx context.Context, q ContactQuery) ([]domain.Contact, domain.Pagination, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Contact, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*domain.Contact, error)
}

type contactService struct {
	repo      repository.ContactRepository
	notifier  notify.Notifier
	validator *validation.Validator
}

func NewContactService(repo repository.ContactRepository, notifier notify.Notifier, v *validation.Validator) ContactService {
	return &contactService{repo: repo, notifier: notifier, validator: v}
}

func (s *contactService) Create(ctx context.Context, in CreateContactInput) (*domain.Contact, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  domain.ContactNew,
	}
	id, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, unexpected(err, "create contact")
	}
	contact.ID = id

	s.notifier.Notify(context.WithoutCancel(ctx), notify.ContactReceivedEvent(contact))
	return contact, nil
}

func (s *contactService) List(ctx context.Context, q ContactQuery) ([]domain.Contact, domain.Pagination, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, domain.Pagination{}, err
	}
	filter := domain.ContactFilter{Status: domain.ContactStatus(q.Status)}
	page := domain.NewPage(q.Page, q.Limit)

	items, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, domain.Pagination{}, unexpected(err, "list contacts")
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, unexpected(err, "count contacts")
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *contactService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, unexpected(err, "get contact")
	}
	return contact, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*domain.Contact, error) {
	st := domain.ContactStatus(strings.TrimSpace(status))
	if !st.IsValid() {
		return nil, ErrInvalidStatus
	}
	contact, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, unexpected(err, "update contact status")
	}
	return contact, nil
}
