package inquiry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
)

type Service struct {
	inquiryRepo repository.InquiryRepository
	productRepo repository.ProductRepository
}

func NewService(inquiryRepo repository.InquiryRepository, productRepo repository.ProductRepository) *Service {
	return &Service{
		inquiryRepo: inquiryRepo,
		productRepo: productRepo,
	}
}

type ItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Note      string
}

type SubmitInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string
	Language      string
	Items         []ItemInput
}

// Submit records an inquiry cart. Every referenced product must exist;
// an unknown product fails the whole submission before anything is
// persisted.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*entity.Inquiry, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("inquiry without items")
	}

	for _, item := range input.Items {
		if _, err := s.productRepo.GetByID(ctx, item.ProductID); err != nil {
			return nil, err
		}
	}

	inq := entity.NewInquiry(input.CustomerName, input.CustomerEmail, input.CustomerPhone, input.Message, input.Language)
	for _, item := range input.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		inq.AddItem(item.ProductID, quantity, item.Note)
	}

	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, fmt.Errorf("creating inquiry: %w", err)
	}

	return inq, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	return s.inquiryRepo.GetByID(ctx, id)
}

type ListInput struct {
	Page    int
	PerPage int
	Status  *entity.InquiryStatus
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.Inquiry, *pagination.Info, error) {
	params := repository.InquiryListParams{
		Pagination: pagination.NewParams(input.Page, input.PerPage),
		Status:     input.Status,
	}

	inquiries, pageInfo, err := s.inquiryRepo.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing inquiries: %w", err)
	}

	return inquiries, pageInfo, nil
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) (*entity.Inquiry, error) {
	switch status {
	case entity.InquiryStatusNew, entity.InquiryStatusHandled, entity.InquiryStatusClosed:
	default:
		return nil, fmt.Errorf("unknown inquiry status %q", status)
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	inq, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInquiryNotFound
	}
	return inq, nil
}
