package service

import (
	"context"
	"time"

	"github.com/adifdwimaulana/saas-coding-test/internal/dto"
	"github.com/adifdwimaulana/saas-coding-test/internal/repository"
)

type CustomerService interface {
	List(ctx context.Context) ([]dto.CustomerResponse, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		data = append(data, dto.CustomerResponse{
			CustomerID: c.CustomerID.String(),
			Name:       c.Name,
			Email:      c.Email,
			CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		})
	}
	return data, nil
}
