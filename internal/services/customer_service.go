package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"repair-console/internal/apiclient"
	"repair-console/internal/cache"
	"repair-console/internal/models"
)

type CustomerService struct {
	Client *apiclient.Client
}

func NewCustomerService(client *apiclient.Client) *CustomerService {
	return &CustomerService{Client: client}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (models.Customer, error) {
	// Validate input
	if req.Name == "" || req.Phone == "" {
		return models.Customer{}, errors.New("name and phone are required")
	}

	customer, err := s.Client.CreateCustomer(ctx, req)
	if err != nil {
		return models.Customer{}, err
	}
	cache.InvalidateCustomerCaches(ctx)
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (models.Customer, error) {
	return s.Client.GetCustomer(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context, page int) (apiclient.Page[models.Customer], error) {
	key := fmt.Sprintf("customers:%d", page)
	if data, ok := cache.GetCached(ctx, key); ok {
		var cached apiclient.Page[models.Customer]
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	}

	result, err := s.Client.ListCustomers(ctx, page)
	if err != nil {
		return apiclient.Page[models.Customer]{}, err
	}

	if data, err := json.Marshal(result); err == nil {
		cache.SetCached(ctx, key, data, 2*time.Minute)
	}
	return result, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (models.Customer, error) {
	// Validate input
	if req.Name == "" || req.Phone == "" {
		return models.Customer{}, errors.New("name and phone are required")
	}

	customer, err := s.Client.UpdateCustomer(ctx, id, req)
	if err != nil {
		return models.Customer{}, err
	}
	cache.InvalidateCustomerCaches(ctx)
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.Client.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCustomerCaches(ctx)
	return nil
}
