package service

import (
	"context"
	"fmt"

	"apparel-storefront/internal/dto"
	"apparel-storefront/internal/model"
	"apparel-storefront/internal/repository"

	"github.com/google/uuid"
)

type AddressService interface {
	Create(ctx context.Context, userID string, req *dto.CreateAddressRequest) (*model.Address, error)
	List(ctx context.Context, userID string) ([]*model.Address, error)
}

type addressServiceImpl struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressServiceImpl{
		addressRepo: addressRepo,
	}
}

func (s *addressServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateAddressRequest) (*model.Address, error) {
	for _, f := range []struct {
		name, value string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"street", req.Street},
		{"city", req.City},
		{"state", req.State},
	} {
		if f.value == "" {
			return nil, &ValidationError{Field: f.name}
		}
	}

	address := &model.Address{
		ID:         uuid.NewString(),
		UserID:     userID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	return address, nil
}

func (s *addressServiceImpl) List(ctx context.Context, userID string) ([]*model.Address, error) {
	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	return addresses, nil
}
