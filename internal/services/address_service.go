package services

import (
	"galeri/internal/models"
	"galeri/internal/repositories"
)

// AddressService records shipping addresses. Create-only; addresses are not
// coupled to orders.
type AddressService struct {
	addressRepo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(addressRepo repositories.AddressRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
	}
}

// CreateAddress stores a new shipping address for the user.
func (s *AddressService) CreateAddress(address *models.Address) error {
	return s.addressRepo.Create(address)
}
