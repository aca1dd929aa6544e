package services_test

import (
	"testing"

	"galeri/internal/models"
	"galeri/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of repositories.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) AddItem(userID, postID string, quantity int) error {
	args := m.Called(userID, postID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveItem(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockCartRepository) View(userID string) ([]models.CartLine, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartLine), args.Error(1)
}

func TestCartService_AddItemRejectsNonPositiveQuantity(t *testing.T) {
	mockRepo := new(MockCartRepository)
	service := services.NewCartService(mockRepo)

	assert.Error(t, service.AddItem("buyer-1", "post-1", 0))
	assert.Error(t, service.AddItem("buyer-1", "post-1", -2))
	mockRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_AddItemDelegates(t *testing.T) {
	mockRepo := new(MockCartRepository)
	service := services.NewCartService(mockRepo)

	mockRepo.On("AddItem", "buyer-1", "post-1", 1).Return(nil).Once()
	assert.NoError(t, service.AddItem("buyer-1", "post-1", 1))

	mockRepo.On("AddItem", "buyer-1", "post-2", 1).Return(models.ErrPostSold).Once()
	assert.ErrorIs(t, service.AddItem("buyer-1", "post-2", 1), models.ErrPostSold)
	mockRepo.AssertExpectations(t)
}

func TestCartService_ViewAndRemove(t *testing.T) {
	mockRepo := new(MockCartRepository)
	service := services.NewCartService(mockRepo)

	lines := []models.CartLine{{Post: models.PostSnapshot{ID: "post-1"}, Quantity: 2}}
	mockRepo.On("View", "buyer-1").Return(lines, nil).Once()
	got, err := service.ViewCart("buyer-1")
	assert.NoError(t, err)
	assert.Equal(t, lines, got)

	mockRepo.On("RemoveItem", "buyer-1", "post-1").Return(nil).Once()
	assert.NoError(t, service.RemoveItem("buyer-1", "post-1"))
	mockRepo.AssertExpectations(t)
}
