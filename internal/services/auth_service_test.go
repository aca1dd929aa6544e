package services_test

import (
	"io"
	"log"
	"os"
	"testing"

	"galeri/internal/models"
	"galeri/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{
		Username: "painter",
		Email:    "painter@example.com",
		Password: "password123",
	}

	mockRepo.On("GetByUsername", "painter").Return(nil, models.ErrUserNotFound).Once()
	mockRepo.On("GetByEmail", "painter@example.com").Return(nil, models.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	// The stored password must be a bcrypt hash of the original.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.User{ID: "user-1", Username: "painter"}
	mockRepo.On("GetByUsername", "painter").Return(existing, nil).Once()

	err := authService.RegisterUser(&models.User{
		Username: "painter",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "painter", Password: string(hash)}

	mockRepo.On("GetByUsername", "painter").Return(user, nil).Twice()

	token, err := authService.LoginUser("painter", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "painter", claims["username"])

	// Wrong password, same generic error as unknown user.
	_, err = authService.LoginUser("painter", "wrong")
	assert.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	_, err := authService.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Token signed with another secret.
	otherService := services.NewAuthService(mockRepo, "other_secret")
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.DefaultCost)
	mockRepo.On("GetByUsername", "painter").Return(&models.User{ID: "user-1", Username: "painter", Password: string(hash)}, nil).Once()
	token, err := otherService.LoginUser("painter", "pw123456")
	assert.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.Error(t, err)
}
