package services

import (
	"testing"

	"Stocked/internal/config"
	"Stocked/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	user, ok := args.Get(0).(*models.User)
	if !ok {
		return nil, args.Error(1)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	user, ok := args.Get(0).(*models.User)
	if !ok {
		return nil, args.Error(1)
	}
	return user, args.Error(1)
}

func authConfig(ttlHours int) *config.Configuration {
	return &config.Configuration{
		Auth: config.AuthConfig{Secret: "test-secret", TokenTTLHours: ttlHours},
	}
}

func TestAuthService_RegisterAndValidate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, authConfig(24))

	mockRepo.On("FindByUsername", "alice").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-1"
	}).Return(nil)

	user, token, err := service.Register("alice", "hunter22")

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, token)
	// The stored hash must verify against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

	userID, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, authConfig(24))

	existing := &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Username: "Alice"}
	mockRepo.On("FindByUsername", "alice").Return(existing, nil)

	_, _, err := service.Register("alice", "hunter22")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, authConfig(24))

	_, _, err := service.Register("alice", "abc")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRepo.AssertNotCalled(t, "FindByUsername", mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, authConfig(24))

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Username: "alice", PasswordHash: string(hash)}
	mockRepo.On("FindByUsername", "alice").Return(user, nil)

	loggedIn, token, err := service.Login("alice", "hunter22")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", loggedIn.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_BadPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, authConfig(24))

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	user := &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Username: "alice", PasswordHash: string(hash)}
	mockRepo.On("FindByUsername", "alice").Return(user, nil)

	_, _, err := service.Login("alice", "wrong-password")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, authConfig(24))

	mockRepo.On("FindByUsername", "nobody").Return(nil, nil)

	_, _, err := service.Login("nobody", "hunter22")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	mockRepo := new(MockUserRepository)
	expiredIssuer := NewAuthService(mockRepo, authConfig(-1))

	mockRepo.On("FindByUsername", "alice").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	_, token, err := expiredIssuer.Register("alice", "hunter22")
	assert.NoError(t, err)

	_, err = expiredIssuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	service := NewAuthService(new(MockUserRepository), authConfig(24))

	_, err := service.ValidateToken("not-a-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}
