package services

import (
	"strings"
	"time"

	"Stocked/internal/config"
	"Stocked/internal/models"
	"Stocked/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService interface {
	Register(username, password string) (*models.User, string, error)
	Login(username, password string) (*models.User, string, error)
	ValidateToken(token string) (string, error)
	GetUser(id string) (*models.User, error)
}

func NewAuthService(userRepo repository.UserRepository, configuration *config.Configuration) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		secret:   []byte(configuration.Auth.Secret),
		tokenTTL: time.Duration(configuration.Auth.TokenTTLHours) * time.Hour,
	}
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

type authClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (s *authServiceImpl) Register(username, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", newValidationError("username must not be empty")
	}
	if len(username) > maxNameLength {
		return nil, "", newValidationError("username must be at most %d characters", maxNameLength)
	}
	if len(password) < minPasswordLength {
		return nil, "", newValidationError("password must be at least %d characters", minPasswordLength)
	}

	existing, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}
	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authServiceImpl) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrUnauthorized
	}
	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ValidateToken returns the user id carried by a valid token. Malformed,
// mis-signed and expired tokens all fail the same way so the client cannot
// distinguish the cause.
func (s *authServiceImpl) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok || claims.Subject == "" {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}

func (s *authServiceImpl) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *authServiceImpl) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
