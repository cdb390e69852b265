// Package auth содержит логику бизнес-уровня для регистрации
// и аутентификации пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/account-keeper/internal/lib/checks"
	"github.com/magabrotheeeer/account-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/account-keeper/internal/lib/password"
	"github.com/magabrotheeeer/account-keeper/internal/models"
	"github.com/magabrotheeeer/account-keeper/internal/storage/repository"
)

// Ошибки бизнес-уровня аутентификации.
var (
	// ErrInvalidCredentials возвращается при любом несовпадении email/пароля.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidEmail возвращается, когда строка не похожа на email.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrWeakPassword возвращается, когда классификатор оценил пароль как слабый.
	ErrWeakPassword = errors.New("password is too weak")
)

// AccountStore описывает контракт хранилища учётных записей,
// необходимый сервису аутентификации.
type AccountStore interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	store    AccountStore
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(store AccountStore, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		store:    store,
		jwtMaker: jwtMaker,
	}
}

// Register проверяет форму email и надёжность пароля, хэширует пароль
// и создает новую учётную запись. Возвращает UID записи.
func (s *AuthService) Register(ctx context.Context, email, firstName, lastName, rawPassword string) (string, error) {
	if !checks.IsEmail(email) {
		return "", ErrInvalidEmail
	}
	if checks.PasswordStrength(rawPassword) == checks.StrengthWeak {
		return "", ErrWeakPassword
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hashed,
	}
	return s.store.CreateUser(ctx, user)
}

// Authenticate возвращает запись пользователя при точном совпадении email
// и верном пароле. Любое несовпадение — ErrInvalidCredentials, без уточнения,
// какое именно поле не подошло.
func (s *AuthService) Authenticate(ctx context.Context, email, rawPassword string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login проверяет учётные данные пользователя и генерирует JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.Authenticate(ctx, email, rawPassword)
	if err != nil {
		return "", nil, err
	}
	token, err := s.jwtMaker.GenerateToken(user.Email, user.UID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateToken проверяет JWT и возвращает claims с email и uid пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	const op = "auth.ValidateToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return claims, nil
}
