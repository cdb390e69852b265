// Package profile содержит логику бизнес-уровня для чтения
// и редактирования профиля пользователя.
package profile

import (
	"context"

	"github.com/magabrotheeeer/account-keeper/internal/lib/checks"
	"github.com/magabrotheeeer/account-keeper/internal/lib/password"
	"github.com/magabrotheeeer/account-keeper/internal/models"
	"github.com/magabrotheeeer/account-keeper/internal/services/auth"
	"github.com/magabrotheeeer/account-keeper/internal/storage/repository"
)

// AccountStore описывает контракт хранилища учётных записей,
// необходимый сервису профиля.
type AccountStore interface {
	// GetUser возвращает пользователя по его UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)

	// UpdateUser заменяет изменяемые поля записи и сохраняет коллекцию.
	UpdateUser(ctx context.Context, userUID string, patch repository.UpdateUserPatch) (*models.User, error)
}

// ProfileService отвечает за чтение и изменение данных профиля.
type ProfileService struct {
	store AccountStore
}

// NewProfileService создает новый экземпляр ProfileService.
func NewProfileService(store AccountStore) *ProfileService {
	return &ProfileService{store: store}
}

// Get возвращает запись пользователя по его UID.
func (s *ProfileService) Get(ctx context.Context, userUID string) (*models.User, error) {
	return s.store.GetUser(ctx, userUID)
}

// Update заменяет изменяемые поля записи: имя, фамилию, email и,
// если передан непустой rawPassword, пароль.
//
// Перед записью email проверяется на форму, новый пароль — на надёжность.
// Проверку занятости email выполняет хранилище, исключая саму запись.
func (s *ProfileService) Update(ctx context.Context, userUID, email, firstName, lastName, rawPassword string) (*models.User, error) {
	if !checks.IsEmail(email) {
		return nil, auth.ErrInvalidEmail
	}

	patch := repository.UpdateUserPatch{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	if rawPassword != "" {
		if checks.PasswordStrength(rawPassword) == checks.StrengthWeak {
			return nil, auth.ErrWeakPassword
		}
		hashed, err := password.GetHash(rawPassword)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = hashed
	}

	return s.store.UpdateUser(ctx, userUID, patch)
}
