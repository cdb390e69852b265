// Package repository реализует хранилище учётных записей поверх слота
// ключ-значение. Коллекция пользователей держится в памяти и целиком
// записывается в слот после каждого изменения; глобального состояния нет,
// владельцем коллекции является Store.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/account-keeper/internal/models"
)

// Slot описывает контракт долговременного слота, хранящего
// сериализованную коллекцию пользователей.
type Slot interface {
	// Load читает всю коллекцию; отсутствие данных — пустая коллекция.
	Load(ctx context.Context) ([]models.User, error)

	// Save перезаписывает коллекцию целиком.
	Save(ctx context.Context, users []models.User) error
}

// UpdateUserPatch описывает изменяемые поля записи при редактировании профиля.
// Пустой PasswordHash означает «оставить текущий хэш».
type UpdateUserPatch struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

// Store — владеющий объект хранилища учётных записей.
// Записи никогда не удаляются: операции удаления не существует.
type Store struct {
	mu    sync.RWMutex
	slot  Slot
	users []models.User
}

// New загружает коллекцию из слота и возвращает готовый Store.
func New(ctx context.Context, slot Slot) (*Store, error) {
	const op = "repository.New"
	users, err := slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{slot: slot, users: users}, nil
}

// CreateUser сохраняет нового пользователя и возвращает его UID.
//
// Возвращает ErrEmailTaken, если email точно совпадает с email
// существующей записи. UID и дата создания назначаются здесь.
func (s *Store) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "repository.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
	}

	user.UID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	s.users = append(s.users, user)
	if err := s.slot.Save(ctx, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return user.UID, nil
}

// GetUserByEmail возвращает пользователя по email (точное совпадение).
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "repository.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}

// GetUser возвращает пользователя по его UID.
func (s *Store) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "repository.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.UID == userUID {
			found := u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}

// UpdateUser заменяет изменяемые поля записи и сохраняет коллекцию.
//
// Проверка занятости email пропускает саму редактируемую запись:
// смена email на собственный прежний адрес проходит успешно.
// UID и дата создания записи не меняются.
func (s *Store) UpdateUser(ctx context.Context, userUID string, patch UpdateUserPatch) (*models.User, error) {
	const op = "repository.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.users {
		if u.UID == userUID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	for i, u := range s.users {
		if i != idx && u.Email == patch.Email {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
	}

	prev := s.users[idx]
	updated := prev
	updated.Email = patch.Email
	updated.FirstName = patch.FirstName
	updated.LastName = patch.LastName
	if patch.PasswordHash != "" {
		updated.PasswordHash = patch.PasswordHash
	}

	s.users[idx] = updated
	if err := s.slot.Save(ctx, s.users); err != nil {
		s.users[idx] = prev
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &updated, nil
}

// ListUsers возвращает снимок всей коллекции.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "repository.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.User, len(s.users))
	copy(snapshot, s.users)
	return snapshot, nil
}

// Reload перечитывает коллекцию из слота, отбрасывая состояние в памяти.
func (s *Store) Reload(ctx context.Context) error {
	const op = "repository.Reload"
	users, err := s.slot.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	return nil
}
