// Package storage реализует долговременный слот хранения на основе Redis.
// Вся коллекция пользователей хранится одним JSON-массивом под фиксированным
// ключом и перезаписывается целиком при каждом изменении.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/account-keeper/internal/config"
	"github.com/magabrotheeeer/account-keeper/internal/models"
)

// Slot инкапсулирует клиент Redis и имя ключа, под которым
// хранится сериализованная коллекция пользователей.
type Slot struct {
	Db  *redis.Client
	key string
}

// New создаёт подключение к Redis и проверяет его доступность.
func New(ctx context.Context, cfg config.RedisConnection, key string) (*Slot, error) {
	const op = "storage.New"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Slot{Db: db, key: key}, nil
}

// Load читает и декодирует всю коллекцию пользователей из слота.
// Отсутствующий ключ означает пустую коллекцию, а не ошибку.
func (s *Slot) Load(ctx context.Context) ([]models.User, error) {
	const op = "storage.Load"
	val, err := s.Db.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var users []models.User
	if err = json.Unmarshal([]byte(val), &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Save сериализует коллекцию и перезаписывает ключ целиком, без TTL.
func (s *Slot) Save(ctx context.Context, users []models.User) error {
	const op = "storage.Save"
	jsonData, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.Db.Set(ctx, s.key, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Reset удаляет ключ слота.
func (s *Slot) Reset(ctx context.Context) error {
	return s.Db.Del(ctx, s.key).Err()
}
