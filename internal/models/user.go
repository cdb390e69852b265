// Package models содержит доменную модель пользователя сервиса,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура сериализуется в JSON при сохранении коллекции в слот хранилища.
package models

import "time"

// User представляет зарегистрированного пользователя сервиса.
type User struct {
	UID          string    `json:"uid"`           // Уникальный идентификатор пользователя
	Email        string    `json:"email"`         // Электронная почта (уникальная, сравнение точное)
	FirstName    string    `json:"first_name"`    // Имя
	LastName     string    `json:"last_name"`     // Фамилия
	PasswordHash string    `json:"password_hash"` // Хэш пароля пользователя
	CreatedAt    time.Time `json:"created_at"`    // Дата создания записи (RFC 3339)
}
