package repository

import "errors"

// Ошибки уровня хранилища учётных записей.
var (
	// ErrEmailTaken возвращается, когда email уже занят другой записью.
	ErrEmailTaken = errors.New("email already taken")
	// ErrUserNotFound возвращается, когда запись не найдена.
	ErrUserNotFound = errors.New("user not found")
)
