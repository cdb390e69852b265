// Package checks содержит чистые функции проверки пользовательского ввода:
// проверку формы email и классификатор надёжности пароля.
//
// Функции не имеют побочных эффектов и не обращаются к хранилищу,
// поэтому используются как в сервисах, так и напрямую в тестах.
package checks

import (
	"regexp"
	"unicode"
)

// Strength — итоговая категория надёжности пароля.
type Strength string

const (
	// StrengthWeak — слабый пароль, регистрация с ним отклоняется.
	StrengthWeak Strength = "weak"
	// StrengthMedium — средний пароль.
	StrengthMedium Strength = "medium"
	// StrengthStrong — надёжный пароль.
	StrengthStrong Strength = "strong"
)

// Нестрогий шаблон: непустая локальная часть, один символ @,
// домен с точкой. Полная RFC-валидация не требуется.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmail сообщает, похожа ли строка на адрес электронной почты.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PasswordStrength классифицирует пароль по пяти бинарным критериям:
// длина не менее 8 символов, наличие строчной буквы, заглавной буквы,
// цифры и специального символа.
//
// Пароль короче 6 символов — всегда StrengthWeak. Иначе по сумме
// выполненных критериев: не более 2 — StrengthWeak, не более 4 —
// StrengthMedium, все 5 — StrengthStrong.
func PasswordStrength(s string) Strength {
	runes := []rune(s)
	if len(runes) < 6 {
		return StrengthWeak
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	score := 0
	if len(runes) >= 8 {
		score++
	}
	for _, ok := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return StrengthWeak
	case score <= 4:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
