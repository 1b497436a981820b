// Package validation содержит функции валидации входных данных.
package validation

import (
	"errors"
	"fmt"

	"github.com/mmeshcher/cardcheck/internal/model"
)

var (
	ErrEmptyNumber  = errors.New("number is empty")
	ErrTooShort     = errors.New("number must contain at least two digits")
	ErrInvalidDigit = errors.New("number contains invalid digit")
)

// ParseDigits преобразует текстовый номер в последовательность цифр.
func ParseDigits(number string) (model.Digits, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}

	digits := make(model.Digits, 0, len(number))
	for i := 0; i < len(number); i++ {
		ch := number[i]
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, ch, i)
		}
		digits = append(digits, int(ch-'0'))
	}

	return digits, nil
}

// CheckDigits проверяет, что последовательность непуста и состоит только из цифр 0..9.
func CheckDigits(digits model.Digits) error {
	if len(digits) == 0 {
		return ErrEmptyNumber
	}
	for i, v := range digits {
		if v < 0 || v > 9 {
			return fmt.Errorf("%w: %d at position %d", ErrInvalidDigit, v, i)
		}
	}
	return nil
}

// Luhn проверяет корректность номера по алгоритму Луна.
// Последовательность не изменяется, обход идёт по индексам справа налево.
func Luhn(digits model.Digits) (bool, error) {
	if err := CheckDigits(digits); err != nil {
		return false, err
	}
	if len(digits) < 2 {
		return false, ErrTooShort
	}

	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		digit := digits[i]
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0, nil
}
