// Package sample содержит демонстрационный набор номеров карт.
package sample

import "github.com/mmeshcher/cardcheck/internal/model"

var (
	valid = []model.Digits{
		{4, 5, 3, 9, 6, 7, 7, 9, 0, 8, 0, 1, 6, 8, 0, 8},
		{5, 5, 3, 5, 7, 6, 6, 7, 6, 8, 7, 5, 1, 4, 3, 9},
		{3, 7, 1, 6, 1, 2, 0, 1, 9, 9, 8, 5, 2, 3, 6},
		{6, 0, 1, 1, 1, 4, 4, 3, 4, 0, 6, 8, 2, 9, 0, 5},
		{4, 5, 3, 9, 4, 0, 4, 9, 6, 7, 8, 6, 9, 6, 6, 6},
	}

	invalid = []model.Digits{
		{4, 5, 3, 2, 7, 7, 8, 7, 7, 1, 0, 9, 1, 7, 9, 5},
		{5, 7, 9, 5, 5, 9, 3, 3, 9, 2, 1, 3, 4, 6, 4, 3},
		{3, 7, 5, 7, 9, 6, 0, 8, 4, 4, 5, 9, 9, 1, 4},
		{6, 0, 1, 1, 1, 2, 7, 9, 6, 1, 7, 7, 7, 9, 3, 5},
		{5, 3, 8, 2, 0, 1, 9, 7, 7, 2, 8, 8, 3, 8, 5, 4},
	}

	// Заранее не известно, корректны ли эти номера.
	mystery = []model.Digits{
		{3, 4, 4, 8, 0, 1, 9, 6, 8, 3, 0, 5, 4, 1, 4},
		{5, 4, 6, 6, 1, 0, 0, 8, 6, 1, 6, 2, 0, 2, 3, 9},
		{6, 0, 1, 1, 3, 7, 7, 0, 2, 0, 9, 6, 2, 6, 5, 6, 2, 0, 3},
		{4, 9, 2, 9, 8, 7, 7, 1, 6, 9, 2, 1, 7, 0, 9, 3},
		{4, 9, 1, 3, 5, 4, 0, 4, 6, 3, 0, 7, 2, 5, 2, 3},
	}
)

// Valid возвращает копию заведомо корректных номеров.
func Valid() []model.Digits { return cloneAll(valid) }

// Invalid возвращает копию заведомо некорректных номеров.
func Invalid() []model.Digits { return cloneAll(invalid) }

// Mystery возвращает копию номеров, корректность которых нужно определить.
func Mystery() []model.Digits { return cloneAll(mystery) }

// Batch возвращает все демонстрационные номера: корректные, некорректные и неизвестные.
func Batch() []model.Digits {
	out := make([]model.Digits, 0, len(valid)+len(invalid)+len(mystery))
	out = append(out, Valid()...)
	out = append(out, Invalid()...)
	out = append(out, Mystery()...)
	return out
}

func cloneAll(src []model.Digits) []model.Digits {
	out := make([]model.Digits, len(src))
	for i, d := range src {
		out[i] = d.Clone()
	}
	return out
}
