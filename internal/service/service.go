// Package service реализует проверку наборов номеров карт: отбор некорректных
// номеров и определение платёжных систем, выпустивших их.
package service

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/mmeshcher/cardcheck/internal/model"
	"github.com/mmeshcher/cardcheck/internal/validation"
)

// CardError описывает ошибку обработки одного номера из набора.
type CardError struct {
	Index  int
	Number string
	Err    error
}

func (e *CardError) Error() string {
	return fmt.Sprintf("card #%d (%s): %v", e.Index, e.Number, e.Err)
}

func (e *CardError) Unwrap() error {
	return e.Err
}

// FindInvalidCards возвращает номера, не прошедшие проверку по алгоритму Луна,
// в исходном порядке. Некорректные последовательности пропускаются,
// а ошибки по ним объединяются в возвращаемую ошибку.
func FindInvalidCards(batch []model.Digits) ([]model.Digits, error) {
	var (
		invalid []model.Digits
		errs    []error
	)

	for i, card := range batch {
		ok, err := validation.Luhn(card)
		if err != nil {
			errs = append(errs, &CardError{Index: i, Number: card.String(), Err: err})
			continue
		}
		if !ok {
			invalid = append(invalid, card.Clone())
		}
	}

	return invalid, errors.Join(errs...)
}

// IdentifyIssuers определяет платёжные системы по первой цифре номеров.
func IdentifyIssuers(cards []model.Digits) (model.IssuerSet, error) {
	var (
		set  model.IssuerSet
		seen = make(map[model.Issuer]struct{})
		errs []error
	)

	for i, card := range cards {
		if err := validation.CheckDigits(card); err != nil {
			errs = append(errs, &CardError{Index: i, Number: card.String(), Err: err})
			continue
		}

		first, _ := card.First()
		issuer, ok := model.IssuerByDigit(first)
		if !ok {
			set.Unrecognized = append(set.Unrecognized, card.Clone())
			continue
		}
		if _, dup := seen[issuer]; dup {
			continue
		}
		seen[issuer] = struct{}{}
		set.Issuers = append(set.Issuers, issuer)
	}

	return set, errors.Join(errs...)
}

// Service выполняет полную проверку набора номеров и журналирует результат.
type Service struct {
	logger *zap.Logger
}

// NewService создаёт новый сервис. При nil-логгере используется zap.NewNop.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Inspect проверяет набор номеров и возвращает итоговый отчёт.
func (s *Service) Inspect(batch []model.Digits) *model.Report {
	return s.inspect(batch, nil, nil)
}

// InspectNumbers разбирает текстовые номера и проверяет их.
// Индексы в отчёте соответствуют позициям в numbers.
func (s *Service) InspectNumbers(numbers []string) *model.Report {
	batch := make([]model.Digits, 0, len(numbers))
	positions := make([]int, 0, len(numbers))
	var rejected []model.Rejection

	for i, n := range numbers {
		digits, err := validation.ParseDigits(n)
		if err != nil {
			rejected = append(rejected, model.Rejection{Index: i, Number: n, Err: err})
			continue
		}
		batch = append(batch, digits)
		positions = append(positions, i)
	}

	return s.inspect(batch, positions, rejected)
}

func (s *Service) inspect(batch []model.Digits, positions []int, rejected []model.Rejection) *model.Report {
	report := &model.Report{
		Total:    len(batch) + len(rejected),
		Rejected: rejected,
	}

	invalid, err := FindInvalidCards(batch)
	report.Invalid = invalid
	report.Rejected = append(report.Rejected, rejections(err, positions)...)

	// Номера из invalid уже прошли проверку формата, поэтому ошибок здесь нет.
	issuers, err := IdentifyIssuers(invalid)
	if err != nil {
		s.logger.Error("identify issuers failed", zap.Error(err))
	}
	report.Issuers = issuers.Issuers
	report.Unrecognized = issuers.Unrecognized

	report.Valid = report.Total - len(report.Invalid) - len(report.Rejected)
	sortRejections(report.Rejected)

	for _, r := range report.Rejected {
		s.logger.Warn("card rejected",
			zap.Int("index", r.Index),
			zap.String("number", r.Number),
			zap.Error(r.Err),
		)
	}
	for _, card := range report.Unrecognized {
		s.logger.Warn("issuer not recognized", zap.String("number", card.String()))
	}

	s.logger.Debug("batch inspected",
		zap.Int("total", report.Total),
		zap.Int("valid", report.Valid),
		zap.Int("invalid", len(report.Invalid)),
		zap.Int("rejected", len(report.Rejected)),
		zap.Int("issuers", len(report.Issuers)),
	)

	return report
}

// rejections извлекает ошибки по отдельным номерам и переводит их индексы
// в позиции исходного набора.
func rejections(err error, positions []int) []model.Rejection {
	if err == nil {
		return nil
	}

	var out []model.Rejection
	for _, e := range unwrapJoined(err) {
		var cardErr *CardError
		if !errors.As(e, &cardErr) {
			continue
		}
		index := cardErr.Index
		if positions != nil {
			index = positions[index]
		}
		out = append(out, model.Rejection{Index: index, Number: cardErr.Number, Err: cardErr.Err})
	}
	return out
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func sortRejections(rs []model.Rejection) {
	slices.SortStableFunc(rs, func(a, b model.Rejection) int {
		return cmp.Compare(a.Index, b.Index)
	})
}
