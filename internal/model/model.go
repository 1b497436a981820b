// Package model содержит доменные сущности сервиса проверки номеров карт.
package model

import "strings"

// Digits представляет номер карты как последовательность цифр, старшая цифра первая.
type Digits []int

// String возвращает номер в текстовом виде. Значения вне диапазона 0..9 выводятся как '?'.
func (d Digits) String() string {
	var b strings.Builder
	b.Grow(len(d))
	for _, v := range d {
		if v < 0 || v > 9 {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

// Clone возвращает независимую копию последовательности.
func (d Digits) Clone() Digits {
	if d == nil {
		return nil
	}
	out := make(Digits, len(d))
	copy(out, d)
	return out
}

// First возвращает первую (старшую) цифру номера.
func (d Digits) First() (int, bool) {
	if len(d) == 0 {
		return 0, false
	}
	return d[0], true
}

// Issuer описывает платёжную систему, выпустившую карту.
type Issuer string

const (
	IssuerAmex       Issuer = "Amex"
	IssuerVisa       Issuer = "Visa"
	IssuerMastercard Issuer = "Mastercard"
	IssuerDiscover   Issuer = "Discover"
)

// IssuerByDigit определяет платёжную систему по первой цифре номера.
func IssuerByDigit(d int) (Issuer, bool) {
	switch d {
	case 3:
		return IssuerAmex, true
	case 4:
		return IssuerVisa, true
	case 5:
		return IssuerMastercard, true
	case 6:
		return IssuerDiscover, true
	default:
		return "", false
	}
}

// IssuerSet содержит результат определения платёжных систем по набору номеров.
type IssuerSet struct {
	// Issuers в порядке первого появления, без повторов.
	Issuers []Issuer
	// Unrecognized содержит номера, первая цифра которых не соответствует ни одной системе.
	Unrecognized []Digits
}

// Rejection описывает некорректный входной номер и его позицию в исходном наборе.
type Rejection struct {
	Index  int
	Number string
	Err    error
}

// Report содержит итог проверки набора номеров.
type Report struct {
	Total        int
	Valid        int
	Invalid      []Digits
	Issuers      []Issuer
	Unrecognized []Digits
	Rejected     []Rejection
}
