// Package report форматирует итог проверки номеров для вывода пользователю.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmeshcher/cardcheck/internal/model"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown report format")

type rejectionJSON struct {
	Index  int    `json:"index"`
	Number string `json:"number"`
	Error  string `json:"error"`
}

type reportJSON struct {
	Total        int             `json:"total"`
	Valid        int             `json:"valid"`
	Invalid      []string        `json:"invalid"`
	Issuers      []model.Issuer  `json:"issuers"`
	Unrecognized []string        `json:"unrecognized"`
	Rejected     []rejectionJSON `json:"rejected"`
}

// Write выводит отчёт в w в указанном формате.
func Write(w io.Writer, format string, r *model.Report) error {
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		return writeJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, r *model.Report) error {
	out := reportJSON{
		Total:        r.Total,
		Valid:        r.Valid,
		Invalid:      numbers(r.Invalid),
		Issuers:      r.Issuers,
		Unrecognized: numbers(r.Unrecognized),
		Rejected:     make([]rejectionJSON, 0, len(r.Rejected)),
	}
	if out.Issuers == nil {
		out.Issuers = []model.Issuer{}
	}
	for _, rj := range r.Rejected {
		out.Rejected = append(out.Rejected, rejectionJSON{
			Index:  rj.Index,
			Number: rj.Number,
			Error:  rj.Err.Error(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func writeText(w io.Writer, r *model.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Checked: %d, valid: %d, invalid: %d, rejected: %d\n",
		r.Total, r.Valid, len(r.Invalid), len(r.Rejected))

	if len(r.Invalid) > 0 {
		b.WriteString("Invalid cards:\n")
		for _, card := range r.Invalid {
			fmt.Fprintf(&b, "  %s\n", card)
		}
	}

	issuers := make([]string, len(r.Issuers))
	for i, is := range r.Issuers {
		issuers[i] = string(is)
	}
	if len(issuers) == 0 {
		b.WriteString("Issuers: none\n")
	} else {
		fmt.Fprintf(&b, "Issuers: %s\n", strings.Join(issuers, ", "))
	}

	if len(r.Unrecognized) > 0 {
		b.WriteString("Unrecognized issuer:\n")
		for _, card := range r.Unrecognized {
			fmt.Fprintf(&b, "  %s\n", card)
		}
	}

	if len(r.Rejected) > 0 {
		b.WriteString("Rejected:\n")
		for _, rj := range r.Rejected {
			fmt.Fprintf(&b, "  #%d %q: %v\n", rj.Index, rj.Number, rj.Err)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func numbers(cards []model.Digits) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = card.String()
	}
	return out
}
