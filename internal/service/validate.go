package service

import (
	"fmt"
	"regexp"
	"time"

	"gstbill/internal/domain"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
)

// validateGSTIN checks the 15-character GSTIN format. Empty is allowed:
// unregistered parties simply have no GSTIN.
func validateGSTIN(gstin string) error {
	if gstin == "" {
		return nil
	}
	if !gstinPattern.MatchString(gstin) {
		return domain.ErrInvalidGSTIN
	}
	return nil
}

// validatePAN checks the 10-character PAN format. Empty is allowed.
func validatePAN(pan string) error {
	if pan == "" {
		return nil
	}
	if !panPattern.MatchString(pan) {
		return domain.ErrInvalidPAN
	}
	return nil
}

// validateLines enforces business-rule bounds the calculator does not:
// at least one line, and discounts within 0..100.
func validateLines(lines []LineInput) error {
	if len(lines) == 0 {
		return domain.ErrNoLines
	}
	for _, l := range lines {
		if l.DiscountPercent < 0 || l.DiscountPercent > 100 {
			return domain.ErrInvalidDiscount
		}
	}
	return nil
}

// fiscalYear returns the Indian fiscal year label for a date, e.g. "2025-26"
// for any date from 2025-04-01 through 2026-03-31.
func fiscalYear(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
