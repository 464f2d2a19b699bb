package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// GetFiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	year := t.Year()

	var startYear int
	if t.Month() >= time.April {
		startYear = year
	} else {
		startYear = year - 1
	}

	return fmt.Sprintf("%02d-%02d", startYear%100, (startYear+1)%100)
}

// formatDocumentNumber constructs a document number from its components.
// "-" is used as separator so reference numbers containing "/" don't clash.
func formatDocumentNumber(prefix, fiscalYear string, sequence int) string {
	return fmt.Sprintf("SLR-%s-%s-%03d", prefix, fiscalYear, sequence)
}

// GenerateDocumentNumber creates the next number for a document collection.
// Format: SLR-{prefix}-{fiscal_year}-{sequence}
//   - prefix: document kind, e.g. "QTN", "SO", "SHP", "DC"
//   - fiscal_year: Indian fiscal year (Apr-Mar), e.g. "25-26"
//   - sequence: 3-digit zero-padded, per kind per fiscal year
func GenerateDocumentNumber(app *pocketbase.PocketBase, collection, numberField, prefix string, now time.Time) string {
	fiscalYear := GetFiscalYear(now)
	numberPrefix := fmt.Sprintf("SLR-%s-%s-", prefix, fiscalYear)

	existing, err := app.FindRecordsByFilter(
		collection,
		fmt.Sprintf("%s ~ {:prefix}", numberField),
		"",
		0,
		0,
		map[string]any{"prefix": numberPrefix + "%"},
	)
	if err != nil {
		// Collection empty or not yet created: start at 1.
		existing = nil
	}

	return formatDocumentNumber(prefix, fiscalYear, len(existing)+1)
}
