package ledger

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// Tables backing the economy. Header lives on row 1, data starts on row 2.
const (
	TableUsers      = "Users"
	TableLoans      = "Logs_Loan"
	TableMilestones = "BettingRewards"
	TableRewardLog  = "Logs_BetRewards"
	TableAviatorLog = "Logs_Aviator"
	TableSpinLog    = "Logs_Spin"
	TableRPSLog     = "Logs_RPS"
	TableAdmins     = "Admins"
)

var ErrSchemaMissing = errors.New("required columns missing from table")

// Record is a single data row keyed by column name. The backing store has no
// schema, so every value arrives as text and is parsed leniently by callers.
type Record map[string]string

// Store is the narrow contract of the tabular backend. Row indexes are 1-based
// sheet rows: the header is row 1, the first data record is row 2.
type Store interface {
	FetchHeader(ctx context.Context, table string) ([]string, error)
	FetchAllRows(ctx context.Context, table string) ([]Record, error)
	AppendRow(ctx context.Context, table string, values []any) error
	WriteCell(ctx context.Context, table string, row int, column string, value any) error
	DeleteRow(ctx context.Context, table string, row int) error
	ClearTable(ctx context.Context, table string) error
}

// RowIndex converts a FetchAllRows slice position to a sheet row number.
func RowIndex(recordPos int) int {
	return recordPos + 2
}

// Int parses a numeric cell. Sheets hand back commas, stray spaces and empty
// strings, all of which collapse to zero rather than failing the operation.
func (r Record) Int(column string) int {
	raw := strings.ReplaceAll(strings.TrimSpace(r[column]), ",", "")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

// Float parses a fractional cell, zero on anything unparseable.
func (r Record) Float(column string) float64 {
	raw := strings.ReplaceAll(strings.TrimSpace(r[column]), ",", "")
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

// Bool parses checkbox-style cells ("TRUE", "true", "1", "yes").
func (r Record) Bool(column string) bool {
	switch strings.ToLower(strings.TrimSpace(r[column])) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

func (r Record) Str(column string) string {
	return strings.TrimSpace(r[column])
}

// MissingColumns reports which of the wanted columns are absent from a header.
func MissingColumns(header []string, wanted ...string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}
	var missing []string
	for _, w := range wanted {
		if _, ok := present[w]; !ok {
			missing = append(missing, w)
		}
	}
	return missing
}
