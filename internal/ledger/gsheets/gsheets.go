package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ekuzmichev/sheetbet/internal/ledger"
)

// Client implements ledger.Store on top of a single Google spreadsheet whose
// worksheets act as tables.
type Client struct {
	srv           *sheets.Service
	spreadsheetID string
}

func New(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("can't build sheets service: %w", err)
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) FetchHeader(ctx context.Context, table string) ([]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, table+"!1:1").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch header %s: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	header := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		header = append(header, fmt.Sprint(cell))
	}
	return header, nil
}

func (c *Client) FetchAllRows(ctx context.Context, table string) ([]ledger.Record, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, table).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch rows %s: %w", table, err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}
	header := resp.Values[0]
	records := make([]ledger.Record, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		rec := make(ledger.Record, len(header))
		for i, col := range header {
			name := fmt.Sprint(col)
			if i < len(row) {
				rec[name] = fmt.Sprint(row[i])
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *Client) AppendRow(ctx context.Context, table string, values []any) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, table, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row %s: %w", table, err)
	}
	return nil
}

func (c *Client) WriteCell(ctx context.Context, table string, row int, column string, value any) error {
	header, err := c.FetchHeader(ctx, table)
	if err != nil {
		return err
	}
	colIdx := -1
	for i, h := range header {
		if h == column {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		// Additive schema evolution: an unknown column is appended after the
		// last existing header, never inserted between existing ones.
		colIdx = len(header)
		headerCell := fmt.Sprintf("%s!%s1", table, columnLetter(colIdx))
		vr := &sheets.ValueRange{Values: [][]interface{}{{column}}}
		if _, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, headerCell, vr).
			ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			return fmt.Errorf("extend header %s with %s: %w", table, column, err)
		}
	}
	cell := fmt.Sprintf("%s!%s%d", table, columnLetter(colIdx), row)
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	if _, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, cell, vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write cell %s: %w", cell, err)
	}
	return nil
}

func (c *Client) DeleteRow(ctx context.Context, table string, row int) error {
	sheetID, err := c.sheetID(ctx, table)
	if err != nil {
		return err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}
	if _, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete row %d from %s: %w", row, table, err)
	}
	return nil
}

func (c *Client) ClearTable(ctx context.Context, table string) error {
	_, err := c.srv.Spreadsheets.Values.Clear(c.spreadsheetID, table, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear table %s: %w", table, err)
	}
	return nil
}

func (c *Client) sheetID(ctx context.Context, table string) (int64, error) {
	ss, err := c.srv.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("lookup sheet id for %s: %w", table, err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == table {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("worksheet %q not found", table)
}

// columnLetter converts a zero-based column index to A1 notation (Z wraps to AA).
func columnLetter(idx int) string {
	letters := ""
	for idx >= 0 {
		letters = string(rune('A'+idx%26)) + letters
		idx = idx/26 - 1
	}
	return letters
}
