package source

import (
	"context"
	"fmt"
	"strings"
)

// fetchSheetRecords reads the registration sheet through the Sheets API. The
// first row is the header; later rows are mapped by header name so column
// order in the sheet does not matter.
func (c *Client) fetchSheetRecords(ctx context.Context) ([]Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	sheetRange := c.cfg.SheetName + "!A:Z"
	resp, err := c.sheets.Spreadsheets.Values.Get(c.cfg.SpreadsheetID, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet values: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = fmt.Sprint(cell)
	}
	columns := headerColumns(header)

	records := make([]Record, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		records = append(records, recordFromRow(columns, cells))
	}

	return records, nil
}

// headerColumns maps normalized header names to column indexes. The live sheet
// has a few quirky headers ("Event " with a trailing space, "extra event",
// "Bow Sharing"), so names are compared lowercased with spaces stripped.
func headerColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
		if _, ok := columns[key]; !ok {
			columns[key] = i
		}
	}
	return columns
}

func recordFromRow(columns map[string]int, row []string) Record {
	cell := func(key string) string {
		i, ok := columns[key]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	return Record{
		Name:       cell("name"),
		DOB:        cell("dob"),
		Gender:     cell("gender"),
		Contact:    StringOrNumber(cell("contact")),
		Club:       cell("club"),
		Event:      cell("event"),
		ExtraEvent: cell("extraevent"),
		BowSharing: cell("bowsharing"),
	}
}
