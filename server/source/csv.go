package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/uvaheesara/archery-tools/server/entries"
)

// IndividualClub is the club assigned to CSV rows with a blank club cell.
// CSV uploads historically default to "Individual" while fetched rows without
// a club end up under entries.UnknownClub; both sentinels are kept.
const IndividualClub = "Individual"

// ParseCSV parses an uploaded registration CSV. The first line is the header;
// rows without a name are dropped, rows with a blank club default to
// IndividualClub and unrecognized genders fall back to Male.
func ParseCSV(r io.Reader) ([]entries.Participant, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := headerColumns(header)

	var participants []entries.Participant
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		record := recordFromRow(columns, row)
		if record.Club == "" || strings.TrimSpace(record.Club) == "" {
			record.Club = IndividualClub
		}

		p, ok := record.Participant()
		if !ok {
			continue
		}
		participants = append(participants, p)
	}

	return participants, nil
}
