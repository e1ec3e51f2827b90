package source

import (
	"encoding/json"
	"strings"

	"github.com/uvaheesara/archery-tools/server/entries"
)

// Record is one raw row of the registration sheet, keys as received. All
// values stay strings; defaulting and trimming happen when the record is
// turned into a Participant.
type Record struct {
	Name       string         `json:"Name"`
	DOB        string         `json:"DOB"`
	Gender     string         `json:"Gender"`
	Contact    StringOrNumber `json:"Contact"`
	Club       string         `json:"Club"`
	Event      string         `json:"Event"`
	ExtraEvent string         `json:"ExtraEvent"`
	BowSharing string         `json:"BowSharing"`
}

// Valid reports whether a fetched row has a usable shape. The sheet sometimes
// carries half-filled rows; anything without a recognized gender is dropped
// before import.
func (r Record) Valid() bool {
	gender := strings.TrimSpace(r.Gender)
	return gender == string(entries.GenderMale) || gender == string(entries.GenderFemale)
}

// Participant converts the raw row, reporting ok=false for rows without a
// name.
func (r Record) Participant() (entries.Participant, bool) {
	return entries.New(r.Name, r.DOB, r.Gender, r.Contact.String(), r.Club, r.Event, r.ExtraEvent, r.BowSharing)
}

// StringOrNumber tolerates the sheet's habit of returning phone numbers either
// as strings or as bare JSON numbers.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = StringOrNumber(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = StringOrNumber(num.String())
	return nil
}

func (s StringOrNumber) String() string {
	return string(s)
}

// TargetAssignment is one row of the target allocation published for a
// tournament day, keys as the sheet exports them.
type TargetAssignment struct {
	TargetNo int    `json:"Target No"`
	Assign   string `json:"Assign"`
	Name     string `json:"Name"`
	Gender   string `json:"Gender"`
	Club     string `json:"Club"`
	ComNo    string `json:"Com No"`
}
