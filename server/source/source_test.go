package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uvaheesara/archery-tools/internal/xtime"
	"github.com/uvaheesara/archery-tools/server/entries"
)

func testConfig(url string) Config {
	return Config{
		Type:       TypeAppsScript,
		URL:        url,
		Every:      xtime.Duration(time.Millisecond),
		Burst:      10,
		MaxRetries: 3,
	}
}

func TestRecordContactStringOrNumber(t *testing.T) {
	var records []Record
	err := json.Unmarshal([]byte(`[
		{"Name": "Amara", "Gender": "Female", "Contact": "0771234567"},
		{"Name": "Nimal", "Gender": "Male", "Contact": 771234567}
	]`), &records)
	require.NoError(t, err)
	assert.Equal(t, "0771234567", records[0].Contact.String())
	assert.Equal(t, "771234567", records[1].Contact.String())
}

func TestParticipantsDropsInvalidRows(t *testing.T) {
	records := []Record{
		{Name: "Amara", Gender: "Female", Event: "Open Recurve"},
		{Name: "No Gender", Gender: "", Event: "Open Recurve"},
		{Name: "   ", Gender: "Male", Event: "Open Recurve"},
		{Name: "Nimal", Gender: "Male", Event: "U14 Recurve"},
	}

	participants := Participants(context.Background(), records)
	require.Len(t, participants, 2)
	assert.Equal(t, "Amara", participants[0].Name)
	assert.Equal(t, "Nimal", participants[1].Name)
}

func TestFetchParticipants(t *testing.T) {
	var gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-API-Key")
		_, _ = w.Write([]byte(`[
			{"Name": " Amara ", "DOB": "19/01/2012", "Gender": "Female", "Contact": 12345, "Club": "Kandy", "Event": "U14 Recurve"}
		]`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = "secret"
	client, err := New(cfg, srv.Client())
	require.NoError(t, err)

	participants, err := client.FetchParticipants(context.Background())
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "secret", gotAPIKey)
	assert.Equal(t, entries.Participant{
		Name:         "Amara",
		DateOfBirth:  "19/01/2012",
		Gender:       entries.GenderFemale,
		Contact:      "12345",
		Club:         "Kandy",
		PrimaryEvent: "U14 Recurve",
	}, participants[0])
}

func TestFetchParticipantsRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := New(testConfig(srv.URL), srv.Client())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = client.FetchParticipants(ctx)
	require.Error(t, err)
	assert.GreaterOrEqual(t, calls, 1)
}

func TestFetchParticipantsBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	client, err := New(testConfig(srv.URL), srv.Client())
	require.NoError(t, err)

	_, err = client.FetchParticipants(context.Background())
	assert.Error(t, err)
}

func TestFetchTargetAssignments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "day2", r.URL.Query().Get("endpoint"))
		_, _ = w.Write([]byte(`{
			"U14 Recurve": [
				{"Target No": 3, "Assign": "A", "Name": "Amara", "Gender": "Female", "Club": "Kandy", "Com No": "14"}
			]
		}`))
	}))
	defer srv.Close()

	client, err := New(testConfig(srv.URL), srv.Client())
	require.NoError(t, err)

	assignments, err := client.FetchTargetAssignments(context.Background(), "day2")
	require.NoError(t, err)
	require.Len(t, assignments["U14 Recurve"], 1)
	assert.Equal(t, 3, assignments["U14 Recurve"][0].TargetNo)
	assert.Equal(t, "Amara", assignments["U14 Recurve"][0].Name)
}

func TestParseCSV(t *testing.T) {
	data := strings.Join([]string{
		`Name,DOB,Gender,Contact,Club,Event ,extra event,Bow Sharing`,
		`Amara,19/01/2012,Female,0771234567,Kandy,U14 Recurve,,`,
		`Nimal,01/01/1990,Male,0770000000,,Open Recurve,Compound Open,Yes`,
		`,01/01/1990,Male,,,Open Recurve,,`,
	}, "\n")

	participants, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, participants, 2)

	assert.Equal(t, "Amara", participants[0].Name)
	assert.Equal(t, "Kandy", participants[0].Club)
	assert.Equal(t, "U14 Recurve", participants[0].PrimaryEvent)

	// Blank club on the CSV path defaults to Individual.
	assert.Equal(t, IndividualClub, participants[1].Club)
	assert.Equal(t, "Compound Open", participants[1].ExtraEvent)
	assert.Equal(t, "Yes", participants[1].BowSharing)
}

func TestParseCSVEmpty(t *testing.T) {
	participants, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestHeaderColumns(t *testing.T) {
	columns := headerColumns([]string{"Name", "DOB", "Gender", "Event ", "extra event", "Bow Sharing"})
	assert.Equal(t, 0, columns["name"])
	assert.Equal(t, 3, columns["event"])
	assert.Equal(t, 4, columns["extraevent"])
	assert.Equal(t, 5, columns["bowsharing"])
}
