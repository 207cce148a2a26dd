package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

func validPracticeRequest() practiceEntryRequest {
	return practiceEntryRequest{
		PracticeType:  "Driving Range",
		Location:      "TopGolf Charlotte",
		BallUsed:      "Titleist Pro V1",
		AvgTempF:      78,
		FeelsLikeF:    81,
		UVIndex:       6.5,
		WindSpeedMPH:  8,
		WindGustMPH:   12.5,
		WindDirection: "nw",
		HumidityPct:   55,
		AQI:           42,
	}
}

func TestCreatePracticeEntry(t *testing.T) {
	practice := &fakePracticeLog{}
	h := newTestHandler(&fakeSwingLog{}, practice)

	c, rec := jsonRequest(t, http.MethodPost, "/gc/practice", validPracticeRequest())
	require.NoError(t, h.CreatePracticeEntry(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, practice.entries, 1)
	got := practice.entries[0]
	require.Equal(t, "2024-05-01", got.Date)
	require.Equal(t, "10:30", got.StartTime)
	require.Equal(t, "NW", got.WindDirection)
	require.Equal(t, "Titleist Pro V1", *got.BallUsed)
	require.Nil(t, got.Comments)
}

func TestCreatePracticeEntryMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*practiceEntryRequest)
	}{
		{"practice type", func(r *practiceEntryRequest) { r.PracticeType = "" }},
		{"location", func(r *practiceEntryRequest) { r.Location = "  " }},
		{"wind direction", func(r *practiceEntryRequest) { r.WindDirection = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			practice := &fakePracticeLog{}
			h := newTestHandler(&fakeSwingLog{}, practice)

			req := validPracticeRequest()
			tc.mutate(&req)

			c, _ := jsonRequest(t, http.MethodPost, "/gc/practice", req)
			err := h.CreatePracticeEntry(c)
			require.Equal(t, http.StatusBadRequest, httpStatus(t, err))
			require.Empty(t, practice.entries)
		})
	}
}

func TestCreatePracticeEntryRangeChecks(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*practiceEntryRequest)
	}{
		{"temp too low", func(r *practiceEntryRequest) { r.AvgTempF = 20 }},
		{"feels like too high", func(r *practiceEntryRequest) { r.FeelsLikeF = 130 }},
		{"uv out of range", func(r *practiceEntryRequest) { r.UVIndex = 12.5 }},
		{"negative wind", func(r *practiceEntryRequest) { r.WindSpeedMPH = -1 }},
		{"humidity over 100", func(r *practiceEntryRequest) { r.HumidityPct = 110 }},
		{"aqi over 500", func(r *practiceEntryRequest) { r.AQI = 600 }},
		{"unknown practice type", func(r *practiceEntryRequest) { r.PracticeType = "Mini Golf" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			practice := &fakePracticeLog{}
			h := newTestHandler(&fakeSwingLog{}, practice)

			req := validPracticeRequest()
			tc.mutate(&req)

			c, _ := jsonRequest(t, http.MethodPost, "/gc/practice", req)
			err := h.CreatePracticeEntry(c)
			require.Equal(t, http.StatusBadRequest, httpStatus(t, err))
			require.Empty(t, practice.entries)
		})
	}
}

func TestListPracticeEntries(t *testing.T) {
	practice := &fakePracticeLog{entries: []models.PracticeEntry{
		{ID: 1, Date: "2024-05-01", PracticeType: "Driving Range", Location: "TopGolf"},
		{ID: 2, Date: "2024-05-02", PracticeType: "9 Holes", Location: "Pinehurst"},
	}}
	h := newTestHandler(&fakeSwingLog{}, practice)

	c, rec := jsonRequest(t, http.MethodGet, "/gc/practice", nil)
	require.NoError(t, h.ListPracticeEntries(c))

	var got []models.PracticeEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "TopGolf", got[0].Location)
}

func TestListPracticeEntriesEmpty(t *testing.T) {
	h := newTestHandler(&fakeSwingLog{}, &fakePracticeLog{})

	c, rec := jsonRequest(t, http.MethodGet, "/gc/practice", nil)
	require.NoError(t, h.ListPracticeEntries(c))
	require.JSONEq(t, `[]`, rec.Body.String())
}
