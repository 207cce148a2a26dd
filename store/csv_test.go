package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCSVSwingLogRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log := NewCSVSwingLog(dir)

	first := &models.Swing{
		SessionID:    "topgolfcharlotte0501",
		PracticeType: "Driving Range",
		Date:         "2024-05-01",
		Time:         "10:30:00",
		Location:     "TopGolf Charlotte",
		Club:         "Driver",
		ShotNumber:   1,
		Direction:    "Straight",
		Feel:         strPtr("Good"),
		Notes:        strPtr("w/ new grip, felt loose"),
		HoleYardage:  intPtr(220),
	}
	require.NoError(t, log.Append(ctx, first))

	second := &models.Swing{
		SessionID:    "pinehurst0502",
		PracticeType: "9 Holes",
		Date:         "2024-05-02",
		Time:         "09:15:30",
		Location:     "Pinehurst",
		Club:         "7 Iron",
		ShotNumber:   1,
		Direction:    "Left",
		HoleNumber:   intPtr(3),
		ShotOnHole:   intPtr(2),
		HoleYardage:  intPtr(410),
		Par:          intPtr(4),
		TeeColor:     strPtr("Blue"),
	}
	require.NoError(t, log.Append(ctx, second))

	swings, err := log.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, swings, 2)

	require.Equal(t, 1, swings[0].ID)
	require.Equal(t, "topgolfcharlotte0501", swings[0].SessionID)
	require.Equal(t, "w/ new grip, felt loose", *swings[0].Notes)
	require.Nil(t, swings[0].HoleNumber)

	require.Equal(t, 2, swings[1].ID)
	require.Equal(t, 3, *swings[1].HoleNumber)
	require.Equal(t, "Blue", *swings[1].TeeColor)
}

func TestCSVSwingLogHeaderWrittenOnce(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log := NewCSVSwingLog(dir)

	for i := 1; i <= 3; i++ {
		require.NoError(t, log.Append(ctx, &models.Swing{
			SessionID: "topgolf0501", Date: "2024-05-01", Time: "10:00:00",
			Location: "TopGolf", Club: "Driver", ShotNumber: i, Direction: "Straight",
			PracticeType: "Driving Range",
		}))
	}

	raw, err := os.ReadFile(filepath.Join(dir, swingFile))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, strings.Join(swingHeader, ","), lines[0])
	require.Equal(t, 1, strings.Count(string(raw), "Session ID"))
}

func TestCSVSwingLogMissingFileReadsEmpty(t *testing.T) {
	log := NewCSVSwingLog(t.TempDir())
	swings, err := log.ReadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, swings)
}

func TestCSVPracticeLogRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log := NewCSVPracticeLog(dir)

	entry := &models.PracticeEntry{
		Date:          "2024-05-01",
		StartTime:     "10:30",
		EndTime:       "11:45",
		PracticeType:  "Driving Range",
		Location:      "TopGolf Charlotte",
		BallUsed:      strPtr("Titleist Pro V1"),
		AvgTempF:      78,
		FeelsLikeF:    81,
		UVIndex:       6.5,
		WindSpeedMPH:  8,
		WindGustMPH:   12.5,
		WindDirection: "NW",
		HumidityPct:   55,
		AQI:           42,
	}
	require.NoError(t, log.Append(ctx, entry))

	entries, err := log.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	require.Equal(t, 1, got.ID)
	require.Equal(t, "TopGolf Charlotte", got.Location)
	require.Equal(t, "Titleist Pro V1", *got.BallUsed)
	require.Equal(t, 6.5, got.UVIndex)
	require.Equal(t, 12.5, got.WindGustMPH)
	require.Nil(t, got.Comments)
}

func TestCSVPracticeLogHeaderStable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log := NewCSVPracticeLog(dir)

	require.NoError(t, log.Append(ctx, &models.PracticeEntry{
		Date: "2024-05-01", StartTime: "10:30", EndTime: "10:30",
		PracticeType: "Driving Range", Location: "TopGolf",
		AvgTempF: 78, FeelsLikeF: 80, WindDirection: "N", HumidityPct: 50, AQI: 30,
	}))

	raw, err := os.ReadFile(filepath.Join(dir, practiceFile))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), strings.Join(practiceHeader, ",")))
}
