package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

// File names match the legacy spreadsheet worksheets so old exports line up.
const (
	swingFile    = "golf_shot_data_log.csv"
	practiceFile = "golf_data_log.csv"
)

// Column layouts are fixed: consumers of the files rely on header order
// staying stable across writes.
var swingHeader = []string{
	"Session ID", "Practice Type", "Date", "Time", "Location", "Club",
	"Shot #", "Direction", "Feel", "Notes",
	"Hole #", "Shot # on Hole", "Hole Yardage", "Par", "Tee Color",
}

var practiceHeader = []string{
	"Date", "Start Time", "End Time", "Practice Type", "Location", "Ball Used",
	"Avg Temp (F)", "Feels Like (F)", "UV Index",
	"Wind Speed (MPH)", "Wind Gusts (MPH)", "Wind Direction",
	"Humidity (%)", "AQI", "Comments",
}

// CSVSwingLog stores swing records in a flat CSV file with a fixed header.
type CSVSwingLog struct {
	path string
}

// NewCSVSwingLog returns a swing log stored under dir.
func NewCSVSwingLog(dir string) *CSVSwingLog {
	return &CSVSwingLog{path: filepath.Join(dir, swingFile)}
}

// ReadAll returns every swing in file order. A missing file reads as an
// empty log.
func (s *CSVSwingLog) ReadAll(ctx context.Context) ([]models.Swing, error) {
	rows, err := readRows(s.path, len(swingHeader))
	if err != nil {
		return nil, err
	}

	swings := make([]models.Swing, 0, len(rows))
	for i, row := range rows {
		sw := models.Swing{
			ID:           i + 1,
			SessionID:    row[0],
			PracticeType: row[1],
			Date:         row[2],
			Time:         row[3],
			Location:     row[4],
			Club:         row[5],
			Direction:    row[7],
			Feel:         cellString(row[8]),
			Notes:        cellString(row[9]),
		}
		if sw.ShotNumber, err = cellIntValue(row[6]); err != nil {
			return nil, fmt.Errorf("%s row %d: shot #: %w", swingFile, i+1, err)
		}
		if sw.HoleNumber, err = cellInt(row[10]); err != nil {
			return nil, fmt.Errorf("%s row %d: hole #: %w", swingFile, i+1, err)
		}
		if sw.ShotOnHole, err = cellInt(row[11]); err != nil {
			return nil, fmt.Errorf("%s row %d: shot # on hole: %w", swingFile, i+1, err)
		}
		if sw.HoleYardage, err = cellInt(row[12]); err != nil {
			return nil, fmt.Errorf("%s row %d: hole yardage: %w", swingFile, i+1, err)
		}
		if sw.Par, err = cellInt(row[13]); err != nil {
			return nil, fmt.Errorf("%s row %d: par: %w", swingFile, i+1, err)
		}
		sw.TeeColor = cellString(row[14])
		swings = append(swings, sw)
	}
	return swings, nil
}

// Append writes one swing to the end of the file, creating it with the
// header row first if needed.
func (s *CSVSwingLog) Append(ctx context.Context, sw *models.Swing) error {
	row := []string{
		sw.SessionID, sw.PracticeType, sw.Date, sw.Time, sw.Location, sw.Club,
		strconv.Itoa(sw.ShotNumber), sw.Direction, strCell(sw.Feel), strCell(sw.Notes),
		intCell(sw.HoleNumber), intCell(sw.ShotOnHole), intCell(sw.HoleYardage),
		intCell(sw.Par), strCell(sw.TeeColor),
	}
	return appendRow(s.path, swingHeader, row)
}

// CSVPracticeLog stores practice entries in a flat CSV file with a fixed
// header.
type CSVPracticeLog struct {
	path string
}

// NewCSVPracticeLog returns a practice log stored under dir.
func NewCSVPracticeLog(dir string) *CSVPracticeLog {
	return &CSVPracticeLog{path: filepath.Join(dir, practiceFile)}
}

// ReadAll returns every practice entry in file order.
func (s *CSVPracticeLog) ReadAll(ctx context.Context) ([]models.PracticeEntry, error) {
	rows, err := readRows(s.path, len(practiceHeader))
	if err != nil {
		return nil, err
	}

	entries := make([]models.PracticeEntry, 0, len(rows))
	for i, row := range rows {
		pe := models.PracticeEntry{
			ID:            i + 1,
			Date:          row[0],
			StartTime:     row[1],
			EndTime:       row[2],
			PracticeType:  row[3],
			Location:      row[4],
			BallUsed:      cellString(row[5]),
			WindDirection: row[11],
			Comments:      cellString(row[14]),
		}
		if pe.AvgTempF, err = cellIntValue(row[6]); err != nil {
			return nil, fmt.Errorf("%s row %d: avg temp: %w", practiceFile, i+1, err)
		}
		if pe.FeelsLikeF, err = cellIntValue(row[7]); err != nil {
			return nil, fmt.Errorf("%s row %d: feels like: %w", practiceFile, i+1, err)
		}
		if pe.UVIndex, err = cellFloat(row[8]); err != nil {
			return nil, fmt.Errorf("%s row %d: uv index: %w", practiceFile, i+1, err)
		}
		if pe.WindSpeedMPH, err = cellFloat(row[9]); err != nil {
			return nil, fmt.Errorf("%s row %d: wind speed: %w", practiceFile, i+1, err)
		}
		if pe.WindGustMPH, err = cellFloat(row[10]); err != nil {
			return nil, fmt.Errorf("%s row %d: wind gusts: %w", practiceFile, i+1, err)
		}
		if pe.HumidityPct, err = cellIntValue(row[12]); err != nil {
			return nil, fmt.Errorf("%s row %d: humidity: %w", practiceFile, i+1, err)
		}
		if pe.AQI, err = cellIntValue(row[13]); err != nil {
			return nil, fmt.Errorf("%s row %d: aqi: %w", practiceFile, i+1, err)
		}
		entries = append(entries, pe)
	}
	return entries, nil
}

// Append writes one practice entry to the end of the file.
func (s *CSVPracticeLog) Append(ctx context.Context, pe *models.PracticeEntry) error {
	row := []string{
		pe.Date, pe.StartTime, pe.EndTime, pe.PracticeType, pe.Location,
		strCell(pe.BallUsed),
		strconv.Itoa(pe.AvgTempF), strconv.Itoa(pe.FeelsLikeF), floatCell(pe.UVIndex),
		floatCell(pe.WindSpeedMPH), floatCell(pe.WindGustMPH), pe.WindDirection,
		strconv.Itoa(pe.HumidityPct), strconv.Itoa(pe.AQI), strCell(pe.Comments),
	}
	return appendRow(s.path, practiceHeader, row)
}

func readRows(path string, width int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = width
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	// Skip the header row.
	return all[1:], nil
}

func appendRow(path string, header, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func cellString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cellInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func cellIntValue(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func cellFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func strCell(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intCell(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func floatCell(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
