package screener

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"stock-screener/internal/model"
)

func TestWriteRecordsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.csv")

	records := []model.ScreeningRecord{
		{Ticker: "AAPL", CurrentPrice: 190.5, FairPrice: 250.25, PercentDiff: 23.876},
		{Ticker: "MSFT", CurrentPrice: 415.3, FairPrice: 500, PercentDiff: 16.94},
	}
	if err := WriteRecordsCSV(path, records); err != nil {
		t.Fatalf("WriteRecordsCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV back: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "ticker" || rows[0][3] != "percent_difference" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "AAPL" || rows[1][1] != "190.500000" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][0] != "MSFT" || rows[2][3] != "16.940000" {
		t.Errorf("unexpected second row: %v", rows[2])
	}
}

func TestWriteRecordsCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteRecordsCSV(path, nil); err != nil {
		t.Fatalf("WriteRecordsCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
