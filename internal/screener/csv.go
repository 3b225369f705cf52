package screener

import (
	"encoding/csv"
	"os"
	"strconv"

	"stock-screener/internal/model"
)

// WriteRecordsCSV writes the retained screening records to a CSV file,
// one row per ticker in input order.
func WriteRecordsCSV(path string, records []model.ScreeningRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"ticker",
		"current_price",
		"fair_price",
		"percent_difference",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Ticker,
			fmtFloat(r.CurrentPrice),
			fmtFloat(r.FairPrice),
			fmtFloat(r.PercentDiff),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
