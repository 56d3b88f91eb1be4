package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"bestsellers/internal/model"
)

// ErrNoData is returned when there is nothing to write.
var ErrNoData = errors.New("no data to save")

// utf8BOM keeps spreadsheet tools from misreading non-ASCII titles.
const utf8BOM = "\ufeff"

func WriteRawCSV(path string, products []model.RawProduct) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, p.Record())
	}
	return writeCSV(path, rows)
}

func WriteProductsCSV(path string, products []model.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, p.Record())
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := bw.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w := csv.NewWriter(bw)
	if err := w.Write(model.Columns); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("rows", len(rows)).Msg("csv saved")
	return nil
}

// ReadRawCSV loads a file written by WriteRawCSV or WriteProductsCSV.
// Columns are matched by header name; a column or cell that is missing is
// read as model.NotAvailable.
func ReadRawCSV(path string) ([]model.RawProduct, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readRaw(f)
}

func readRaw(r io.Reader) ([]model.RawProduct, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []model.RawProduct{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		index[strings.TrimSpace(h)] = i
	}

	var out []model.RawProduct
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(out)+1, err)
		}
		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return model.NotAvailable
			}
			return rec[i]
		}
		out = append(out, model.RawProduct{
			Rank:        cell("Rank"),
			Title:       cell("Title"),
			Price:       cell("Price"),
			Rating:      cell("Rating"),
			ReviewCount: cell("Review Count"),
			URL:         cell("URL"),
		})
	}
	return out, nil
}
