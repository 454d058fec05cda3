package trades

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
)

// unionColumns merges the source headers of every record in first-seen
// order. Different politicians can come back with slightly different
// tables, the raw export keeps every column anyone had.
func unionColumns(records []Record) []string {
	var columns []string
	seen := map[string]bool{}
	for _, r := range records {
		for _, name := range r.Header {
			if seen[name] {
				continue
			}
			seen[name] = true
			columns = append(columns, name)
		}
	}
	return columns
}

// WriteRawCSV exports every scraped row with its original cells plus
// the politician tag and the resolved classification columns.
func WriteRawCSV(path string, records []Record) error {
	columns := unionColumns(records)

	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	header := append([]string{"politician_id", "politician_name"}, columns...)
	header = append(header, "owner_category", "transaction_type")
	err = w.Write(header)
	if err != nil {
		return errors.Join(err, f.Close())
	}

	for _, r := range records {
		byName := map[string]string{}
		for i, name := range r.Header {
			if i < len(r.Cells) {
				byName[name] = r.Cells[i]
			}
		}

		row := []string{r.PoliticianId, r.PoliticianName}
		for _, name := range columns {
			row = append(row, byName[name])
		}
		row = append(row, string(r.Owner), string(r.Transaction))
		err = w.Write(row)
		if err != nil {
			return errors.Join(err, f.Close())
		}
	}

	w.Flush()
	return errors.Join(w.Error(), f.Close())
}

// WriteSummaryCSV exports the aggregation as (owner, transaction,
// trade_count) rows.
func WriteSummaryCSV(path string, rows []SummaryRow) error {
	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	err = w.Write([]string{"owner", "transaction", "trade_count"})
	if err != nil {
		return errors.Join(err, f.Close())
	}
	for _, row := range rows {
		err = w.Write([]string{
			string(row.Owner),
			string(row.Transaction),
			strconv.Itoa(row.Count),
		})
		if err != nil {
			return errors.Join(err, f.Close())
		}
	}

	w.Flush()
	return errors.Join(w.Error(), f.Close())
}

func createWithParents(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
