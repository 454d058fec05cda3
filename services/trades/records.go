package trades

import (
	"government-trades/lib/scrapers/capitoltrades"
)

// BuildRecords resolves the table's columns once and classifies every
// row. Rows shorter than the resolved indexes simply classify as
// unknown, ragged rows happen when upstream markup glitches.
func BuildRecords(table capitoltrades.TradeTable, hints ColumnHints) []Record {
	cols := ResolveColumns(table.Header, hints)

	records := make([]Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		r := Record{
			PoliticianId:   table.Politician.Id,
			PoliticianName: table.Politician.Name,
			Header:         table.Header,
			Cells:          row,
			Owner:          OwnerUnknown,
			Transaction:    TransactionUnknown,
		}
		if cols.Owner >= 0 && cols.Owner < len(row) {
			r.Owner = NormalizeOwner(row[cols.Owner])
		}
		if cols.Transaction >= 0 && cols.Transaction < len(row) {
			r.Transaction = NormalizeTransaction(row[cols.Transaction])
		}
		records = append(records, r)
	}
	return records
}
