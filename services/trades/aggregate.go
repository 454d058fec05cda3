package trades

import "sort"

// Aggregate counts records per (owner, transaction) pair. Pure and
// order-independent, the sum of all counts always equals len(records).
func Aggregate(records []Record) map[Key]int {
	counts := map[Key]int{}
	for _, r := range records {
		counts[Key{Owner: r.Owner, Transaction: r.Transaction}]++
	}
	return counts
}

type SummaryRow struct {
	Owner       OwnerCategory
	Transaction TransactionType
	Count       int
}

// Summarize flattens the aggregation into rows sorted by owner then
// transaction so exports are deterministic.
func Summarize(records []Record) []SummaryRow {
	counts := Aggregate(records)

	rows := make([]SummaryRow, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, SummaryRow{
			Owner:       key.Owner,
			Transaction: key.Transaction,
			Count:       count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Owner != rows[j].Owner {
			return rows[i].Owner < rows[j].Owner
		}
		return rows[i].Transaction < rows[j].Transaction
	})
	return rows
}
