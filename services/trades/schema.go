package trades

// OwnerCategory says who legally holds the disclosed asset.
type OwnerCategory string

const (
	OwnerFiler   OwnerCategory = "filer"
	OwnerSpouse  OwnerCategory = "spouse"
	OwnerFamily  OwnerCategory = "family"
	OwnerJoint   OwnerCategory = "joint"
	OwnerUnknown OwnerCategory = "unknown"
)

// TransactionType is the nature of the disclosed trade.
type TransactionType string

const (
	TransactionBuy      TransactionType = "buy"
	TransactionSell     TransactionType = "sell"
	TransactionExchange TransactionType = "exchange"
	TransactionUnknown  TransactionType = "unknown"
)

// ColumnHints are explicit user overrides naming the owner and/or
// transaction column. A supplied hint short-circuits the keyword
// heuristics for that axis.
type ColumnHints struct {
	Owner       string
	Transaction string
}

// Record is one disclosed transaction. Cells holds the raw column
// values as scraped, Header points at the source table's header so the
// raw export can line columns up again. Owner and Transaction are
// always set, unclassifiable values resolve to unknown rather than
// being absent, so aggregation never drops a row.
type Record struct {
	PoliticianId   string
	PoliticianName string
	Header         []string
	Cells          []string
	Owner          OwnerCategory
	Transaction    TransactionType
}

// Key is the aggregation key, one count per observed pair.
type Key struct {
	Owner       OwnerCategory
	Transaction TransactionType
}
