package trades

import (
	"log/slog"
	"strings"

	"government-trades/lib/textutil"

	"github.com/antzucaro/matchr"
)

// Columns holds resolved header indexes, -1 means the axis could not
// be located and every row classifies as unknown on that axis.
type Columns struct {
	Owner       int
	Transaction int
}

// keyword lists are ordered, earlier keywords are tried against every
// column before later ones
var transactionKeywords = []string{"transaction", "type", "buy", "sell", "acquisition", "disposition"}
var ownerKeywords = []string{"owner", "filer", "spouse", "family", "by"}

// how far a fuzzy hint match may drift from an actual header name
const hintMaxDistance = 2

// ResolveColumns locates the owner and transaction columns in a scraped
// header. Precedence per axis: explicit hint (exact, then fuzzy), then
// keyword containment, then leftmost-unclaimed positional fallback,
// then unresolved. The transaction axis resolves first since that is
// the order the upstream table lays them out in.
func ResolveColumns(header []string, hints ColumnHints) Columns {
	cols := Columns{Owner: -1, Transaction: -1}
	cols.Transaction = resolveAxis(header, hints.Transaction, transactionKeywords, -1)
	cols.Owner = resolveAxis(header, hints.Owner, ownerKeywords, cols.Transaction)

	if cols.Transaction < 0 {
		cols.Transaction = firstUnclaimed(header, cols.Owner)
	}
	if cols.Owner < 0 {
		cols.Owner = firstUnclaimed(header, cols.Transaction)
	}
	return cols
}

func resolveAxis(header []string, hint string, keywords []string, taken int) int {
	if hint != "" {
		idx := findHinted(header, hint)
		if idx >= 0 {
			return idx
		}
		slog.Warn("column hint matches no header, falling back to keywords", "hint", hint)
	}

	for _, keyword := range keywords {
		for i, name := range header {
			if i == taken {
				continue
			}
			if strings.Contains(textutil.Normalize(name), keyword) {
				return i
			}
		}
	}
	return -1
}

// exact case-insensitive match first, then the closest header within a
// small edit distance so hints survive upstream renames like a stray
// suffix or typo
func findHinted(header []string, hint string) int {
	normalized := textutil.Normalize(hint)
	for i, name := range header {
		if textutil.Normalize(name) == normalized {
			return i
		}
	}

	best := -1
	bestDistance := hintMaxDistance + 1
	for i, name := range header {
		d := matchr.Levenshtein(normalized, textutil.Normalize(name))
		if d < bestDistance {
			bestDistance = d
			best = i
		}
	}
	return best
}

func firstUnclaimed(header []string, taken int) int {
	for i := range header {
		if i != taken {
			return i
		}
	}
	return -1
}
