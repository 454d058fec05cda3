package htmlutil

import (
	"github.com/PuerkitoBio/goquery"
)

// Table is a rectangular grid of string cells pulled out of an HTML
// <table>. No coercion happens here, every cell stays text.
type Table struct {
	Header []string
	Rows   [][]string
}

// ExtractTable pulls the table at the given zero-based position out of
// the document. A missing or out-of-range table reports ok=false, it is
// not an error, pages without tables just mean zero results.
//
// The header comes from the thead row when there is one, otherwise the
// first row of the table. Note the html5 parser wraps stray <tr>s in a
// tbody, so headerless markup still parses the same way everywhere.
func ExtractTable(doc *goquery.Document, index int) (Table, bool) {
	tables := doc.Find("table")
	if index < 0 || index >= tables.Length() {
		return Table{}, false
	}

	sel := tables.Eq(index)
	var out Table

	theadRow := sel.Find("thead tr").First()
	if theadRow.Length() > 0 {
		out.Header = rowCells(theadRow)
		sel.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			out.Rows = append(out.Rows, rowCells(row))
		})
		return out, true
	}

	sel.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			out.Header = rowCells(row)
			return
		}
		out.Rows = append(out.Rows, rowCells(row))
	})
	return out, true
}

func rowCells(row *goquery.Selection) []string {
	cells := []string{}
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, CleanText(cell.Text()))
	})
	return cells
}
