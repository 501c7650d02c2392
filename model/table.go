package model

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CoordinateRow is one line of the coordinate table
type CoordinateRow struct {
	Index int
	X, Y  float64
}

// CoordinateTable is a tabular projection of a PointSet
type CoordinateTable struct {
	Header [3]string
	Rows   []CoordinateRow
}

// RowCount returns the number of data rows
func (t *CoordinateTable) RowCount() int {
	return len(t.Rows)
}

// cells returns the row as display strings
func (r CoordinateRow) cells() [3]string {
	return [3]string{
		strconv.Itoa(r.Index),
		strconv.FormatFloat(r.X, 'f', -1, 64),
		strconv.FormatFloat(r.Y, 'f', -1, 64),
	}
}

// ToMarkdown converts the table to markdown format
func (t *CoordinateTable) ToMarkdown() string {
	var sb strings.Builder

	writeRow := func(cells [3]string) {
		for _, c := range cells {
			sb.WriteString("| ")
			sb.WriteString(c)
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.Header)
	sb.WriteString("|---|---|---|\n")
	for _, row := range t.Rows {
		writeRow(row.cells())
	}

	return sb.String()
}

// ToCSV converts the table to CSV format. Cells never contain separators,
// so no quoting is needed.
func (t *CoordinateTable) ToCSV() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Header[:], ","))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		cells := row.cells()
		sb.WriteString(strings.Join(cells[:], ","))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToHTML renders the table as an HTML <table> fragment
func (t *CoordinateTable) ToHTML() (string, error) {
	table := element(atom.Table)

	thead := element(atom.Thead)
	thead.AppendChild(tableRow(atom.Th, t.Header))
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range t.Rows {
		tbody.AppendChild(tableRow(atom.Td, row.cells()))
	}
	table.AppendChild(tbody)

	var buf bytes.Buffer
	if err := html.Render(&buf, table); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func tableRow(cell atom.Atom, cells [3]string) *html.Node {
	tr := element(atom.Tr)
	for _, text := range cells {
		c := element(cell)
		c.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		tr.AppendChild(c)
	}
	return tr
}
