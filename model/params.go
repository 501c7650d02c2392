package model

import "strconv"

// Entry is one "label: value" line on the parameter page
type Entry struct {
	Label string
	Value string
}

// ExportParams carries the display strings printed in the exported document.
// Author and Contact are free text and are never interpreted.
type ExportParams struct {
	Entries []Entry
	Author  string
	Contact string
}

// NewExportParams formats the spec for the document's parameter page.
func NewExportParams(spec CircleSpec, author, contact string) ExportParams {
	return ExportParams{
		Entries: []Entry{
			{"Center (x, y)", FormatNumber(spec.Center.X) + " , " + spec.WithUnits(FormatNumber(spec.Center.Y))},
			{"Radius r", spec.WithUnits(FormatNumber(spec.Radius))},
			{"Point count n", strconv.Itoa(spec.Count)},
			{"Start angle", FormatNumber(spec.StartAngle) + " °"},
			{"Point color", spec.Style.Color.Hex()},
			{"Point size (px)", strconv.Itoa(spec.Style.Size)},
		},
		Author:  author,
		Contact: contact,
	}
}
