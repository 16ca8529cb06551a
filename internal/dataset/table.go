package dataset

import (
	"encoding/csv"
	"io"
)

// Column names required in the input file. Date is optional.
const (
	ColTitle    = "Job Title"
	ColIndustry = "Industry"
	ColLocation = "Location"
	ColSalary   = "Salary"
	ColSkills   = "Skills"
	ColDate     = "Date"
)

// Table holds the dataset in Struct-of-Arrays form: the three categorical
// dimensions are dictionary encoded so filters and group-bys reduce to int32
// array scans. The raw records are kept verbatim so export reproduces the
// source byte-for-byte (minus quoting).
type Table struct {
	Header []string
	rows   [][]string

	TitleIDs    []int32
	IndustryIDs []int32
	LocationIDs []int32

	// Dictionaries (ID -> value), in first-seen order.
	Titles     []string
	Industries []string
	Locations  []string

	Salaries []float64 // NaN when the cell failed to parse
	Skills   []string  // raw Skills text, "" when missing
	Months   []int32   // YYYYMM, 0 when Date is missing or unparseable
	HasDate  bool
}

// dict is the ID-assigning side of a dictionary column.
type dict struct {
	ids  map[string]int32
	vals []string
}

func newDict() *dict {
	return &dict{ids: make(map[string]int32)}
}

func (d *dict) id(s string) int32 {
	if id, ok := d.ids[s]; ok {
		return id
	}
	id := int32(len(d.vals))
	d.vals = append(d.vals, s)
	d.ids[s] = id
	return id
}

func (t *Table) Len() int { return len(t.rows) }

// Row returns the raw record at index i in source column order.
func (t *Table) Row(i int) []string { return t.rows[i] }

// WriteCSV serializes the given rows (by index, in order) with the source
// header and column order. A nil index slice writes the whole table.
func (t *Table) WriteCSV(w io.Writer, rows []int32) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if rows == nil {
		for _, rec := range t.rows {
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	} else {
		for _, i := range rows {
			if err := cw.Write(t.rows[i]); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
