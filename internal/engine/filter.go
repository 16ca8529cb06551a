package engine

import (
	"io"

	"github.com/jobtrends/dashboard/internal/dataset"
)

// Selection is the set of chosen values per filter dimension. An empty slice
// means no restriction on that dimension.
type Selection struct {
	Titles     []string
	Industries []string
	Locations  []string
}

// View is the filtered slice of a table: the rows (by index, in source
// order) whose values pass every active selection.
type View struct {
	Table *dataset.Table
	Rows  []int32
}

// Apply evaluates the selection against the table. Active dimensions AND
// together; membership is tested against per-dictionary boolean masks so the
// row loop stays an int32 scan.
func Apply(t *dataset.Table, sel Selection) *View {
	mTitle := mask(t.Titles, sel.Titles)
	mIndustry := mask(t.Industries, sel.Industries)
	mLocation := mask(t.Locations, sel.Locations)

	if mTitle == nil && mIndustry == nil && mLocation == nil {
		rows := make([]int32, t.Len())
		for i := range rows {
			rows[i] = int32(i)
		}
		return &View{Table: t, Rows: rows}
	}

	rows := make([]int32, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if mTitle != nil && !mTitle[t.TitleIDs[i]] {
			continue
		}
		if mIndustry != nil && !mIndustry[t.IndustryIDs[i]] {
			continue
		}
		if mLocation != nil && !mLocation[t.LocationIDs[i]] {
			continue
		}
		rows = append(rows, int32(i))
	}
	return &View{Table: t, Rows: rows}
}

// mask compiles selected values into a dictionary-indexed allow mask.
// Nil means pass-all; selected values absent from the dictionary simply
// never match.
func mask(dict []string, selected []string) []bool {
	if len(selected) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		want[s] = struct{}{}
	}
	m := make([]bool, len(dict))
	for id, val := range dict {
		_, m[id] = want[val]
	}
	return m
}

// ExportCSV serializes the view with the source header and column order.
func (v *View) ExportCSV(w io.Writer) error {
	return v.Table.WriteCSV(w, v.Rows)
}
