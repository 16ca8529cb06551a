package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Date layouts tried in order. The source data is ISO dates; the rest cover
// common spreadsheet exports. Anything else is treated as unparseable and
// excluded from the time-trend aggregate only.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// Load reads the CSV at path into a Table. Missing file and missing required
// columns are errors; there is no partial load.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{ColTitle, ColIndustry, ColLocation, ColSalary, ColSkills} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataset %s: missing column %q", path, name)
		}
	}
	dateCol, hasDate := col[ColDate]

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	n := len(records)
	t := &Table{
		Header:      header,
		rows:        records,
		TitleIDs:    make([]int32, n),
		IndustryIDs: make([]int32, n),
		LocationIDs: make([]int32, n),
		Salaries:    make([]float64, n),
		Skills:      make([]string, n),
		Months:      make([]int32, n),
		HasDate:     hasDate,
	}

	titles := newDict()
	industries := newDict()
	locations := newDict()

	iTitle, iIndustry, iLocation := col[ColTitle], col[ColIndustry], col[ColLocation]
	iSalary, iSkills := col[ColSalary], col[ColSkills]

	for i, rec := range records {
		t.TitleIDs[i] = titles.id(rec[iTitle])
		t.IndustryIDs[i] = industries.id(rec[iIndustry])
		t.LocationIDs[i] = locations.id(rec[iLocation])
		t.Salaries[i] = parseSalary(rec[iSalary])
		t.Skills[i] = rec[iSkills]
		if hasDate {
			t.Months[i] = parseMonth(rec[dateCol])
		}
	}

	t.Titles = titles.vals
	t.Industries = industries.vals
	t.Locations = locations.vals
	return t, nil
}

func parseSalary(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseMonth maps a date cell to YYYYMM, or 0 when it does not parse.
func parseMonth(s string) int32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return int32(d.Year())*100 + int32(d.Month())
		}
	}
	return 0
}
