package engine

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/jobtrends/dashboard/internal/models"
)

// Summarize produces the dashboard's basic-info block for the view: row
// count, per-column missing-cell counts, descriptive salary stats and up to
// sampleRows sample records.
func Summarize(v *View, sampleRows int) models.Summary {
	t := v.Table
	sum := models.Summary{
		Rows:    len(v.Rows),
		Columns: t.Header,
		Missing: make(map[string]int, len(t.Header)),
	}
	for _, name := range t.Header {
		sum.Missing[name] = 0
	}
	for _, i := range v.Rows {
		for c, cell := range t.Row(int(i)) {
			if strings.TrimSpace(cell) == "" {
				sum.Missing[t.Header[c]]++
			}
		}
	}

	sum.Salary = salaryStats(validSalaries(v))

	if sampleRows < 0 {
		sampleRows = 0
	}
	if sampleRows > len(v.Rows) {
		sampleRows = len(v.Rows)
	}
	sum.Sample = make([][]string, 0, sampleRows)
	for _, i := range v.Rows[:sampleRows] {
		sum.Sample = append(sum.Sample, t.Row(int(i)))
	}
	return sum
}

func salaryStats(salaries []float64) models.SalaryStats {
	if len(salaries) == 0 {
		return models.SalaryStats{}
	}
	sorted := append([]float64(nil), salaries...)
	sort.Float64s(sorted)

	s := models.SalaryStats{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}
