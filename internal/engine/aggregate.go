package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jobtrends/dashboard/internal/models"
)

// DefaultTopSkills and DefaultHistogramBins match the dashboard's charts.
const (
	DefaultTopSkills     = 10
	DefaultHistogramBins = 20
)

// MeanSalaryByTitle groups the view by Job Title and returns per-group mean
// salary, sorted descending by mean. Ties keep first-seen order. Rows whose
// salary failed to parse are excluded; a group with no valid salary is
// dropped.
func MeanSalaryByTitle(v *View) []models.TitleSalary {
	t := v.Table
	sums := make([]float64, len(t.Titles))
	counts := make([]int, len(t.Titles))
	for _, i := range v.Rows {
		s := t.Salaries[i]
		if math.IsNaN(s) {
			continue
		}
		id := t.TitleIDs[i]
		sums[id] += s
		counts[id]++
	}

	out := make([]models.TitleSalary, 0, len(t.Titles))
	for id, c := range counts {
		if c == 0 {
			continue
		}
		out = append(out, models.TitleSalary{
			Title:      t.Titles[id],
			MeanSalary: sums[id] / float64(c),
			Jobs:       c,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MeanSalary > out[j].MeanSalary })
	return out
}

// SalariesByIndustry passes through (Industry, Salary) groups for box-plot
// rendering. Industries appear in dictionary (first-seen) order; only
// industries present in the view are returned.
func SalariesByIndustry(v *View) []models.IndustrySalaries {
	t := v.Table
	groups := make([][]float64, len(t.Industries))
	present := make([]bool, len(t.Industries))
	for _, i := range v.Rows {
		id := t.IndustryIDs[i]
		present[id] = true
		if s := t.Salaries[i]; !math.IsNaN(s) {
			groups[id] = append(groups[id], s)
		}
	}

	out := make([]models.IndustrySalaries, 0, len(t.Industries))
	for id, ok := range present {
		if !ok {
			continue
		}
		out = append(out, models.IndustrySalaries{
			Industry: t.Industries[id],
			Salaries: groups[id],
		})
	}
	return out
}

// JobsByLocation counts rows per distinct Location in the view, sorted
// descending by count with stable ties.
func JobsByLocation(v *View) []models.LocationCount {
	t := v.Table
	counts := make([]int, len(t.Locations))
	for _, i := range v.Rows {
		counts[t.LocationIDs[i]]++
	}

	out := make([]models.LocationCount, 0, len(t.Locations))
	for id, c := range counts {
		if c == 0 {
			continue
		}
		out = append(out, models.LocationCount{Location: t.Locations[id], Count: c})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// TopSkills splits each non-missing Skills cell on commas, trims the tokens
// and returns the limit most frequent ones. Ties keep first-encountered
// order; empty tokens are discarded.
func TopSkills(v *View, limit int) []models.SkillCount {
	if limit <= 0 {
		limit = DefaultTopSkills
	}
	t := v.Table
	counts := make(map[string]int)
	var order []string
	for _, i := range v.Rows {
		raw := t.Skills[i]
		if raw == "" {
			continue
		}
		for _, part := range strings.Split(raw, ",") {
			tok := strings.TrimSpace(part)
			if tok == "" {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	out := make([]models.SkillCount, 0, len(order))
	for _, s := range order {
		out = append(out, models.SkillCount{Skill: s, Count: counts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SalaryHistogram bins valid salaries into bins equal-width buckets over the
// observed range, last bin inclusive, with a Gaussian KDE overlay when the
// sample supports one.
func SalaryHistogram(v *View, bins int) models.Histogram {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	salaries := validSalaries(v)
	if len(salaries) == 0 {
		return models.Histogram{}
	}

	lo, hi := salaries[0], salaries[0]
	for _, s := range salaries[1:] {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	if hi == lo {
		// Degenerate range: widen so bins keep nonzero width.
		hi = lo + 1
	}
	width := (hi - lo) / float64(bins)

	h := models.Histogram{
		Edges:  make([]float64, bins+1),
		Counts: make([]int, bins),
	}
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	for _, s := range salaries {
		idx := int((s - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Counts[idx]++
	}
	h.Density = kde(salaries, lo, hi)
	return h
}

// kde evaluates a Gaussian kernel density estimate (Silverman bandwidth) on
// a 101-point grid over [lo, hi]. Returns nil when the sample is too small
// or has zero spread.
func kde(sample []float64, lo, hi float64) []models.Point {
	n := len(sample)
	if n < 2 {
		return nil
	}
	sigma := stat.StdDev(sample, nil)
	if sigma == 0 {
		return nil
	}
	bw := 1.06 * sigma * math.Pow(float64(n), -0.2)

	const gridPoints = 101
	step := (hi - lo) / (gridPoints - 1)
	pts := make([]models.Point, gridPoints)
	for g := 0; g < gridPoints; g++ {
		x := lo + float64(g)*step
		var y float64
		for _, s := range sample {
			y += distuv.Normal{Mu: s, Sigma: bw}.Prob(x)
		}
		pts[g] = models.Point{X: x, Y: y / float64(n)}
	}
	return pts
}

// MonthlyTrend buckets valid-dated rows by calendar month and returns mean
// salary per month, chronologically ordered. Rows whose date failed to parse
// are dropped from this aggregate only.
func MonthlyTrend(v *View) []models.TrendPoint {
	t := v.Table
	if !t.HasDate {
		return nil
	}
	sums := make(map[int32]float64)
	counts := make(map[int32]int)
	for _, i := range v.Rows {
		m := t.Months[i]
		if m == 0 {
			continue
		}
		s := t.Salaries[i]
		if math.IsNaN(s) {
			continue
		}
		sums[m] += s
		counts[m]++
	}

	months := make([]int32, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	out := make([]models.TrendPoint, 0, len(months))
	for _, m := range months {
		out = append(out, models.TrendPoint{
			Month:      fmt.Sprintf("%04d-%02d", m/100, m%100),
			MeanSalary: sums[m] / float64(counts[m]),
			Jobs:       counts[m],
		})
	}
	return out
}

func validSalaries(v *View) []float64 {
	out := make([]float64, 0, len(v.Rows))
	for _, i := range v.Rows {
		if s := v.Table.Salaries[i]; !math.IsNaN(s) {
			out = append(out, s)
		}
	}
	return out
}
