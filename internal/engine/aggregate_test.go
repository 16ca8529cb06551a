package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrends/dashboard/internal/models"
)

func TestMeanSalaryByTitle(t *testing.T) {
	v := Apply(loadFixture(t, threeJobs), Selection{})

	got := MeanSalaryByTitle(v)
	require.Len(t, got, 2)
	assert.Equal(t, models.TitleSalary{Title: "Data Scientist", MeanSalary: 110000, Jobs: 2}, got[0])
	assert.Equal(t, models.TitleSalary{Title: "Analyst", MeanSalary: 70000, Jobs: 1}, got[1])
}

func TestMeanSalaryByTitleSkipsUnparseableSalary(t *testing.T) {
	v := Apply(loadFixture(t, `Job Title,Industry,Location,Salary,Skills
Analyst,Finance,NY,70000,SQL
Analyst,Finance,NY,negotiable,SQL
`), Selection{})

	got := MeanSalaryByTitle(v)
	require.Len(t, got, 1)
	assert.Equal(t, 70000.0, got[0].MeanSalary)
	assert.Equal(t, 1, got[0].Jobs)
}

func TestSalariesByIndustry(t *testing.T) {
	v := Apply(loadFixture(t, threeJobs), Selection{})

	got := SalariesByIndustry(v)
	require.Len(t, got, 2)
	assert.Equal(t, "Tech", got[0].Industry)
	assert.Equal(t, []float64{100000, 120000}, got[0].Salaries)
	assert.Equal(t, "Finance", got[1].Industry)
	assert.Equal(t, []float64{70000}, got[1].Salaries)
}

func TestJobsByLocation(t *testing.T) {
	tbl := loadFixture(t, threeJobs)

	got := JobsByLocation(Apply(tbl, Selection{Locations: []string{"NY"}}))
	require.Len(t, got, 1)
	assert.Equal(t, models.LocationCount{Location: "NY", Count: 2}, got[0])

	got = JobsByLocation(Apply(tbl, Selection{}))
	require.Len(t, got, 2)
	assert.Equal(t, models.LocationCount{Location: "NY", Count: 2}, got[0])
	assert.Equal(t, models.LocationCount{Location: "SF", Count: 1}, got[1])
}

func TestTopSkills(t *testing.T) {
	v := Apply(loadFixture(t, threeJobs), Selection{})

	got := TopSkills(v, 10)
	// Equal counts keep first-encountered order.
	require.Len(t, got, 2)
	assert.Equal(t, models.SkillCount{Skill: "Python", Count: 2}, got[0])
	assert.Equal(t, models.SkillCount{Skill: "SQL", Count: 2}, got[1])
}

func TestTopSkillsTrimsAndLimits(t *testing.T) {
	v := Apply(loadFixture(t, `Job Title,Industry,Location,Salary,Skills
A,T,NY,1,"  Go ,Go, SQL ,,  "
B,T,NY,1,
`), Selection{})

	got := TopSkills(v, 1)
	require.Len(t, got, 1)
	assert.Equal(t, models.SkillCount{Skill: "Go", Count: 2}, got[0])
}

func TestSalaryHistogram(t *testing.T) {
	v := Apply(loadFixture(t, threeJobs), Selection{})

	h := SalaryHistogram(v, 20)
	require.Len(t, h.Counts, 20)
	require.Len(t, h.Edges, 21)
	assert.Equal(t, 70000.0, h.Edges[0])
	assert.Equal(t, 120000.0, h.Edges[20])

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 3, total)
	// Max salary lands in the last (inclusive) bin.
	assert.Equal(t, 1, h.Counts[19])
	assert.NotEmpty(t, h.Density)
}

func TestSalaryHistogramDegenerateRange(t *testing.T) {
	v := Apply(loadFixture(t, `Job Title,Industry,Location,Salary,Skills
A,T,NY,50000,Go
B,T,NY,50000,Go
`), Selection{})

	h := SalaryHistogram(v, 20)
	require.Len(t, h.Counts, 20)
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 2, total)
	// Zero spread: no density overlay.
	assert.Empty(t, h.Density)
}

const datedJobs = `Job Title,Industry,Location,Salary,Skills,Date
A,T,NY,100000,Go,2024-01-15
B,T,NY,120000,Go,not-a-date
C,T,NY,80000,Go,2024-01-02
D,T,NY,90000,Go,2024-03-09
`

func TestMonthlyTrend(t *testing.T) {
	v := Apply(loadFixture(t, datedJobs), Selection{})

	got := MonthlyTrend(v)
	require.Len(t, got, 2)
	assert.Equal(t, models.TrendPoint{Month: "2024-01", MeanSalary: 90000, Jobs: 2}, got[0])
	assert.Equal(t, models.TrendPoint{Month: "2024-03", MeanSalary: 90000, Jobs: 1}, got[1])
}

func TestMonthlyTrendSingleValidDate(t *testing.T) {
	v := Apply(loadFixture(t, `Job Title,Industry,Location,Salary,Skills,Date
A,T,NY,100000,Go,not-a-date
B,T,NY,120000,Go,2024-01-15
`), Selection{})

	got := MonthlyTrend(v)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01", got[0].Month)
}

func TestMonthlyTrendWithoutDateColumn(t *testing.T) {
	v := Apply(loadFixture(t, threeJobs), Selection{})
	assert.Nil(t, MonthlyTrend(v))
}

func TestAggregatorsTolerateEmptyView(t *testing.T) {
	v := Apply(loadFixture(t, datedJobs), Selection{Locations: []string{"Mars"}})
	require.Empty(t, v.Rows)

	assert.Empty(t, MeanSalaryByTitle(v))
	assert.Empty(t, SalariesByIndustry(v))
	assert.Empty(t, JobsByLocation(v))
	assert.Empty(t, TopSkills(v, 10))
	assert.Empty(t, SalaryHistogram(v, 20).Counts)
	assert.Empty(t, MonthlyTrend(v))
}

func TestSummarize(t *testing.T) {
	v := Apply(loadFixture(t, `Job Title,Industry,Location,Salary,Skills
A,T,NY,100000,Go
B,T,SF,200000,
`), Selection{})

	s := Summarize(v, 5)
	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 1, s.Missing["Skills"])
	assert.Equal(t, 0, s.Missing["Salary"])
	assert.Equal(t, 2, s.Salary.Count)
	assert.Equal(t, 150000.0, s.Salary.Mean)
	assert.Equal(t, 100000.0, s.Salary.Min)
	assert.Equal(t, 200000.0, s.Salary.Max)
	require.Len(t, s.Sample, 2)
	assert.Equal(t, "A", s.Sample[0][0])
}
