package models

// ChartSpec ties one aggregate result to the chart that consumes it.
// Chart is one of: bar, hbar, box, histogram, line.
type ChartSpec struct {
	Chart     string `json:"chart"`
	Title     string `json:"title"`
	XLabel    string `json:"x_label,omitempty"`
	YLabel    string `json:"y_label,omitempty"`
	Available bool   `json:"available"`
	Data      any    `json:"data"`
}

type TitleSalary struct {
	Title      string  `json:"job_title"`
	MeanSalary float64 `json:"mean_salary"`
	Jobs       int     `json:"jobs"`
}

type IndustrySalaries struct {
	Industry string    `json:"industry"`
	Salaries []float64 `json:"salaries"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Histogram holds len(Counts)+1 edges; the last bin is closed on both ends.
type Histogram struct {
	Edges   []float64 `json:"edges"`
	Counts  []int     `json:"counts"`
	Density []Point   `json:"density,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TrendPoint struct {
	Month      string  `json:"month"`
	MeanSalary float64 `json:"mean_salary"`
	Jobs       int     `json:"jobs"`
}

// Summary mirrors the dashboard's basic-info block: sample rows, missing
// cells per column and descriptive salary stats.
type Summary struct {
	Rows    int            `json:"rows"`
	Columns []string       `json:"columns"`
	Missing map[string]int `json:"missing"`
	Salary  SalaryStats    `json:"salary"`
	Sample  [][]string     `json:"sample"`
}

type SalaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Filters lists the distinct values backing the three multi-select controls.
type Filters struct {
	Titles     []string `json:"job_titles"`
	Industries []string `json:"industries"`
	Locations  []string `json:"locations"`
}
