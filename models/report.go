package models

// ImputedColumns lists the columns whose missing cells are replaced with 0
var ImputedColumns = []string{
	"cylinders",
	"drive",
	"displ",
	"eng_dscr",
	"trany",
	"guzzler",
	"trans_dscr",
	"tCharger",
	"sCharger",
	"atvType",
	"fuelType2",
	"rangeA",
	"evMotor",
	"startStop",
}

// MetricPlot pairs a mileage column with its chart title
type MetricPlot struct {
	Column string
	Title  string
}

// MileagePlots are the year-vs-mileage charts produced for every run
var MileagePlots = []MetricPlot{
	{Column: "comb08", Title: "Combined Mileage of Cars"},
	{Column: "city08", Title: "InCity Mileage of Cars"},
	{Column: "highway08", Title: "Highway Mileage of Cars"},
}

const (
	YearColumn = "year"
	MakeColumn = "make"

	XAxisLabel = "Years"
	YAxisLabel = "Gas Mileage"
)

// ColumnCount is a per-column tally, e.g. missing cells
type ColumnCount struct {
	Column string
	Count  int
}

// ColumnInfo mirrors a dataframe info() line
type ColumnInfo struct {
	Column  string
	NonNull int
	Type    string // number|string|mixed|empty
}

// FrequencyCount is one distinct value and how many rows hold it
type FrequencyCount struct {
	Value Value
	Count int
}

// PlotSeries is the x/y input handed to the chart renderer
type PlotSeries struct {
	Metric string
	Title  string
	XLabel string
	YLabel string
	X      []float64
	Y      []float64
}

// AnalysisReport holds everything one pipeline run produced
type AnalysisReport struct {
	RunID          string
	SourcePath     string
	Rows           int
	Columns        int
	Head           *Dataset
	Info           []ColumnInfo
	NormalizedHead *Dataset
	Imputed        []ColumnCount
	NullCounts     []ColumnCount
	SortedByYear   *Dataset
	MakeCounts     []FrequencyCount
	YearCounts     []FrequencyCount
	Series         []PlotSeries
	Cleaned        *Dataset
}
