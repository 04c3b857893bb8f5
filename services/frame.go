package services

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"vehicle-wrangler/models"
)

// naValues load as missing. This is the dataframe-reader default set plus
// the upper-case spelling some exports use.
var naValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "NAN", "None",
	"n/a", "nan", "null",
}

// datasetFromRecords runs gota type detection over header+rows and converts
// the frame into a Dataset. Int and Float columns become numbers, anything
// else keeps its raw text. NaN and ±Inf numbers load as missing.
func datasetFromRecords(header []string, rows [][]string) (*models.Dataset, error) {
	if len(rows) == 0 || len(header) == 0 {
		return models.NewDataset(header, nil), nil
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, header)
	records = append(records, rows...)

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(naValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to build frame: %w", df.Err)
	}

	// gota renames duplicate headers, so columns are matched by position
	names := df.Names()
	out := make([][]models.Value, len(rows))
	for r := range out {
		out[r] = make([]models.Value, len(header))
	}
	for c := range header {
		col := df.Col(names[c])
		numeric := col.Type() == series.Int || col.Type() == series.Float
		for r := 0; r < col.Len(); r++ {
			out[r][c] = elemValue(col.Elem(r), numeric)
		}
	}
	return models.NewDataset(header, out), nil
}

func elemValue(e series.Element, numeric bool) models.Value {
	if e.IsNA() {
		return models.Missing()
	}
	if !numeric {
		return models.String(e.String())
	}
	f := e.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return models.Missing()
	}
	return models.Number(f)
}

// toSeries converts one dataset column for gota. A column holding only
// numbers and missing cells becomes Float; any text makes it String.
func toSeries(name string, values []models.Value) series.Series {
	kind := series.Float
	for _, v := range values {
		if !v.IsMissing() && v.Kind == models.KindString {
			kind = series.String
			break
		}
	}
	raw := make([]string, len(values))
	for i, v := range values {
		if v.IsMissing() {
			raw[i] = "NaN"
			continue
		}
		raw[i] = v.String()
	}
	return series.New(raw, kind, name)
}

// toFrame builds a gota frame over every column of ds
func toFrame(ds *models.Dataset) (dataframe.DataFrame, error) {
	cols := ds.Columns()
	list := make([]series.Series, len(cols))
	for c, name := range cols {
		values := make([]models.Value, ds.Len())
		for r := range values {
			values[r] = ds.Cell(r, c)
		}
		list[c] = toSeries(name, values)
	}
	df := dataframe.New(list...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to build frame: %w", df.Err)
	}
	return df, nil
}
