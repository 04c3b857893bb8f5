package services

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

const (
	sortIndexColumn = "row"
	sortKeyColumn   = "key"
)

// InsightService computes read-only summaries of a cleaned dataset
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// NullCounts counts missing cells per column, in header order
func (s *InsightService) NullCounts(ds *models.Dataset) ([]models.ColumnCount, error) {
	cols := ds.Columns()
	counts := make([]models.ColumnCount, len(cols))
	if len(cols) == 0 {
		return counts, nil
	}
	df, err := toFrame(ds)
	if err != nil {
		return nil, err
	}
	names := df.Names()
	for c, name := range cols {
		counts[c].Column = name
		for _, na := range df.Col(names[c]).IsNaN() {
			if na {
				counts[c].Count++
			}
		}
	}
	return counts, nil
}

// Info reports non-null counts and the observed cell type of every column
func (s *InsightService) Info(ds *models.Dataset) []models.ColumnInfo {
	cols := ds.Columns()
	info := make([]models.ColumnInfo, len(cols))
	for c, name := range cols {
		var numbers, strs int
		for r := 0; r < ds.Len(); r++ {
			v := ds.Cell(r, c)
			switch {
			case v.IsMissing():
			case v.Kind == models.KindNumber:
				numbers++
			default:
				strs++
			}
		}
		info[c] = models.ColumnInfo{
			Column:  name,
			NonNull: numbers + strs,
			Type:    columnType(numbers, strs),
		}
	}
	return info
}

func columnType(numbers, strs int) string {
	switch {
	case numbers > 0 && strs > 0:
		return "mixed"
	case numbers > 0:
		return "number"
	case strs > 0:
		return "string"
	default:
		return "empty"
	}
}

// SortBy returns a view of ds ordered by column. The sort is stable and
// missing cells go last in either direction. The view shares row storage
// with ds; ds itself is not reordered.
func (s *InsightService) SortBy(ds *models.Dataset, column string, ascending bool) (*models.Dataset, error) {
	values, err := ds.Column(column)
	if err != nil {
		return nil, err
	}

	kind := models.KindMissing
	for r, v := range values {
		if v.IsMissing() {
			continue
		}
		if kind == models.KindMissing {
			kind = v.Kind
		} else if v.Kind != kind {
			return nil, fmt.Errorf("sort by %s: row %d: %w", column, r, models.ErrTypeCoercion)
		}
	}

	index := make([]int, len(values))
	for i := range index {
		index[i] = i
	}
	df := dataframe.New(
		series.New(index, series.Int, sortIndexColumn),
		toSeries(sortKeyColumn, values),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("sort by %s: %w", column, df.Err)
	}

	order := dataframe.Sort(sortKeyColumn)
	if !ascending {
		order = dataframe.RevSort(sortKeyColumn)
	}
	sorted := df.Arrange(order)
	if sorted.Err != nil {
		return nil, fmt.Errorf("sort by %s: %w", column, sorted.Err)
	}
	perm, err := sorted.Col(sortIndexColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("sort by %s: %w", column, err)
	}
	return ds.Reorder(perm), nil
}

// ValueCounts tallies distinct values of column, most frequent first.
// Ties keep first-seen order. Missing cells share one bucket so the
// counts always add up to ds.Len().
func (s *InsightService) ValueCounts(ds *models.Dataset, column string) ([]models.FrequencyCount, error) {
	values, err := ds.Column(column)
	if err != nil {
		return nil, err
	}

	pos := make(map[models.Value]int)
	var counts []models.FrequencyCount
	for _, v := range values {
		if v.IsMissing() {
			v = models.Missing()
		}
		i, ok := pos[v]
		if !ok {
			i = len(counts)
			pos[v] = i
			counts = append(counts, models.FrequencyCount{Value: v})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	s.logger.Debug("%s has %d distinct values", column, len(counts))
	return counts, nil
}
