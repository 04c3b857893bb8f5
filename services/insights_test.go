package services

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-wrangler/models"
)

func yearsAndMakes(years []models.Value, makes []string) *models.Dataset {
	rows := make([][]models.Value, len(years))
	for i := range years {
		rows[i] = []models.Value{years[i], models.String(makes[i]), models.Number(float64(i))}
	}
	return models.NewDataset([]string{"year", "make", "id"}, rows)
}

func TestInsightService_SortBy_YearDescending(t *testing.T) {
	ds := yearsAndMakes(
		[]models.Value{models.Number(2005), models.Number(2010), models.Number(2005)},
		[]string{"Ford", "Ford", "Toyota"},
	)

	sorted, err := NewInsightService(testLogger()).SortBy(ds, "year", false)
	require.NoError(t, err)

	years, _ := sorted.Column("year")
	assert.Equal(t, []models.Value{models.Number(2010), models.Number(2005), models.Number(2005)}, years)
	ids, _ := sorted.Column("id")
	assert.Equal(t, []models.Value{models.Number(1), models.Number(0), models.Number(2)}, ids, "ties keep row order")

	orig, _ := ds.Column("id")
	assert.Equal(t, []models.Value{models.Number(0), models.Number(1), models.Number(2)}, orig, "source must not be reordered")
}

func TestInsightService_SortBy_Permutation(t *testing.T) {
	years := []models.Value{
		models.Number(1999), models.Number(2021), models.Missing(), models.Number(2003),
		models.Number(2021), models.Number(1984), models.Number(2010),
	}
	makes := []string{"a", "b", "c", "d", "e", "f", "g"}
	ds := yearsAndMakes(years, makes)

	sorted, err := NewInsightService(testLogger()).SortBy(ds, "year", false)
	require.NoError(t, err)
	require.Equal(t, ds.Len(), sorted.Len())

	ids, _ := sorted.Column("id")
	seen := make(map[float64]bool)
	for _, v := range ids {
		seen[v.Num] = true
	}
	assert.Len(t, seen, ds.Len())

	col, _ := sorted.Column("year")
	for i := 1; i < len(col); i++ {
		if col[i].IsMissing() {
			continue
		}
		assert.GreaterOrEqual(t, col[i-1].Num, col[i].Num)
	}
	assert.True(t, col[len(col)-1].IsMissing(), "missing years sort last")
}

func TestInsightService_SortBy_NaNYearsLast(t *testing.T) {
	ds, err := NewLoader(testLogger()).Read(strings.NewReader("year,make\nNAN,a\n2005,b\nNAN,c\n2010,d\n"))
	require.NoError(t, err)

	svc := NewInsightService(testLogger())
	sorted, err := svc.SortBy(ds, "year", false)
	require.NoError(t, err)

	years, _ := sorted.Column("year")
	assert.Equal(t, []models.Value{models.Number(2010), models.Number(2005), models.Missing(), models.Missing()}, years)
	makes, _ := sorted.Column("make")
	assert.Equal(t, []models.Value{models.String("d"), models.String("b"), models.String("a"), models.String("c")}, makes)

	nulls, err := svc.NullCounts(ds)
	require.NoError(t, err)
	assert.Equal(t, []models.ColumnCount{{Column: "year", Count: 2}, {Column: "make", Count: 0}}, nulls)
}

func TestInsightService_NaNNumbersCountAsMissing(t *testing.T) {
	ds := yearsAndMakes(
		[]models.Value{models.Number(math.NaN()), models.Number(2010), models.Missing(), models.Number(math.NaN())},
		[]string{"a", "b", "c", "d"},
	)
	svc := NewInsightService(testLogger())

	counts, err := svc.ValueCounts(ds, "year")
	require.NoError(t, err)
	assert.Equal(t, []models.FrequencyCount{
		{Value: models.Missing(), Count: 3},
		{Value: models.Number(2010), Count: 1},
	}, counts)

	sorted, err := svc.SortBy(ds, "year", false)
	require.NoError(t, err)
	ids, _ := sorted.Column("id")
	assert.Equal(t, []models.Value{models.Number(1), models.Number(0), models.Number(2), models.Number(3)}, ids)
}

func TestInsightService_SortBy_Ascending(t *testing.T) {
	ds := yearsAndMakes(
		[]models.Value{models.Number(2005), models.Number(2010), models.Number(1990)},
		[]string{"a", "b", "c"},
	)
	sorted, err := NewInsightService(testLogger()).SortBy(ds, "make", true)
	require.NoError(t, err)
	makes, _ := sorted.Column("make")
	assert.Equal(t, "a", makes[0].Str)

	sorted, err = NewInsightService(testLogger()).SortBy(ds, "year", true)
	require.NoError(t, err)
	years, _ := sorted.Column("year")
	assert.Equal(t, models.Number(1990), years[0])
}

func TestInsightService_SortBy_Errors(t *testing.T) {
	svc := NewInsightService(testLogger())

	ds := yearsAndMakes(
		[]models.Value{models.Number(2005), models.String("unknown")},
		[]string{"a", "b"},
	)
	_, err := svc.SortBy(ds, "year", false)
	assert.True(t, errors.Is(err, models.ErrTypeCoercion))

	_, err = svc.SortBy(ds, "price", false)
	var mce *models.MissingColumnError
	assert.True(t, errors.As(err, &mce))
}

func TestInsightService_ValueCounts_Make(t *testing.T) {
	ds := yearsAndMakes(
		[]models.Value{models.Number(2005), models.Number(2010), models.Number(2005)},
		[]string{"Ford", "Ford", "Toyota"},
	)

	counts, err := NewInsightService(testLogger()).ValueCounts(ds, "make")
	require.NoError(t, err)
	assert.Equal(t, []models.FrequencyCount{
		{Value: models.String("Ford"), Count: 2},
		{Value: models.String("Toyota"), Count: 1},
	}, counts)
}

func TestInsightService_ValueCounts_TiesAndMissing(t *testing.T) {
	ds := yearsAndMakes(
		[]models.Value{models.Number(2010), models.Missing(), models.Number(2005), models.Number(2005), models.Number(2010), models.Missing()},
		[]string{"Kia", "", "BMW", "Kia", "", "BMW"},
	)
	svc := NewInsightService(testLogger())

	years, err := svc.ValueCounts(ds, "year")
	require.NoError(t, err)
	assert.Equal(t, []models.FrequencyCount{
		{Value: models.Number(2010), Count: 2},
		{Value: models.Missing(), Count: 2},
		{Value: models.Number(2005), Count: 2},
	}, years)

	makes, err := svc.ValueCounts(ds, "make")
	require.NoError(t, err)
	total := 0
	for _, fc := range makes {
		total += fc.Count
	}
	assert.Equal(t, ds.Len(), total)
	assert.Equal(t, models.String("Kia"), makes[0].Value)
}

func TestInsightService_Info(t *testing.T) {
	ds := models.NewDataset(
		[]string{"year", "trany", "guzzler", "empty"},
		[][]models.Value{
			{models.Number(2005), models.String("Auto"), models.Number(0), models.Missing()},
			{models.Missing(), models.String("Manual"), models.String("G"), models.String("")},
		},
	)

	info := NewInsightService(testLogger()).Info(ds)
	assert.Equal(t, []models.ColumnInfo{
		{Column: "year", NonNull: 1, Type: "number"},
		{Column: "trany", NonNull: 2, Type: "string"},
		{Column: "guzzler", NonNull: 2, Type: "mixed"},
		{Column: "empty", NonNull: 0, Type: "empty"},
	}, info)
}
