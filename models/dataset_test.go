package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_IsMissing(t *testing.T) {
	assert.True(t, Missing().IsMissing())
	assert.True(t, String("").IsMissing())
	assert.False(t, String(" ").IsMissing())
	assert.False(t, Number(0).IsMissing())
	assert.True(t, Number(math.NaN()).IsMissing())
	assert.False(t, Number(math.Inf(1)).IsMissing())
}

func TestValue_Float(t *testing.T) {
	f, ok := Number(21.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 21.5, f)

	f, ok = Missing().Float()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(f))

	_, ok = String("Ford").Float()
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "2005", Number(2005).String())
	assert.Equal(t, "1.8", Number(1.8).String())
	assert.Equal(t, "NaN", Missing().String())
	assert.Equal(t, "Ford", String("Ford").String())
}

func TestDataset_Column(t *testing.T) {
	ds := NewDataset([]string{"year", "make"}, [][]Value{
		{Number(2005), String("Ford")},
		{Number(2010), String("Toyota")},
	})

	col, err := ds.Column("make")
	require.NoError(t, err)
	assert.Equal(t, []Value{String("Ford"), String("Toyota")}, col)

	_, err = ds.Column("model")
	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "model", mce.Column)
	assert.Contains(t, err.Error(), `"model"`)
}

func TestDataset_CloneIsIndependent(t *testing.T) {
	ds := NewDataset([]string{"a"}, [][]Value{{Missing()}})
	cp := ds.Clone()
	cp.Set(0, 0, Number(0))

	assert.True(t, ds.Cell(0, 0).IsMissing())
	assert.Equal(t, Number(0), cp.Cell(0, 0))
}

func TestDataset_ReorderAndHead(t *testing.T) {
	ds := NewDataset([]string{"a"}, [][]Value{{Number(1)}, {Number(2)}, {Number(3)}})

	view := ds.Reorder([]int{2, 0, 1})
	col, _ := view.Column("a")
	assert.Equal(t, []Value{Number(3), Number(1), Number(2)}, col)

	assert.Equal(t, 2, ds.Head(2).Len())
	assert.Equal(t, 3, ds.Head(10).Len())
	assert.Equal(t, 0, ds.Head(-1).Len())
}
