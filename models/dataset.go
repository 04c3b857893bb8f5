package models

// Dataset is an ordered set of rows sharing one header.
// It is not safe for concurrent use while a stage mutates it.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// NewDataset builds a Dataset; every row must have len(columns) cells
func NewDataset(columns []string, rows [][]Value) *Dataset {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	return &Dataset{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    rows,
	}
}

// Columns returns the header in file order
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Len returns the number of rows
func (d *Dataset) Len() int { return len(d.rows) }

// HasColumn reports whether name is part of the header
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ColumnIndex resolves a column name to its position
func (d *Dataset) ColumnIndex(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return -1, &MissingColumnError{Column: name}
	}
	return i, nil
}

// Column copies out every cell of the named column, in row order
func (d *Dataset) Column(name string) ([]Value, error) {
	i, err := d.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(d.rows))
	for r, row := range d.rows {
		out[r] = row[i]
	}
	return out, nil
}

// Row returns row r. The slice aliases dataset storage.
func (d *Dataset) Row(r int) []Value { return d.rows[r] }

// Cell returns the value at row r, column c
func (d *Dataset) Cell(r, c int) Value { return d.rows[r][c] }

// Set overwrites the value at row r, column c
func (d *Dataset) Set(r, c int, v Value) { d.rows[r][c] = v }

// Clone deep-copies the dataset so the copy can be mutated independently
func (d *Dataset) Clone() *Dataset {
	rows := make([][]Value, len(d.rows))
	for i, row := range d.rows {
		rows[i] = append([]Value(nil), row...)
	}
	return NewDataset(d.columns, rows)
}

// Reorder returns a view whose rows follow order. Row cells are shared.
func (d *Dataset) Reorder(order []int) *Dataset {
	rows := make([][]Value, len(order))
	for i, r := range order {
		rows[i] = d.rows[r]
	}
	return &Dataset{columns: d.columns, index: d.index, rows: rows}
}

// Head returns a view over the first n rows
func (d *Dataset) Head(n int) *Dataset {
	if n < 0 {
		n = 0
	}
	if n > len(d.rows) {
		n = len(d.rows)
	}
	return &Dataset{columns: d.columns, index: d.index, rows: d.rows[:n]}
}
