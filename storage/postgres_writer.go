package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"vehicle-wrangler/models"
	"vehicle-wrangler/utils"
)

const (
	pgNumeric = "DOUBLE PRECISION"
	pgText    = "TEXT"
)

// PostgresWriter stores cleaned datasets in PostgreSQL
type PostgresWriter struct {
	db     *sql.DB
	table  string
	logger *utils.Logger
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(ctx context.Context, connStr, table string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, table: table, logger: logger}, nil
}

// columnTypes picks DOUBLE PRECISION for columns holding only numbers or
// missing cells and TEXT for everything else, including imputed text columns
func columnTypes(ds *models.Dataset) []string {
	width := len(ds.Columns())
	types := make([]string, width)
	for c := 0; c < width; c++ {
		types[c] = pgNumeric
		for r := 0; r < ds.Len(); r++ {
			v := ds.Cell(r, c)
			if v.Kind == models.KindString && v.Str != "" {
				types[c] = pgText
				break
			}
		}
	}
	return types
}

// copyColumns maps dataset headers to unique table column names. Blank
// headers get a positional name; duplicates and clashes with run_id or
// row_num get a numeric suffix.
func copyColumns(header []string) []string {
	used := map[string]bool{"run_id": true, "row_num": true}
	out := make([]string, len(header))
	for i, name := range header {
		base := strings.TrimSpace(name)
		if base == "" {
			base = fmt.Sprintf("column_%d", i+1)
		}
		candidate := base
		for n := 2; used[candidate]; n++ {
			candidate = fmt.Sprintf("%s_%d", base, n)
		}
		used[candidate] = true
		out[i] = candidate
	}
	return out
}

// createTableSQL builds the DDL for a table with the given data columns
func createTableSQL(table string, columns, types []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", pq.QuoteIdentifier(table))
	b.WriteString("\trun_id  UUID    NOT NULL,\n")
	b.WriteString("\trow_num INTEGER NOT NULL")
	for i, col := range columns {
		fmt.Fprintf(&b, ",\n\t%s %s", pq.QuoteIdentifier(col), types[i])
	}
	b.WriteString(",\n\tPRIMARY KEY (run_id, row_num)\n);")
	return b.String()
}

// CreateTable creates the target table from the dataset header if it doesn't exist
func (w *PostgresWriter) CreateTable(ctx context.Context, ds *models.Dataset) error {
	query := createTableSQL(w.table, copyColumns(ds.Columns()), columnTypes(ds))
	if _, err := w.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table '%s' is ready", w.table)
	return nil
}

// rowArgs converts one row to COPY arguments matching types
func rowArgs(runID string, rowNum int, row []models.Value, types []string) []interface{} {
	args := make([]interface{}, 0, len(row)+2)
	args = append(args, runID, rowNum)
	for c, v := range row {
		if v.IsMissing() {
			args = append(args, nil)
			continue
		}
		if types[c] == pgText {
			args = append(args, cellString(v))
			continue
		}
		args = append(args, cellAny(v))
	}
	return args
}

// SaveDataset creates the table and bulk-loads every row with COPY in a single transaction
func (w *PostgresWriter) SaveDataset(ctx context.Context, runID string, ds *models.Dataset) (err error) {
	if ds.Len() == 0 {
		return nil
	}
	if err := w.CreateTable(ctx, ds); err != nil {
		return err
	}
	types := columnTypes(ds)

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	columns := append([]string{"run_id", "row_num"}, copyColumns(ds.Columns())...)
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(w.table, columns...))
	if err != nil {
		return fmt.Errorf("failed to prepare COPY: %w", err)
	}

	for r := 0; r < ds.Len(); r++ {
		if _, err = stmt.ExecContext(ctx, rowArgs(runID, r, ds.Row(r), types)...); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("failed to copy row %d: %w", r, err)
		}
	}
	if _, err = stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("failed to flush COPY: %w", err)
	}
	if err = stmt.Close(); err != nil {
		return fmt.Errorf("failed to close COPY: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Copied %d rows into PostgreSQL table %s (run %s)", ds.Len(), w.table, runID)
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() error {
	if w.db != nil {
		return w.db.Close()
	}
	return nil
}
