/*
Package sqltable reads dataset tables from SQL databases and writes
classified tables back to them.

SQLite3 databases (through github.com/mattn/go-sqlite3) and PostgreSQL
databases (through github.com/lib/pq) are supported. Every column of a
query result is read as a categorical value, NULL values are rejected.
*/
package sqltable

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/pbanos/id3/dataset"
)

const (
	// SQLite3Driver is the database/sql driver name for SQLite3 databases.
	SQLite3Driver = "sqlite3"
	// PostgreSQLDriver is the database/sql driver name for PostgreSQL databases.
	PostgreSQLDriver = "postgres"
	// DefaultTableName is the name of the table read when no query is given.
	DefaultTableName = "samples"
	/*
		MaxRowInsertionsPerStatement is the maximum number of rows that are
		inserted with a single insert command by WriteTable. Writing more will
		result in making more insertion commands.
	*/
	MaxRowInsertionsPerStatement = 10
)

/*
DB is a database/sql database along with the name of the driver it was opened
with, which determines the SQL dialect used to write on it.
*/
type DB struct {
	*sql.DB
	driver string
}

/*
IsDataSource takes a path or URL and returns whether it points to a database
this package can open: a PostgreSQL connection URL or a SQLite3 (.db) file.
*/
func IsDataSource(dsn string) bool {
	return isPostgreSQL(dsn) || strings.HasSuffix(dsn, ".db")
}

/*
Open takes a PostgreSQL connection URL or a path to an SQLite3 database file
and a limit to the number of connections opened at a time (0 meaning no
limit) and returns a DB or an error if it cannot be opened.
*/
func Open(dsn string, maxConns int) (*DB, error) {
	driver := SQLite3Driver
	if isPostgreSQL(dsn) {
		driver = PostgreSQLDriver
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %v", driver, err)
	}
	db.SetMaxOpenConns(maxConns)
	return &DB{db, driver}, nil
}

/*
Driver returns the name of the driver the DB was opened with.
*/
func (db *DB) Driver() string {
	return db.driver
}

/*
ReadTable takes a context, an SQL query and the name of a label column and
returns a dataset.Table with the values of every other column in the query
result and a slice with the values of the label column, or an error.
An empty query reads the whole DefaultTableName table. An empty label takes
every column as a feature and returns nil labels.
*/
func (db *DB) ReadTable(ctx context.Context, query, label string) (*dataset.Table, []string, error) {
	if query == "" {
		query = fmt.Sprintf(`SELECT * FROM "%s"`, DefaultTableName)
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("querying samples: %v", err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("reading result columns: %v", err)
	}
	labelColumn := -1
	features := make([]string, 0, len(columns))
	for i, c := range columns {
		if label != "" && c == label {
			labelColumn = i
			continue
		}
		features = append(features, c)
	}
	if label != "" && labelColumn < 0 {
		return nil, nil, fmt.Errorf("reading result columns: no column for label %s", label)
	}
	var tableRows [][]string
	var labels []string
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for n := 0; rows.Next(); n++ {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning row %d: %v", n, err)
		}
		row := make([]string, 0, len(features))
		for i, v := range values {
			if !v.Valid {
				return nil, nil, fmt.Errorf("scanning row %d: NULL value for %s", n, columns[i])
			}
			if i == labelColumn {
				labels = append(labels, v.String)
				continue
			}
			row = append(row, v.String)
		}
		tableRows = append(tableRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading samples: %v", err)
	}
	t, err := dataset.NewTable(features, tableRows)
	if err != nil {
		return nil, nil, err
	}
	return t, labels, nil
}

/*
WriteTable takes a context, the name of a database table, a dataset.Table,
the name of a label and a slice of labels, one per row, and writes the rows
of the dataset table with their labels on the database table, creating it if
it does not exist. It returns an error if the table cannot be created or a
row cannot be inserted.
*/
func (db *DB) WriteTable(ctx context.Context, name string, t *dataset.Table, label string, labels []string) error {
	if len(labels) != t.Len() {
		return fmt.Errorf("writing table %s: %d labels for %d rows: %w", name, len(labels), t.Len(), dataset.ErrLabelCount)
	}
	qname, err := quote(name)
	if err != nil {
		return fmt.Errorf("writing table %s: %v", name, err)
	}
	columns := append(append([]string(nil), t.Features()...), label)
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i], err = quote(c)
		if err != nil {
			return fmt.Errorf("writing table %s: %v", name, err)
		}
	}
	var createStmt bytes.Buffer
	createStmt.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", qname))
	for i, c := range quoted {
		if i > 0 {
			createStmt.WriteString(", ")
		}
		createStmt.WriteString(fmt.Sprintf("%s TEXT NOT NULL", c))
	}
	createStmt.WriteString(")")
	_, err = db.ExecContext(ctx, createStmt.String())
	if err != nil {
		return fmt.Errorf("ensuring table %s exists: %v", name, err)
	}
	for chunkStart := 0; chunkStart < t.Len(); chunkStart += MaxRowInsertionsPerStatement {
		chunkEnd := chunkStart + MaxRowInsertionsPerStatement
		if chunkEnd > t.Len() {
			chunkEnd = t.Len()
		}
		err = db.insertRows(ctx, qname, quoted, t, labels, chunkStart, chunkEnd)
		if err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) insertRows(ctx context.Context, name string, columns []string, t *dataset.Table, labels []string, start, end int) error {
	var insertStmt bytes.Buffer
	insertStmt.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", name, strings.Join(columns, ", ")))
	args := make([]interface{}, 0, (end-start)*len(columns))
	for i := start; i < end; i++ {
		if i > start {
			insertStmt.WriteString(", ")
		}
		insertStmt.WriteString("(")
		for j, f := range t.Features() {
			v, err := t.Value(i, f)
			if err != nil {
				return err
			}
			args = append(args, v)
			if j > 0 {
				insertStmt.WriteString(", ")
			}
			insertStmt.WriteString(db.placeholder(len(args)))
		}
		args = append(args, labels[i])
		if len(t.Features()) > 0 {
			insertStmt.WriteString(", ")
		}
		insertStmt.WriteString(db.placeholder(len(args)))
		insertStmt.WriteString(")")
	}
	_, err := db.ExecContext(ctx, insertStmt.String(), args...)
	if err != nil {
		return fmt.Errorf("inserting rows %d to %d: %v", start, end-1, err)
	}
	return nil
}

func (db *DB) placeholder(n int) string {
	if db.driver == PostgreSQLDriver {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func quote(identifier string) (string, error) {
	if identifier == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(identifier, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, identifier)
	}
	return fmt.Sprintf(`"%s"`, identifier), nil
}

func isPostgreSQL(dsn string) bool {
	return strings.HasPrefix(dsn, "postgresql://") || strings.HasPrefix(dsn, "postgres://")
}
