package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"ge-pipeline/internal/dialect"
	"ge-pipeline/internal/logger"

	"github.com/xo/dburl"
)

// Conn wraps an open database handle together with the dialect matching its
// driver. All pipeline steps that touch the warehouse go through it.
type Conn struct {
	DB      *sql.DB
	Dialect dialect.Dialect
	Driver  string
	Schema  string

	log logger.Logger
}

// Open parses a database URL (postgres://..., mysql://..., sqlserver://...,
// oracle://...), opens a connection with the matching registered driver and
// verifies it with a ping. An unreachable database is a fatal condition for
// every caller, so errors are returned as-is.
func Open(log logger.Logger, dbURL string) (*Conn, error) {
	u, err := dburl.Parse(dbURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing database URL %q: %w", dbURL, err)
	}

	d := dialect.GetDialect(u.Driver)

	db, err := sql.Open(u.Driver, u.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	conn := &Conn{
		DB:      db,
		Dialect: d,
		Driver:  u.Driver,
		Schema:  d.GetSchemaName(""),
		log:     log,
	}

	// MySQL: the schema is whatever database the URL selected.
	if u.Driver == "mysql" {
		if err := db.QueryRow("SELECT DATABASE()").Scan(&conn.Schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to get database name: %w", err)
		}
	}

	log.Debug("opened ", u.Driver, " connection, schema ", conn.Schema)
	return conn, nil
}

// Close releases the underlying database handle.
func (c *Conn) Close() error {
	return c.DB.Close()
}

// DropTable drops the named table if it exists. With cascade set, dependent
// objects go with it on dialects that support it.
func (c *Conn) DropTable(ctx context.Context, table string, cascade bool) error {
	query := c.Dialect.DropTableQuery(table, cascade)
	c.log.Debug("exec: ", query)
	if _, err := c.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

// RenameTable renames oldName to newName. The target name must be free; the
// caller is expected to have dropped any prior holder first.
func (c *Conn) RenameTable(ctx context.Context, oldName, newName string) error {
	query := c.Dialect.RenameTableQuery(oldName, newName)
	c.log.Debug("exec: ", query)
	if _, err := c.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to rename table %s to %s: %w", oldName, newName, err)
	}
	return nil
}

// TableExists reports whether the named table exists in the connection's schema.
func (c *Conn) TableExists(ctx context.Context, table string) (bool, error) {
	var count int
	err := c.DB.QueryRowContext(ctx, c.Dialect.TableExistsQuery(), c.Schema, table).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return count > 0, nil
}

// RowCount returns the number of rows in the named table.
func (c *Conn) RowCount(ctx context.Context, table string) (int, error) {
	var count int
	err := c.DB.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

// PreviewRows returns the column names and up to limit rows of the named
// table, rendered as strings (NULL for SQL nulls). Used for the row preview
// ahead of validation.
func (c *Conn) PreviewRows(ctx context.Context, table string, limit int) ([]string, [][]string, error) {
	query := c.Dialect.GetLimitRowQuery(fmt.Sprintf("SELECT * FROM %s", table), limit)
	c.log.Debug("query: ", query)

	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to preview %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	var preview [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan preview row of %s: %w", table, err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		preview = append(preview, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to preview %s: %w", table, err)
	}
	return cols, preview, nil
}

// ReplaceTable replaces the named table with the supplied columns and rows:
// drop if exists (cascade), then create and insert inside one transaction so a
// half-loaded table never commits. The drop itself auto-commits, so a failure
// between drop and commit leaves the table missing rather than stale.
// onRow, if non-nil, is called once per inserted row.
func (c *Conn) ReplaceTable(ctx context.Context, table string, cols []string, rows [][]string, onRow func()) error {
	if err := c.DropTable(ctx, table, true); err != nil {
		return err
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createQuery := c.Dialect.CreateTableQuery(table, cols)
	c.log.Debug("exec: ", createQuery)
	if _, err := tx.ExecContext(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	insertQuery := c.Dialect.InsertQuery(table, cols)
	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", table, err)
	}
	defer stmt.Close()

	values := make([]interface{}, len(cols))
	for i, row := range rows {
		if len(row) != len(cols) {
			return fmt.Errorf("table %s row %d has %d fields, expected %d", table, i+1, len(row), len(cols))
		}
		for j, v := range row {
			values[j] = v
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("failed to insert row %d into %s: %w", i+1, table, err)
		}
		if onRow != nil {
			onRow()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load of %s: %w", table, err)
	}
	return nil
}
