package dialect

import (
	"fmt"
	"strings"
)

type MSSQLDialect struct{}

// Helper: MSSQL Driver (go-mssqldb) often prefers @p1, @p2 named parameters over ?
// especially when prepared statements are involved or simple Exec.

func (d *MSSQLDialect) TableExistsQuery() string {
	// Use @p1/@p2 for schema and table binding
	return `SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_NAME = @p2 AND TABLE_TYPE = 'BASE TABLE'`
}

func (d *MSSQLDialect) GetSchemaName(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}

func (d *MSSQLDialect) DropTableQuery(table string, cascade bool) string {
	// SQL Server has no CASCADE on DROP TABLE. Schema-bound dependents must be
	// dropped by the caller or the statement fails, which matches the fatal
	// error handling of the pipeline.
	return fmt.Sprintf("IF OBJECT_ID(N'%s', N'U') IS NOT NULL DROP TABLE %s", table, table)
}

func (d *MSSQLDialect) CreateTableQuery(table string, cols []string) string {
	return BuildCreateTable(table, cols, d.TextType())
}

func (d *MSSQLDialect) RenameTableQuery(oldName, newName string) string {
	return fmt.Sprintf("EXEC sp_rename '%s', '%s'", oldName, newName)
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) TextType() string {
	return "NVARCHAR(MAX)"
}

func (d *MSSQLDialect) GetLimitRowQuery(query string, limit int) string {
	// TOP needs to be injected after SELECT; assumes query starts with SELECT.
	return strings.Replace(query, "SELECT", fmt.Sprintf("SELECT TOP %d", limit), 1)
}
