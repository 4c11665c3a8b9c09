package dialect

import (
	"fmt"
	"strings"
)

type OracleDialect struct{}

func (d *OracleDialect) TableExistsQuery() string {
	// Oracle doesn't have a "schema" string concept in quite the same way for
	// current user tables. USER_TABLES lists tables owned by the current user.
	// The first bind is a dummy clause to consume the schema argument passed
	// by standard callers. Unquoted Oracle identifiers are stored upper case.
	return `SELECT COUNT(*) FROM USER_TABLES WHERE :1 IS NOT NULL AND TABLE_NAME = UPPER(:2)`
}

func (d *OracleDialect) GetSchemaName(input string) string {
	if input == "" {
		// Non-empty so the dummy bind in TableExistsQuery is never NULL.
		return "USER"
	}
	return input
}

func (d *OracleDialect) DropTableQuery(table string, cascade bool) string {
	// No DROP TABLE IF EXISTS in Oracle; swallow ORA-00942 (table does not
	// exist) inside a PL/SQL block instead.
	stmt := fmt.Sprintf("DROP TABLE %s", table)
	if cascade {
		stmt += " CASCADE CONSTRAINTS"
	}
	return fmt.Sprintf(
		"BEGIN EXECUTE IMMEDIATE '%s'; EXCEPTION WHEN OTHERS THEN IF SQLCODE != -942 THEN RAISE; END IF; END;",
		stmt)
}

func (d *OracleDialect) CreateTableQuery(table string, cols []string) string {
	return BuildCreateTable(table, cols, d.TextType())
}

func (d *OracleDialect) RenameTableQuery(oldName, newName string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s", oldName, newName)
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *OracleDialect) Placeholder(index int) string {
	// Oracle uses :1, :2, etc. (1-based index)
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) TextType() string {
	// VARCHAR2 rather than CLOB so loaded columns stay comparable and indexable.
	return "VARCHAR2(4000)"
}

func (d *OracleDialect) GetLimitRowQuery(query string, limit int) string {
	return fmt.Sprintf("SELECT * FROM (%s) WHERE ROWNUM <= %d", query, limit)
}
