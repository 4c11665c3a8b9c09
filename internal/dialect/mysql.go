package dialect

import (
	"fmt"
	"strings"
)

type MysqlDialect struct{}

func (d *MysqlDialect) TableExistsQuery() string {
	return `SELECT COUNT(*) FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?`
}

func (d *MysqlDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}

func (d *MysqlDialect) DropTableQuery(table string, cascade bool) string {
	// MySQL has no DROP TABLE ... CASCADE; dependent views are left dangling
	// and fail on next access instead.
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

func (d *MysqlDialect) CreateTableQuery(table string, cols []string) string {
	return BuildCreateTable(table, cols, d.TextType())
}

func (d *MysqlDialect) RenameTableQuery(oldName, newName string) string {
	return fmt.Sprintf("RENAME TABLE %s TO %s", oldName, newName)
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) TextType() string {
	return "TEXT"
}

func (d *MysqlDialect) GetLimitRowQuery(query string, limit int) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}
