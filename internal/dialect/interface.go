package dialect

// Dialect abstracts database-specific SQL for the pipeline's table operations.
type Dialect interface {
	// Metadata Queries
	TableExistsQuery() string // binds: schema, table name
	GetSchemaName(input string) string

	// DDL Generation
	DropTableQuery(table string, cascade bool) string
	CreateTableQuery(table string, cols []string) string
	RenameTableQuery(oldName, newName string) string

	// DML Generation
	InsertQuery(table string, cols []string) string
	Placeholder(index int) string // Returns ?, $1, @p1, etc.

	// Helpers
	TextType() string // column type used when loading raw CSV fields
	GetLimitRowQuery(query string, limit int) string
}
