package dialect

import (
	"fmt"
	"strings"
)

// GeneratePlaceholders creates a comma-separated string of bind placeholders.
// It takes the number of placeholders needed and a function that returns the
// placeholder for a given index.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// BuildCreateTable builds a CREATE TABLE statement where every column gets the
// same column type. CSV loads carry no type information, so destination tables
// are all-text and downstream transformations cast as needed.
func BuildCreateTable(table string, cols []string, colType string) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = fmt.Sprintf("%s %s", c, colType)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))
}

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}
