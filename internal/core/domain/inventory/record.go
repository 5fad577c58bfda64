/*
Package inventory defines the core domain entities for a tabular
server inventory export.
*/
package inventory

/*
Record represents one data row of the export. Fields holds the raw cell
values in column order. Rows shorter or longer than the header are valid;
they simply carry fewer or more fields. This is a core domain entity.
*/
type Record struct {
	Fields []string
}

// Field returns the raw value at position i and whether the record has a
// value there at all.
func (r Record) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.Fields) {
		return "", false
	}
	return r.Fields[i], true
}

// Table is a fully parsed export: the header row plus all data rows.
type Table struct {
	Columns []string
	Records []Record
}
