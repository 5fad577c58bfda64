package inventory

import "fmt"

/*
ColumnSelector identifies one target field of the table. Name, when set,
is matched against the header row; Position is the 0-based fallback used
when the name is empty or not present in the header.
*/
type ColumnSelector struct {
	Name     string `yaml:"name"`
	Position int    `yaml:"position"`
}

// Resolve returns the column index the selector points at for the given
// header. A named header cell wins over the positional fallback. An error
// means the table has no such column at all.
func (cs ColumnSelector) Resolve(columns []string) (int, error) {
	if cs.Name != "" {
		for i, col := range columns {
			if col == cs.Name {
				return i, nil
			}
		}
	}
	if cs.Position < 0 || cs.Position >= len(columns) {
		return 0, fmt.Errorf("no header column named %q and fallback position %d is outside the %d-column header", cs.Name, cs.Position, len(columns))
	}
	return cs.Position, nil
}
