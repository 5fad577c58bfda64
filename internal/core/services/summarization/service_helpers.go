package summarization

import (
	"sort"

	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/domain/summary"
)

// countField increments the accumulator for the record's value at index.
// Records with no value there (short row or empty cell) are skipped.
func countField(counts map[string]int, record inventory.Record, index int) {
	value, ok := record.Field(index)
	if !ok || value == "" {
		return
	}
	counts[value]++
}

// toFrequencyTable flattens an accumulator into a table ordered ascending
// by value.
func toFrequencyTable(counts map[string]int) summary.FrequencyTable {
	table := make(summary.FrequencyTable, 0, len(counts))
	for value, count := range counts {
		table = append(table, summary.FieldCount{Value: value, Count: count})
	}
	sort.Slice(table, func(i, j int) bool {
		return table[i].Value < table[j].Value
	})
	return table
}
