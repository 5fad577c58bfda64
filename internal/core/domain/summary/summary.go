/*
Package summary defines core domain entities for frequency-count reports.
*/
package summary

/*
FieldCount represents one distinct field value and the number of records
carrying it. This is a core domain entity.
*/
type FieldCount struct {
	Value string
	Count int
}

// FrequencyTable lists every distinct value of one target field exactly
// once, ordered ascending by value.
type FrequencyTable []FieldCount

// Total returns the number of records the table accounts for.
func (ft FrequencyTable) Total() int {
	total := 0
	for _, fc := range ft {
		total += fc.Count
	}
	return total
}

// Report bundles the three frequency tables produced by one run.
type Report struct {
	Hostnames        FrequencyTable
	OperatingSystems FrequencyTable
	Vulnerabilities  FrequencyTable
}
