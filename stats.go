package ldharvest

import "sort"

// maxSampleFields caps the field names included in a sample preview.
const maxSampleFields = 10

// Summary describes the contents of a finished output file, built by
// re-reading what was actually persisted rather than trusting run counters.
type Summary struct {
	// Records is the number of decodable output lines.
	Records int

	// TypeCounts maps each declared type to its record count. Every type of
	// a multi-type record is counted once, so the counts can sum to more
	// than Records.
	TypeCounts map[string]int

	// Sample previews the first record, nil when the output is empty.
	Sample *Sample
}

// Sample is a short preview of a single record.
type Sample struct {
	Type   string
	Name   string
	Fields []string // first field names in sorted order
	Total  int      // total number of fields on the record
}

// Summarize builds a Summary over re-read output records.
func Summarize(records []Record) *Summary {
	s := &Summary{
		Records:    len(records),
		TypeCounts: make(map[string]int),
	}

	for _, rec := range records {
		types := rec.Types()
		if len(types) == 0 {
			s.TypeCounts["Unknown"]++
			continue
		}
		for _, t := range types {
			s.TypeCounts[t]++
		}
	}

	if len(records) > 0 {
		first := records[0]
		fields := make([]string, 0, len(first))
		for k := range first {
			fields = append(fields, k)
		}
		sort.Strings(fields)

		total := len(fields)
		if len(fields) > maxSampleFields {
			fields = fields[:maxSampleFields]
		}
		s.Sample = &Sample{
			Type:   first.DisplayType(),
			Name:   first.DisplayName(),
			Fields: fields,
			Total:  total,
		}
	}

	return s
}
