package records

import "strings"

// SearchResult is the ordered subset of one RecordSet's records matching a
// query. Transient; recomputed per query, never cached.
type SearchResult struct {
	StandardID string
	Query      string
	Fields     []string
	Records    []Record
}

// Search returns the records where any field's string form contains query,
// case-insensitively, preserving record order. No ranking. An empty query
// returns every record unfiltered.
func (rs *RecordSet) Search(query string) *SearchResult {
	result := &SearchResult{
		StandardID: rs.StandardID,
		Query:      query,
		Fields:     rs.Fields,
	}

	if query == "" {
		result.Records = rs.Records
		return result
	}

	for _, rec := range rs.Records {
		if rec.Matches(query) {
			result.Records = append(result.Records, rec)
		}
	}
	return result
}

// Matches reports whether any field value contains query,
// case-insensitively.
func (r Record) Matches(query string) bool {
	needle := strings.ToLower(query)
	for _, v := range r {
		if strings.Contains(strings.ToLower(v.String()), needle) {
			return true
		}
	}
	return false
}
