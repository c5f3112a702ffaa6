package records

// Record is one row of a standard: field name to value. Keys are always a
// subset of the owning RecordSet's field names.
type Record map[string]Value

// RecordSet is the uniform tabular view of one standard's data file:
// records in source order plus the union of field names in first-seen
// order.
type RecordSet struct {
	StandardID string
	Fields     []string
	Records    []Record
}

// Statistics summarizes a RecordSet.
type Statistics struct {
	RecordCount int `json:"record_count"`
	FieldCount  int `json:"field_count"`
}

// Stats computes record and field counts. Pure, no error cases.
func (rs *RecordSet) Stats() Statistics {
	return Statistics{
		RecordCount: len(rs.Records),
		FieldCount:  len(rs.Fields),
	}
}
