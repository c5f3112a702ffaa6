package records

import "fmt"

// Field names introduced by normalization rather than the source file.
const (
	idField    = "_id"
	valueField = "value"
)

// normalize applies the root-shape policy to a parsed document:
//
//	sequence          -> one record per element
//	all-mapping map   -> one record per pair, keyed by _id
//	anything else     -> a single record
//
// Known envelopes are unwrapped first so files that nest their rows under a
// standard/data wrapper, or ship the columnar fields+records layout, land
// in the same place.
func normalize(root *docNode) *RecordSet {
	b := newBuilder()

	if root.kind == docMapping {
		root = envelopeTarget(root)
	}
	if root.kind == docMapping {
		if rows, fieldIDs, ok := columnarLayout(root); ok {
			for _, row := range rows {
				b.addColumnarRow(row, fieldIDs)
			}
			return b.build()
		}
	}

	switch root.kind {
	case docSequence:
		for _, item := range root.items {
			b.addElement(item)
		}
	case docMapping:
		switch {
		case len(root.keys) == 0:
			// empty document, no records
		case allMappings(root):
			for _, key := range root.keys {
				b.addKeyedRecord(key, root.fields[key])
			}
		default:
			b.addMappingRecord(root)
		}
	default:
		if !root.value.IsNull() {
			b.addElement(root)
		}
	}
	return b.build()
}

// envelopeTarget unwraps a standard/data or data wrapper mapping, returning
// root unchanged when neither applies. Unwrapping is single-level.
func envelopeTarget(root *docNode) *docNode {
	if std, ok := root.get("standard"); ok && std.kind == docMapping {
		if data, ok := std.get("data"); ok {
			return data
		}
	}
	if data, ok := root.get("data"); ok {
		return data
	}
	return root
}

// columnarLayout detects the fields+records form: a fields sequence
// declaring column ids and a records sequence of row arrays.
func columnarLayout(root *docNode) (rows []*docNode, fieldIDs []string, ok bool) {
	recs, hasRecords := root.get("records")
	flds, hasFields := root.get("fields")
	if !hasRecords || !hasFields || recs.kind != docSequence || flds.kind != docSequence {
		return nil, nil, false
	}

	fieldIDs = make([]string, len(flds.items))
	for i, fld := range flds.items {
		fieldIDs[i] = columnID(fld, i)
	}
	return recs.items, fieldIDs, true
}

// columnID extracts a column identifier from one fields entry: the id key
// of a mapping entry, the text of a scalar entry, or a positional fallback.
func columnID(fld *docNode, pos int) string {
	switch fld.kind {
	case docMapping:
		if id, ok := fld.get("id"); ok && id.kind == docScalar {
			if s := id.value.String(); s != "" {
				return s
			}
		}
	case docScalar:
		if s := fld.value.String(); s != "" {
			return s
		}
	}
	return fmt.Sprintf("field_%d", pos)
}

func allMappings(root *docNode) bool {
	for _, key := range root.keys {
		if root.fields[key].kind != docMapping {
			return false
		}
	}
	return true
}

// valueOf flattens a node to a field value: scalars pass through, nested
// composites reduce to their compact JSON text.
func valueOf(n *docNode) Value {
	if n.kind == docScalar {
		return n.value
	}
	return StringValue(n.jsonText())
}

// builder accumulates records while tracking field names in first-seen
// order, which keeps the subset invariant true by construction.
type builder struct {
	fields  []string
	seen    map[string]bool
	records []Record
}

func newBuilder() *builder {
	return &builder{seen: make(map[string]bool)}
}

func (b *builder) field(name string) {
	if !b.seen[name] {
		b.seen[name] = true
		b.fields = append(b.fields, name)
	}
}

// addElement adds one sequence element: mappings become records directly,
// everything else wraps as {value: <element>}.
func (b *builder) addElement(item *docNode) {
	if item.kind == docMapping {
		b.addMappingRecord(item)
		return
	}
	b.field(valueField)
	b.records = append(b.records, Record{valueField: valueOf(item)})
}

func (b *builder) addMappingRecord(m *docNode) {
	rec := make(Record, len(m.keys))
	for _, key := range m.keys {
		b.field(key)
		rec[key] = valueOf(m.fields[key])
	}
	b.records = append(b.records, rec)
}

// addKeyedRecord adds one pair of an all-mapping root, prefixing the record
// with its key under _id.
func (b *builder) addKeyedRecord(key string, m *docNode) {
	b.field(idField)
	rec := make(Record, len(m.keys)+1)
	rec[idField] = StringValue(key)
	for _, fieldName := range m.keys {
		if fieldName == idField {
			// The pair key owns _id; a same-named inner field loses.
			continue
		}
		b.field(fieldName)
		rec[fieldName] = valueOf(m.fields[fieldName])
	}
	b.records = append(b.records, rec)
}

// addColumnarRow zips one row with the declared column ids. Mapping rows
// pass through as records; surplus row values beyond the declared columns
// are dropped.
func (b *builder) addColumnarRow(row *docNode, fieldIDs []string) {
	switch row.kind {
	case docSequence:
		rec := make(Record, len(fieldIDs))
		for i, cell := range row.items {
			if i >= len(fieldIDs) {
				break
			}
			b.field(fieldIDs[i])
			rec[fieldIDs[i]] = valueOf(cell)
		}
		b.records = append(b.records, rec)
	case docMapping:
		b.addMappingRecord(row)
	default:
		b.addElement(row)
	}
}

func (b *builder) build() *RecordSet {
	return &RecordSet{Fields: b.fields, Records: b.records}
}
