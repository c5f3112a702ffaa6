// Package records implements the standard record store: it loads one
// standard's data file (XML, YAML, or JSON) into a uniform tabular
// RecordSet and provides substring search and summary statistics over it.
//
// All three parsers produce the same intermediate document shape, so the
// normalization policy that turns a document into records is format
// independent:
//
//   - a root sequence yields one Record per element, wrapping non-mapping
//     elements as {value: <element>};
//   - a root mapping whose values are all mappings yields one Record per
//     key/value pair with a leading _id field holding the key;
//   - anything else becomes a single Record.
//
// Before normalization, known envelope shapes are unwrapped: a
// standard/data or data wrapper mapping, and the columnar fields+records
// layout where each row array is zipped with the declared field ids.
//
// Field names are collected across records in first-seen order; every
// Record's keys are a subset of the RecordSet's field names. Values are a
// tagged union over string, number, boolean, and null; numbers keep the
// lexical form the source file used, and nested composites at a field
// position are reduced to their compact JSON text.
package records
