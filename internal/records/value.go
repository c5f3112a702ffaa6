package records

import (
	"encoding/json"
	"strconv"
)

// ValueKind discriminates the shapes a field value can take.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
)

// Value is one field's content: a tagged union over string, number,
// boolean, and null, mirroring whatever the source file contained. Number
// values keep the lexical form the source used ("1.10" stays "1.10").
type Value struct {
	kind ValueKind
	text string
	b    bool
}

// Constructors for each case of the union. NumberValue takes the lexical
// form as it appeared in the source file.
func NullValue() Value             { return Value{kind: KindNull} }
func StringValue(s string) Value   { return Value{kind: KindString, text: s} }
func NumberValue(lex string) Value { return Value{kind: KindNumber, text: lex} }
func BoolValue(b bool) Value       { return Value{kind: KindBool, b: b} }

// Kind returns the active case of the union.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String returns the searchable text form: the scalar text for strings and
// numbers, true/false for booleans, and the empty string for null.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return ""
	default:
		return v.text
	}
}

// Bool returns the boolean content; ok is false for non-boolean values.
func (v Value) Bool() (b, ok bool) {
	return v.b, v.kind == KindBool
}

// Int64 parses the value as an integer. Base prefixes and digit
// separators in the source lexeme are honored ("0x1A", "1_000").
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(v.text, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float64 parses the value as a float.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// MarshalJSON renders the union with its native JSON type. Numbers are
// emitted verbatim when their lexical form is already valid JSON, otherwise
// re-encoded from the parsed value.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	case KindNumber:
		if json.Valid([]byte(v.text)) {
			return []byte(v.text), nil
		}
		if n, ok := v.Int64(); ok {
			return []byte(strconv.FormatInt(n, 10)), nil
		}
		if f, ok := v.Float64(); ok {
			return json.Marshal(f)
		}
		return json.Marshal(v.text)
	default:
		return json.Marshal(v.text)
	}
}
