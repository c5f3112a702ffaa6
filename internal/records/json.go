package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// parseJSON walks the token stream instead of unmarshaling into maps so
// object key order survives. UseNumber keeps numbers in lexical form.
func parseJSON(content []byte) (*docNode, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	root, err := jsonValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}

	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %v after top-level value", tok)
	}
	return root, nil
}

func jsonValue(dec *json.Decoder) (*docNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return scalarNode(jsonScalar(tok)), nil
	}

	switch delim {
	case '{':
		m := mappingNode()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", keyTok)
			}
			child, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			m.put(key, child)
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, err
		}
		return m, nil
	case '[':
		seq := sequenceNode()
		for dec.More() {
			child, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			seq.append(child)
		}
		if _, err := dec.Token(); err != nil { // closing bracket
			return nil, err
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

func jsonScalar(tok json.Token) Value {
	switch t := tok.(type) {
	case string:
		return StringValue(t)
	case json.Number:
		return NumberValue(t.String())
	case bool:
		return BoolValue(t)
	default:
		return NullValue()
	}
}
