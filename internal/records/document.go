package records

import (
	"encoding/json"
	"strings"
)

// docKind discriminates the node shapes of a parsed document.
type docKind int

const (
	docScalar docKind = iota
	docMapping
	docSequence
)

// docNode is the format-independent parse tree every parser produces, so
// normalization never sees format-specific structure. Mapping nodes keep
// their keys in source order; a duplicate key keeps its first position and
// takes the last value.
type docNode struct {
	kind   docKind
	value  Value
	keys   []string
	fields map[string]*docNode
	items  []*docNode
}

func scalarNode(v Value) *docNode { return &docNode{kind: docScalar, value: v} }

func sequenceNode() *docNode { return &docNode{kind: docSequence} }

func mappingNode() *docNode {
	return &docNode{kind: docMapping, fields: make(map[string]*docNode)}
}

func (n *docNode) put(key string, child *docNode) {
	if _, exists := n.fields[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = child
}

func (n *docNode) get(key string) (*docNode, bool) {
	child, ok := n.fields[key]
	return child, ok
}

func (n *docNode) append(child *docNode) {
	n.items = append(n.items, child)
}

// jsonText renders the node as compact JSON, preserving mapping key order.
// Used to flatten composite values that sit at a record field position.
func (n *docNode) jsonText() string {
	var sb strings.Builder
	n.writeJSON(&sb)
	return sb.String()
}

func (n *docNode) writeJSON(sb *strings.Builder) {
	switch n.kind {
	case docSequence:
		sb.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.writeJSON(sb)
		}
		sb.WriteByte(']')
	case docMapping:
		sb.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			keyJSON, _ := json.Marshal(key)
			sb.Write(keyJSON)
			sb.WriteByte(':')
			n.fields[key].writeJSON(sb)
		}
		sb.WriteByte('}')
	default:
		valueJSON, err := json.Marshal(n.value)
		if err != nil {
			sb.WriteString("null")
			return
		}
		sb.Write(valueJSON)
	}
}
