package records

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// parseXML reads the token stream directly: the children of the document
// element become the elements of a root sequence, one per record, so XML
// flows through the same normalization as a YAML or JSON list. Within a
// record element, attributes come first and child elements follow, both in
// document order. All XML scalars are strings.
func parseXML(content []byte) (*docNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("no document element")
			}
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		root, err := readXMLElement(dec, start)
		if err != nil {
			return nil, err
		}
		seq := sequenceNode()
		for _, child := range root.children {
			seq.append(xmlElementNode(child))
		}
		return seq, nil
	}
}

// xmlElement is one raw element: attributes, child elements, and trimmed
// character data.
type xmlElement struct {
	name     string
	attrs    []xml.Attr
	children []*xmlElement
	text     string
}

func readXMLElement(dec *xml.Decoder, start xml.StartElement) (*xmlElement, error) {
	el := &xmlElement{name: start.Name.Local, attrs: start.Attr}
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := readXMLElement(dec, t)
			if err != nil {
				return nil, err
			}
			el.children = append(el.children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			el.text = strings.TrimSpace(text.String())
			return el, nil
		}
	}
}

// xmlElementNode converts an element to a document node. An element with
// neither attributes nor child elements reduces to its text; otherwise it
// becomes a mapping of attributes and children, with any leftover text
// under a value key.
func xmlElementNode(el *xmlElement) *docNode {
	if len(el.attrs) == 0 && len(el.children) == 0 {
		return scalarNode(StringValue(el.text))
	}

	m := mappingNode()
	for _, attr := range el.attrs {
		m.put(attr.Name.Local, scalarNode(StringValue(attr.Value)))
	}
	for _, child := range el.children {
		m.put(child.name, xmlElementNode(child))
	}
	if el.text != "" {
		if _, exists := m.get(valueField); !exists {
			m.put(valueField, scalarNode(StringValue(el.text)))
		}
	}
	return m
}
