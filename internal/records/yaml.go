package records

import (
	"gopkg.in/yaml.v3"
)

// parseYAML decodes content through the yaml.v3 node tree so mapping key
// order survives; plain map decoding would shuffle it.
func parseYAML(content []byte) (*docNode, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return scalarNode(NullValue()), nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 { // empty or comment-only input leaves a zero node
		return scalarNode(NullValue()), nil
	}
	return yamlNode(root), nil
}

func yamlNode(n *yaml.Node) *docNode {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return scalarNode(NullValue())
		}
		return yamlNode(n.Alias)
	case yaml.SequenceNode:
		seq := sequenceNode()
		for _, item := range n.Content {
			seq.append(yamlNode(item))
		}
		return seq
	case yaml.MappingNode:
		m := mappingNode()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
				keyNode = keyNode.Alias
			}
			m.put(keyNode.Value, yamlNode(n.Content[i+1]))
		}
		return m
	default:
		return scalarNode(yamlScalar(n))
	}
}

// yamlScalar classifies a scalar by its resolved tag. Numbers keep their
// lexical form; booleans go through Decode so YAML's spelling variants
// (yes/on/True) resolve the way the yaml package defines them.
func yamlScalar(n *yaml.Node) Value {
	switch n.Tag {
	case "!!null":
		return NullValue()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return StringValue(n.Value)
		}
		return BoolValue(b)
	case "!!int", "!!float":
		return NumberValue(n.Value)
	default:
		return StringValue(n.Value)
	}
}
