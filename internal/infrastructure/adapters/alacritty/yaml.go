package alacritty

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// setYAMLFamily sets font.normal.family through the node tree so comments
// and key order are kept.
func setYAMLFamily(data []byte, family string) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{newMapping()}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level is not a mapping")
	}

	font, err := childMapping(root.Content[0], "font")
	if err != nil {
		return nil, err
	}
	normal, err := childMapping(font, "normal")
	if err != nil {
		return nil, err
	}
	if current := lookup(normal, "family"); current != nil && current.Kind == yaml.ScalarNode && current.Value == family && data != nil {
		return data, nil
	}
	setString(normal, "family", family)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// childMapping returns the mapping under key, creating it when absent or null.
func childMapping(parent *yaml.Node, key string) (*yaml.Node, error) {
	child := lookup(parent, key)
	switch {
	case child == nil:
		child = newMapping()
		parent.Content = append(parent.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, child)
		return child, nil
	case child.Kind == yaml.MappingNode:
		return child, nil
	case child.Kind == yaml.ScalarNode && child.Tag == "!!null":
		*child = *newMapping()
		return child, nil
	default:
		return nil, fmt.Errorf("%s is not a mapping", key)
	}
}

func setString(mapping *yaml.Node, key, value string) {
	if node := lookup(mapping, key); node != nil {
		*node = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, LineComment: node.LineComment}
		return
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value})
}
