package message

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML document into a message tree while keeping the
// document order of mapping keys, which encoding into a plain map would lose.
func (t *Tree) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := treeFromYAMLNode(node)
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}

func treeFromYAMLNode(node *yaml.Node) (Tree, error) {
	if node == nil {
		return Tree{}, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Tree{}, nil
		}
		return treeFromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return treeFromYAMLNode(node.Alias)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return Tree{}, nil
		}
		return Leaf(node.Value), nil
	case yaml.SequenceNode:
		entries := make([]Entry, 0, len(node.Content))
		for _, child := range node.Content {
			sub, err := treeFromYAMLNode(child)
			if err != nil {
				return Tree{}, err
			}
			entries = append(entries, Entry{Tree: sub})
		}
		return Tree{kind: kindList, entries: entries}, nil
	case yaml.MappingNode:
		entries := make([]Entry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			sub, err := treeFromYAMLNode(node.Content[i+1])
			if err != nil {
				return Tree{}, err
			}
			entries = append(entries, Entry{Key: node.Content[i].Value, Tree: sub})
		}
		return Tree{kind: kindMap, entries: entries}, nil
	default:
		return Tree{}, fmt.Errorf("message: unsupported YAML node kind %d at line %d", node.Kind, node.Line)
	}
}

// MarshalYAML emits the tree in its natural YAML shape: scalars for leaves,
// sequences for lists, ordered mappings for map nodes.
func (t Tree) MarshalYAML() (any, error) {
	return yamlNodeFromTree(t), nil
}

func yamlNodeFromTree(t Tree) *yaml.Node {
	switch t.kind {
	case kindLeaf:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.value}
	case kindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, entry := range t.entries {
			node.Content = append(node.Content, yamlNodeFromTree(entry.Tree))
		}
		return node
	case kindMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, entry := range t.entries {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key},
				yamlNodeFromTree(entry.Tree),
			)
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
