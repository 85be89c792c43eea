package schema

import (
	"fmt"

	yaml "go.yaml.in/yaml/v4"
)

// DecodeBytes decodes a JSON-Schema-shaped fragment from YAML or JSON bytes
// into a Node. JSON input is handled transparently since JSON is a subset of
// YAML.
//
// Only the supported keyword subset is interpreted: type, enum, items,
// properties, required, and nullable. "integer" folds into the number
// primitive. Property declaration order is preserved. Unsupported or missing
// type values yield a KindInvalid node, which the engine later degrades to an
// opaque type; DecodeBytes only fails on input that is not a YAML mapping at
// all.
func DecodeBytes(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: decode: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("schema: decode: empty document")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema: decode: fragment must be a mapping, got %v", root.Tag)
	}
	return decodeMapping(root)
}

// decodeMapping builds a Node from a YAML mapping node.
func decodeMapping(m *yaml.Node) (*Node, error) {
	var (
		typeName string
		enum     []string
		items    *Node
		props    []Property
		required []string
		nullable bool
		hasEnum  bool
		hasProps bool
	)

	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i].Value
		val := m.Content[i+1]

		switch key {
		case "type":
			typeName = val.Value
		case "nullable":
			var b bool
			if err := val.Decode(&b); err == nil {
				nullable = b
			}
		case "enum":
			hasEnum = true
			for _, item := range val.Content {
				enum = append(enum, item.Value)
			}
		case "items":
			if val.Kind == yaml.MappingNode {
				decoded, err := decodeMapping(val)
				if err != nil {
					return nil, err
				}
				items = decoded
			}
		case "properties":
			hasProps = true
			props = []Property{}
			for j := 0; j+1 < len(val.Content); j += 2 {
				name := val.Content[j].Value
				propVal := val.Content[j+1]
				if propVal.Kind != yaml.MappingNode {
					props = append(props, Property{Name: name, Schema: &Node{}})
					continue
				}
				decoded, err := decodeMapping(propVal)
				if err != nil {
					return nil, err
				}
				props = append(props, Property{Name: name, Schema: decoded})
			}
		case "required":
			for _, item := range val.Content {
				required = append(required, item.Value)
			}
		}
	}

	// enum wins over the declared base type
	if hasEnum {
		return &Node{Kind: KindEnum, Enum: enum, Nullable: nullable}, nil
	}

	switch typeName {
	case "string":
		return &Node{Kind: KindPrimitive, Primitive: PrimitiveString, Nullable: nullable}, nil
	case "number", "integer":
		return &Node{Kind: KindPrimitive, Primitive: PrimitiveNumber, Nullable: nullable}, nil
	case "boolean":
		return &Node{Kind: KindPrimitive, Primitive: PrimitiveBoolean, Nullable: nullable}, nil
	case "array":
		// items may legitimately be absent; the engine treats that as a
		// malformed array and degrades it
		return &Node{Kind: KindArray, Items: items, Nullable: nullable}, nil
	case "object":
		n := &Node{Kind: KindObject, Properties: props, Required: required, Nullable: nullable}
		if !hasProps {
			n.Properties = nil
		}
		return n, nil
	default:
		return &Node{Nullable: nullable}, nil
	}
}
