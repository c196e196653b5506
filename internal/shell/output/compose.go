package output

import (
	"bytes"
	"context"
	"fmt"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"
)

// MergeCompose adds the labels to service in a docker-compose document and
// returns the updated document. Existing labels with the same key are
// replaced in place; the rest of the document, including comments, key
// order and short-form syntax, is written back as it was.
func MergeCompose(content []byte, workingDir, service string, lines []string) ([]byte, error) {
	project, err := loadCompose(content, workingDir)
	if err != nil {
		return nil, err
	}
	if _, ok := project.Services[service]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, service)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCompose, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidCompose)
	}

	svcNode := mappingValue(mappingValue(doc.Content[0], "services"), service)
	if svcNode == nil {
		// Defined through include or extends, not in this file.
		return nil, fmt.Errorf("%w: %q is not defined in this file", ErrServiceNotFound, service)
	}
	ensureMapping(svcNode)
	if svcNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: service %q is not a mapping", ErrInvalidCompose, service)
	}

	labels := mappingValue(svcNode, "labels")
	if labels == nil {
		labels = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		svcNode.Content = append(svcNode.Content, stringNode("labels"), labels)
	}
	ensureMapping(labels)

	switch labels.Kind {
	case yaml.MappingNode:
		for _, line := range lines {
			key, value := splitLabel(line)
			setMappingLabel(labels, key, value)
		}
	case yaml.SequenceNode:
		for _, line := range lines {
			key, _ := splitLabel(line)
			setSequenceLabel(labels, key, line)
		}
	default:
		return nil, fmt.Errorf("%w: labels of %q must be a mapping or a list", ErrInvalidCompose, service)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCompose, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCompose, err)
	}
	return buf.Bytes(), nil
}

// loadCompose parses and validates the document with compose-go. The
// result is only inspected, never written back.
func loadCompose(content []byte, workingDir string) (*types.Project, error) {
	var dict map[string]interface{}
	if err := yaml.Unmarshal(content, &dict); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCompose, err)
	}
	if dict == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidCompose)
	}

	project, err := loader.LoadWithContext(context.Background(), types.ConfigDetails{
		WorkingDir: workingDir,
		ConfigFiles: []types.ConfigFile{
			{
				Content: content,
				Config:  dict,
			},
		},
	}, func(opts *loader.Options) {
		opts.SetProjectName("labelgen", false)
		opts.SkipInterpolation = true
		opts.SkipNormalization = true
		opts.ResolvePaths = false
		opts.SkipValidation = true
		opts.SkipConsistencyCheck = true
		opts.SkipExtends = true
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCompose, err)
	}
	return project, nil
}

// =============================================================================
// YAML Node Helpers
// =============================================================================

// mappingValue returns the value node for key, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// ensureMapping turns an empty value (`web:` or `labels:`) into a mapping.
func ensureMapping(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		n.Kind = yaml.MappingNode
		n.Tag = "!!map"
		n.Value = ""
	}
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func setMappingLabel(labels *yaml.Node, key, value string) {
	for i := 0; i+1 < len(labels.Content); i += 2 {
		if labels.Content[i].Value == key {
			labels.Content[i+1] = stringNode(value)
			return
		}
	}
	labels.Content = append(labels.Content, stringNode(key), stringNode(value))
}

func setSequenceLabel(labels *yaml.Node, key, line string) {
	for i, item := range labels.Content {
		if itemKey, _ := splitLabel(item.Value); itemKey == key {
			labels.Content[i] = stringNode(line)
			return
		}
	}
	labels.Content = append(labels.Content, stringNode(line))
}
