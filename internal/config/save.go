package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/zoo/internal/log"
)

// SaveValue sets the scalar at a dotted key (e.g. "output.format") in the
// config file, creating intermediate mappings as needed. Comments and the
// order of other keys are preserved.
func SaveValue(configPath, key, value string) error {
	path := strings.Split(key, ".")
	for _, part := range path {
		if part == "" {
			return fmt.Errorf("invalid config key %q", key)
		}
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // G304: user-selected config path
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config %s: %w", configPath, err)
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("config %s: top level is not a mapping", configPath)
	}

	if err := setScalar(doc.Content[0], path, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := writeAtomic(configPath, buf.Bytes()); err != nil {
		return err
	}
	log.Info(log.CatConfig, "Saved config value", "path", configPath, "key", key)
	return nil
}

// SaveRoster records the roster file in the config.
func SaveRoster(configPath, roster string) error {
	return SaveValue(configPath, "roster", roster)
}

// setScalar walks mapping along path and replaces or appends the final key.
func setScalar(mapping *yaml.Node, path []string, value string) error {
	key := path[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		node := mapping.Content[i+1]
		if len(path) == 1 {
			if node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode {
				return fmt.Errorf("%q is not a scalar", key)
			}
			mapping.Content[i+1] = scalarNode(value, node)
			return nil
		}
		if node.Kind != yaml.MappingNode {
			return fmt.Errorf("%q is not a mapping", key)
		}
		return setScalar(node, path[1:], value)
	}

	if len(path) == 1 {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			scalarNode(value, nil),
		)
		return nil
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		child,
	)
	return setScalar(child, path[1:], value)
}

// scalarNode builds a scalar, keeping the comments of the node it replaces.
func scalarNode(value string, old *yaml.Node) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	if old != nil {
		node.LineComment = old.LineComment
		node.HeadComment = old.HeadComment
		node.FootComment = old.FootComment
	}
	return node
}

func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".zoo.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
