package output

import (
	"encoding/json"

	"github.com/rpgo/calckit/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the batch results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

// YAMLFormatter emits the same document as JSONFormatter, with the same key
// names and order, in block-style YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	clearStyle(&doc)
	return yaml.Marshal(&doc)
}

// clearStyle drops the flow and quoting styles inherited from JSON input.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
