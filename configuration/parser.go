package configuration

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/ranges/ierrors"
)

// mapToLowerKeys lower cases all keys of the given map and its nested maps in place.
func mapToLowerKeys(m map[string]interface{}) {
	for key, val := range m {
		switch typedVal := val.(type) {
		case map[string]interface{}:
			mapToLowerKeys(typedVal)
		case map[interface{}]interface{}:
			// yaml.v2 decodes nested maps with interface keys
			stringMap := cast.ToStringMap(typedVal)
			mapToLowerKeys(stringMap)
			val = stringMap
		}

		lower := strings.ToLower(key)
		if key != lower {
			delete(m, key)
		}

		m[lower] = val
	}
}

// JSONLowerParser implements a JSON parser.
// all config keys are lower cased.
type JSONLowerParser struct {
	prefix string
	indent string
}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, ierrors.Wrap(err, "unable to parse JSON config")
	}

	mapToLowerKeys(out)

	return out, nil
}

// Marshal marshals the given config map to JSON bytes.
func (p *JSONLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	if p.prefix != "" || p.indent != "" {
		return json.MarshalIndent(o, p.prefix, p.indent)
	}

	return json.Marshal(o)
}

// YAMLLowerParser implements a YAML parser.
// all config keys are lower cased.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, ierrors.Wrap(err, "unable to parse YAML config")
	}

	mapToLowerKeys(out)

	return out, nil
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
