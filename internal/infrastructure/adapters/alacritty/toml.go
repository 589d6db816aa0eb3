package alacritty

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// setTOMLFamily sets font.normal.family. Comments do not survive a rewrite;
// the data is returned untouched when the family already matches.
func setTOMLFamily(data []byte, family string) ([]byte, error) {
	doc := map[string]interface{}{}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}

	font, err := table(doc, "font")
	if err != nil {
		return nil, err
	}
	normal, err := table(font, "normal")
	if err != nil {
		return nil, err
	}
	if current, ok := normal["family"].(string); ok && current == family && data != nil {
		return data, nil
	}
	normal["family"] = family

	return toml.Marshal(doc)
}

func table(parent map[string]interface{}, key string) (map[string]interface{}, error) {
	switch v := parent[key].(type) {
	case nil:
		t := map[string]interface{}{}
		parent[key] = t
		return t, nil
	case map[string]interface{}:
		return v, nil
	default:
		return nil, fmt.Errorf("%s is a %T, not a table", key, v)
	}
}
