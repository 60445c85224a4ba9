package xmlconv

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout of an .xmlconv.yml file. Pointer fields
// distinguish "not set" from zero values: a blank attr_prefix is a valid
// setting, not a missing one.
type fileConfig struct {
	LeadingZeroAsString *bool          `yaml:"leading_zero_as_string"`
	AttrPrefix          *string        `yaml:"attr_prefix"`
	TextProp            *string        `yaml:"text_prop"`
	NullPolicy          string         `yaml:"null_policy"`
	KeyCase             string         `yaml:"key_case"`
	Overrides           []fileOverride `yaml:"overrides"`
}

// fileOverride is one entry of the overrides list.
type fileOverride struct {
	Path       string   `yaml:"path"`
	Type       string   `yaml:"type"`
	TrueValues []string `yaml:"true_values"`
	Array      string   `yaml:"array"`
}

// LoadConfig loads conversion settings from a YAML file, starting from the
// defaults and applying only the fields the file sets.
//
// Example:
//
//	leading_zero_as_string: true
//	attr_prefix: ""
//	text_prop: text
//	null_policy: ignore
//	overrides:
//	  - path: /a/b/@c
//	    type: string
//	  - path: /a/b
//	    array: always
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	cfg := NewConfig()
	if fc.LeadingZeroAsString != nil {
		cfg.LeadingZeroAsString = *fc.LeadingZeroAsString
	}
	if fc.AttrPrefix != nil {
		cfg.AttrPrefix = *fc.AttrPrefix
	}
	if fc.TextProp != nil {
		cfg.TextPropName = *fc.TextProp
	}

	// an unquoted `null` in YAML decodes to an empty string, so treat blank
	// the same as the default
	switch fc.NullPolicy {
	case "", "null":
		cfg.NullValue = NullValueNull
	case "ignore":
		cfg.NullValue = NullValueIgnore
	default:
		return nil, NewConfigError(
			fmt.Sprintf("invalid null_policy '%s': must be 'null' or 'ignore'", fc.NullPolicy), nil)
	}

	keyCase := KeyCase(fc.KeyCase)
	if keyCase == "asis" {
		keyCase = KeyCaseAsIs
	}
	if !keyCase.valid() {
		return nil, NewConfigError(
			fmt.Sprintf("invalid key_case '%s': must be 'asis', 'camel', 'pascal' or 'snake'", fc.KeyCase), nil)
	}
	cfg.KeyCase = keyCase

	for _, fo := range fc.Overrides {
		o, err := fo.toOverride()
		if err != nil {
			return nil, err
		}
		cfg.AddOverride(fo.Path, o)
	}

	return cfg, nil
}

// toOverride validates one overrides entry and converts it to policies.
func (fo fileOverride) toOverride() (Override, error) {
	if fo.Path == "" {
		return Override{}, NewConfigError("override entry is missing a path", nil)
	}

	var o Override
	switch fo.Type {
	case "", "infer":
		o.Type = InferType()
	case "string":
		o.Type = StringType()
	case "bool":
		o.Type = BoolType(fo.TrueValues...)
	default:
		return Override{}, NewConfigError(
			fmt.Sprintf("invalid type '%s' for path '%s': must be 'infer', 'string' or 'bool'", fo.Type, fo.Path), nil)
	}

	switch fo.Array {
	case "", "infer":
		o.Array = ArrayInfer
	case "always":
		o.Array = ArrayAlways
	default:
		return Override{}, NewConfigError(
			fmt.Sprintf("invalid array '%s' for path '%s': must be 'infer' or 'always'", fo.Array, fo.Path), nil)
	}

	return o, nil
}

// FindConfigFile searches for a config file in the current directory and its
// parents. Returns an empty string when none exists.
func FindConfigFile() string {
	configNames := []string{".xmlconv.yml", ".xmlconv.yaml", "xmlconv.yml", "xmlconv.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}
