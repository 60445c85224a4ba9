package xmlconv

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// NullValue defines how empty elements like `<x/>` are represented.
// Both settings convert the element itself into JSON null; they differ only
// when an Always array override applies to the element's path: Null wraps the
// lone null into `[null]`, Ignore keeps it as a bare null.
type NullValue int

const (
	// NullValueNull represents an empty element as JSON null and honors an
	// Always array override (`[null]`). This is the default.
	NullValueNull NullValue = iota
	// NullValueIgnore represents an empty element as JSON null but suppresses
	// array wrapping for a lone occurrence, even under an Always override.
	NullValueIgnore
)

// ArrayPolicy governs whether repeated child elements sharing a tag name are
// wrapped in a JSON array always, or only when two or more occur.
type ArrayPolicy int

const (
	// ArrayInfer wraps into an array only when two or more same-named
	// siblings occur. This is the default.
	ArrayInfer ArrayPolicy = iota
	// ArrayAlways wraps every occurrence, including a single one.
	ArrayAlways
)

// TypeKind enumerates the scalar conversion strategies for a path.
type TypeKind int

const (
	// TypeInfer guesses int/float/bool/string from the raw text.
	// Not guaranteed to be consistent across multiple nodes: `1234` and
	// `AB1234` under the same path infer to a number and a string.
	TypeInfer TypeKind = iota
	// TypeString keeps the raw text as a JSON string, unmodified.
	TypeString
	// TypeBool maps the raw text through a set of true-literals: an exact,
	// case-sensitive match yields true, anything else yields false.
	TypeBool
)

// TypePolicy governs how raw text at a path becomes a JSON scalar.
type TypePolicy struct {
	Kind TypeKind
	// TrueValues is consulted only when Kind is TypeBool.
	TrueValues []string
}

// InferType returns the default scalar policy.
func InferType() TypePolicy {
	return TypePolicy{Kind: TypeInfer}
}

// StringType returns a policy that forces the raw text into a JSON string.
func StringType() TypePolicy {
	return TypePolicy{Kind: TypeString}
}

// BoolType returns a policy that converts the raw text into a JSON bool:
// true when it matches one of trueValues exactly, false otherwise.
func BoolType(trueValues ...string) TypePolicy {
	return TypePolicy{Kind: TypeBool, TrueValues: trueValues}
}

// Override bundles the array and type policies registered for one path.
type Override struct {
	Array ArrayPolicy
	Type  TypePolicy
}

// KeyCase selects an optional transform applied to JSON property names
// derived from element and attribute names. The attribute prefix and the
// text property name are never transformed.
type KeyCase string

const (
	KeyCaseAsIs   KeyCase = ""
	KeyCaseCamel  KeyCase = "camel"
	KeyCasePascal KeyCase = "pascal"
	KeyCaseSnake  KeyCase = "snake"
)

// valid reports whether the key case is one of the supported transforms.
func (k KeyCase) valid() bool {
	switch k {
	case KeyCaseAsIs, KeyCaseCamel, KeyCasePascal, KeyCaseSnake:
		return true
	case "asis":
		return true
	}
	return false
}

// Config tells the converter how to perform certain conversions.
// It is constructed once, is immutable for the duration of a conversion and
// may be shared read-only across concurrent conversions of different
// documents.
type Config struct {
	// LeadingZeroAsString keeps numeric text with a leading zero as a string.
	// E.g. convert `<agent>007</agent>` into `"agent":"007"` instead of
	// `"agent":7`. The literal `0` always stays a number. Defaults to false.
	LeadingZeroAsString bool
	// AttrPrefix is prepended to property names derived from attributes to
	// distinguish them from child elements. E.g. `@` turns `<x a="1"/>` into
	// `{"x":{"@a":1}}`; a blank string yields `{"x":{"a":1}}`.
	// Defaults to `@`.
	AttrPrefix string
	// TextPropName is the property name for an element's text when the
	// element also has attributes or children. E.g. `<x a="1">hi</x>` with
	// the default `#text` becomes `{"x":{"@a":1,"#text":"hi"}}`. Elements
	// with text only are converted to the scalar directly.
	TextPropName string
	// NullValue defines how empty elements like `<x/>` are handled.
	NullValue NullValue
	// KeyCase optionally re-cases property names derived from element and
	// attribute names. Transforms that map distinct XML names to one JSON
	// key make the colliding values merge; keeping names distinct under the
	// transform is the caller's responsibility.
	KeyCase KeyCase

	// overrides maps an absolute path to its registered policies. The path
	// syntax is XPath-like: `/a/b` for an element (and its text node),
	// `/a/b/@c` for an attribute. Populated through AddOverride.
	overrides map[string]Override
}

// NewConfig creates a Config with default values: infer every scalar, prefix
// attributes with `@`, name text nodes `#text`, represent empty elements as
// null.
func NewConfig() *Config {
	return &Config{
		LeadingZeroAsString: false,
		AttrPrefix:          "@",
		TextPropName:        "#text",
		NullValue:           NullValueNull,
		KeyCase:             KeyCaseAsIs,
	}
}

// NewConfigWithValues creates a Config with non-default values. See the
// Config field docs for the meaning of each setting.
func NewConfigWithValues(leadingZeroAsString bool, attrPrefix, textPropName string, nullValue NullValue) *Config {
	return &Config{
		LeadingZeroAsString: leadingZeroAsString,
		AttrPrefix:          attrPrefix,
		TextPropName:        textPropName,
		NullValue:           nullValue,
	}
}

// AddOverride registers array and type policies for a single absolute path
// and returns the Config for chaining. A missing leading `/` is added.
//
// Example for `<a><b c="123">007</b></a>`:
//   - path for the attribute `c`: `/a/b/@c`
//   - path for the text of `b` (007): `/a/b`
//
// All same-named siblings share one path; an array collapses to the path of
// its element.
func (c *Config) AddOverride(path string, o Override) *Config {
	if c.overrides == nil {
		c.overrides = make(map[string]Override)
	}
	c.overrides[normalizePath(path)] = o
	return c
}

// AddTypeOverride registers a type policy for a path, keeping the default
// array policy. Shorthand for AddOverride with ArrayInfer.
func (c *Config) AddTypeOverride(path string, t TypePolicy) *Config {
	return c.AddOverride(path, Override{Array: ArrayInfer, Type: t})
}

// resolve looks up the override registered for an absolute path.
// Exact match only; an unregistered path falls back to the defaults.
func (c *Config) resolve(path string) (Override, bool) {
	if c.overrides == nil {
		return Override{}, false
	}
	o, ok := c.overrides[path]
	return o, ok
}

// propertyName applies the configured key-case transform to a name derived
// from an element tag or attribute name.
func (c *Config) propertyName(name string) string {
	switch c.KeyCase {
	case KeyCaseCamel:
		return strcase.ToLowerCamel(name)
	case KeyCasePascal:
		return strcase.ToCamel(name)
	case KeyCaseSnake:
		return strcase.ToSnake(name)
	default:
		return name
	}
}

// normalizePath adds the leading `/` if it's missing.
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
