package xmlconv

import (
	"io"
)

// ConvertNode converts a parsed XML node tree into a JSON value tree using
// the settings from cfg. The result is wrapped in an object keyed by the
// root element's tag name, so `<a>1</a>` becomes `{"a":1}`.
//
// The conversion is a pure depth-first traversal with no error cases: every
// raw text value maps to some JSON value, worst case a string. The node tree
// is read-only input and must be well formed per the parser's guarantees;
// recursion depth equals the document's nesting depth.
func ConvertNode(root *Node, cfg *Config) JSONValue {
	out := JSONObject{}
	path := childPath("", root.Tag)
	mergeChild(out, cfg.propertyName(root.Tag), convertNode(root, path, cfg), arrayPolicyFor(path, cfg), cfg)
	return out
}

// ConvertString parses an XML document and converts it into a JSON value
// tree. See ConvertNode for the conversion semantics.
func ConvertString(xml string, cfg *Config) (JSONValue, error) {
	root, err := ParseString(xml)
	if err != nil {
		return nil, err
	}
	return ConvertNode(root, cfg), nil
}

// ConvertReader parses an XML document from a reader and converts it into a
// JSON value tree.
func ConvertReader(r io.Reader, cfg *Config) (JSONValue, error) {
	root, err := ParseReader(r)
	if err != nil {
		return nil, err
	}
	return ConvertNode(root, cfg), nil
}

// ConvertFile parses an XML file and converts it into a JSON value tree.
func ConvertFile(path string, cfg *Config) (JSONValue, error) {
	root, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return ConvertNode(root, cfg), nil
}

// childPath appends an element segment to a parent path: `/a` + `b` -> `/a/b`.
// Same-named siblings share one path; arrays collapse to the path of their
// element.
func childPath(parent, tag string) string {
	return parent + "/" + tag
}

// attrPath appends an attribute segment to an element path:
// `/a` + `b` -> `/a/@b`.
func attrPath(parent, name string) string {
	return parent + "/@" + name
}

// typePolicyFor resolves the type policy registered for a path, defaulting
// to inference.
func typePolicyFor(path string, cfg *Config) TypePolicy {
	if o, ok := cfg.resolve(path); ok {
		return o.Type
	}
	return InferType()
}

// arrayPolicyFor resolves the array policy registered for a path, defaulting
// to multiplicity-based inference.
func arrayPolicyFor(path string, cfg *Config) ArrayPolicy {
	if o, ok := cfg.resolve(path); ok {
		return o.Array
	}
	return ArrayInfer
}

// convertNode converts one XML element into one JSON value. path is the
// element's own absolute path, used only to look up overrides.
func convertNode(n *Node, path string, cfg *Config) JSONValue {
	// an element with neither attributes nor children converts to a bare
	// scalar of its text, or to null when empty
	if len(n.Attrs) == 0 && len(n.Children) == 0 {
		if !n.HasText() {
			return nil
		}
		return inferScalar(n.Text, typePolicyFor(path, cfg), cfg)
	}

	acc := make(JSONObject, len(n.Attrs)+len(n.Children))

	// attribute names are unique within a node, so plain inserts suffice
	for _, a := range n.Attrs {
		key := cfg.AttrPrefix + cfg.propertyName(a.Name)
		acc[key] = inferScalar(a.Value, typePolicyFor(attrPath(path, a.Name), cfg), cfg)
	}

	for _, child := range n.Children {
		p := childPath(path, child.Tag)
		mergeChild(acc, cfg.propertyName(child.Tag), convertNode(child, p, cfg), arrayPolicyFor(p, cfg), cfg)
	}

	// the text node coexists with attributes or children here, so it gets
	// its own property; its overrides live on the element's path
	if n.HasText() {
		acc[cfg.TextPropName] = inferScalar(n.Text, typePolicyFor(path, cfg), cfg)
	}

	return acc
}

// mergeChild merges a converted child value into the parent accumulator
// under key, grouping repeated tags into arrays.
//
// Under ArrayInfer an array for a key exists if and only if two or more
// same-named siblings occurred, so an inferred array always has at least two
// elements. Under ArrayAlways every occurrence is wrapped, with one
// exception: a first occurrence that converted to null stays a bare null
// when empty elements are set to NullValueIgnore. No rule ever produces an
// empty array.
func mergeChild(acc JSONObject, key string, v JSONValue, policy ArrayPolicy, cfg *Config) {
	existing, ok := acc[key]
	if !ok {
		if policy == ArrayAlways && !(v == nil && cfg.NullValue == NullValueIgnore) {
			acc[key] = JSONArray{v}
		} else {
			acc[key] = v
		}
		return
	}

	if arr, isArray := existing.(JSONArray); isArray {
		acc[key] = append(arr, v)
		return
	}
	acc[key] = JSONArray{existing, v}
}
