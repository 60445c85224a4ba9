// Package xmlconv converts XML documents into JSON value trees.
//
// XML elements, attributes and text nodes map directly onto JSON objects and
// scalars, with repeated child elements grouped into arrays. Because of the
// richness of XML some conversion behavior is configurable: attribute name
// prefixes, naming of text nodes, number format handling, empty element
// handling, and per-path type and array overrides.
//
// # Basic usage
//
//	cfg := xmlconv.NewConfig()
//	v, err := xmlconv.ConvertString(`<a attr1="1"><b><c attr2="001">some text</c></b></a>`, cfg)
//	// {"a":{"@attr1":1,"b":{"c":{"@attr2":1,"#text":"some text"}}}}
//
// The result is built from plain Go values (JSONObject, JSONArray, int64,
// float64, bool, string, nil) and renders with any standard JSON writer,
// e.g. encoding/json.
//
// # Overrides
//
// Scalar inference guesses int, float, bool or string per value, which is
// not guaranteed to be consistent across nodes: `1234` and `AB1234` under
// the same tag infer to a number and a string. Per-path overrides pin a type
// or force array wrapping, keyed by XPath-like absolute paths:
//
//	cfg := xmlconv.NewConfig().
//		AddTypeOverride("/a/b/c/@attr2", xmlconv.StringType()).
//		AddOverride("/a/b", xmlconv.Override{Array: xmlconv.ArrayAlways, Type: xmlconv.InferType()})
//
// # Limitations
//
// The JSON object does not preserve XML element or attribute order, and
// CDATA sections may yield malformed text content. Both are accepted,
// documented limitations.
package xmlconv
