package xmlconv

// JSONValue is a generic type to represent any JSON value.
// It holds nil, bool, int64, float64, string, JSONObject or JSONArray.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
// Key order carries no meaning; the conversion deliberately does not preserve
// XML element order in the output object.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue
