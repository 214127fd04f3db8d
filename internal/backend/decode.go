package backend

import "encoding/json"

// List decodes a backend collection response into raw records for the
// normalizers. Both a bare JSON array and the paginated {"results": [...]}
// envelope are accepted. A malformed or empty body yields an empty slice,
// not an error; one bad payload must not break a list render.
func List(raw json.RawMessage) []any {
	var items []any
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}
	var envelope struct {
		Results []any `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results
	}
	return []any{}
}

// Record decodes a single backend object. Malformed bodies yield an empty
// record, which the normalizers turn into a fully-defaulted entity.
func Record(raw json.RawMessage) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}
