package store

import "encoding/json"

// Record is one document of a collection, kept as decoded JSON so the client
// stays schema-free. Typed decoding belongs to the callers.
type Record map[string]any

// Decode re-marshals the record into a typed struct.
func Decode(rec Record, out any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// DecodeList re-marshals a list of records into a typed slice.
func DecodeList(recs []Record, out any) error {
	b, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// ID reads the store-assigned identifier of a record. The store serializes ids
// as JSON numbers.
func (r Record) ID() (uint, bool) {
	v, ok := r["id"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return uint(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return uint(i), true
	}
	return 0, false
}
