package variant

import "encoding/json"

// FromJSONLiteral converts the result of an encoding/json.Decoder.Token()
// call (nil, bool, float64, string, json.Number or int64) into a Value,
// mirroring the teacher's own ParseJsonLiteral trick of reusing the JSON
// tokenizer for literal syntax. Any other token type yields Nil.
func FromJSONLiteral(tok any) Value {
	switch t := tok.(type) {
	case nil:
		return Nil
	case bool:
		return Bool(t)
	case float64:
		return Float(t)
	case int64:
		return Int(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i)
		}
		if f, err := t.Float64(); err == nil {
			return Float(f)
		}
		return Nil
	case string:
		return String(t)
	default:
		return Nil
	}
}
