package jsondoc

import (
	"bytes"
	"encoding/json"
	"sort"
)

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (b Bool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

func (s String) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }

func (a Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON writes members in sorted key order so equal objects encode to
// equal bytes.
func (o Object) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if err := writeValue(&buf, o[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v Value) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// FromInterface converts the output of encoding/json (decoded into any) back
// into a Value. float64 and json.Number both become Number.
// Unsupported types yield false.
func FromInterface(x any) (Value, bool) {
	switch t := x.(type) {
	case nil:
		return Null{}, true
	case bool:
		return Bool(t), true
	case json.Number:
		return Number(t), true
	case float64:
		return Float(t), true
	case int:
		return Int(int64(t)), true
	case int64:
		return Int(t), true
	case string:
		return String(t), true
	case []any:
		arr := make(Array, len(t))
		for i, e := range t {
			v, ok := FromInterface(e)
			if !ok {
				return nil, false
			}
			arr[i] = v
		}
		return arr, true
	case map[string]any:
		obj := make(Object, len(t))
		for k, e := range t {
			v, ok := FromInterface(e)
			if !ok {
				return nil, false
			}
			obj[k] = v
		}
		return obj, true
	}
	return nil, false
}
