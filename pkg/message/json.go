package message

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON decodes a JSON payload into a message tree. It walks the raw
// token stream instead of decoding into a map so object keys keep their
// document order.
func (t *Tree) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	decoded, err := treeFromJSONTokens(dec)
	if err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("message: trailing JSON content")
	}
	*t = decoded
	return nil
}

func treeFromJSONTokens(dec *json.Decoder) (Tree, error) {
	tok, err := dec.Token()
	if err != nil {
		return Tree{}, fmt.Errorf("message: decode JSON: %w", err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		default:
			return Tree{}, fmt.Errorf("message: unexpected JSON delimiter %q", v)
		}
	case string:
		return Leaf(v), nil
	case json.Number:
		return Leaf(v.String()), nil
	case bool:
		return Leaf(fmt.Sprintf("%t", v)), nil
	case nil:
		return Tree{}, nil
	default:
		return Tree{}, fmt.Errorf("message: unsupported JSON token %T", tok)
	}
}

func jsonObject(dec *json.Decoder) (Tree, error) {
	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Tree{}, fmt.Errorf("message: decode JSON key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Tree{}, fmt.Errorf("message: non-string JSON key %v", keyTok)
		}
		sub, err := treeFromJSONTokens(dec)
		if err != nil {
			return Tree{}, err
		}
		entries = append(entries, Entry{Key: key, Tree: sub})
	}
	if _, err := dec.Token(); err != nil {
		return Tree{}, fmt.Errorf("message: close JSON object: %w", err)
	}
	return Tree{kind: kindMap, entries: entries}, nil
}

func jsonArray(dec *json.Decoder) (Tree, error) {
	var entries []Entry
	for dec.More() {
		sub, err := treeFromJSONTokens(dec)
		if err != nil {
			return Tree{}, err
		}
		entries = append(entries, Entry{Tree: sub})
	}
	if _, err := dec.Token(); err != nil {
		return Tree{}, fmt.Errorf("message: close JSON array: %w", err)
	}
	return Tree{kind: kindList, entries: entries}, nil
}

// MarshalJSON emits leaves as strings, lists as arrays, and map nodes as
// objects with keys in insertion order.
func (t Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONTree(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONTree(buf *bytes.Buffer, t Tree) error {
	switch t.kind {
	case kindLeaf:
		encoded, err := json.Marshal(t.value)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case kindList:
		buf.WriteByte('[')
		for i, entry := range t.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONTree(buf, entry.Tree); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case kindMap:
		buf.WriteByte('{')
		for i, entry := range t.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(entry.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSONTree(buf, entry.Tree); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}
