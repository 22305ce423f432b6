package ast

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Field is one key of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered map produced by Serialize.
// Values are *Record, []any, string or nil.
type Record struct {
	Fields []Field
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Kind returns the "kind" field.
func (r *Record) Kind() string {
	v, _ := r.Get("kind")
	s, _ := v.(string)
	return s
}

// Keys returns the keys in order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = f.Key
	}
	return out
}

func (r *Record) add(key string, v any) {
	r.Fields = append(r.Fields, Field{Key: key, Value: v})
}

// Serialize converts a typed node into an ordered record tree:
//
//	composite node: {"kind": <KIND>, <slot>: <value>, ...}
//	bogus node:     {"kind": <KIND>, "items": [...]}
//	token:          {"kind": <KIND>, "text": <text>}
//	list:           [<item>, ...]
//	missing slot:   null
func Serialize(n Node) any {
	return serializeValue(n)
}

func serializeValue(v any) any {
	switch x := v.(type) {
	case nil, Missing:
		return nil
	case *syntax.Token:
		return TokenRecord(x)
	case Items:
		out := make([]any, len(x))
		for i, it := range x {
			out[i] = serializeValue(it)
		}
		return out
	case Sequence:
		vals := x.Values()
		out := make([]any, len(vals))
		for i, it := range vals {
			out[i] = serializeValue(it)
		}
		return out
	case Composite:
		rec := &Record{}
		rec.add("kind", x.Syntax().KindName())
		for _, s := range x.Slots() {
			rec.add(s.Name, serializeValue(s.Value))
		}
		return rec
	case Node:
		return &Record{Fields: []Field{{Key: "kind", Value: x.Syntax().KindName()}}}
	}
	panic(fmt.Sprintf("ast: cannot serialize %T", v))
}

// TokenRecord serializes a token without its trivia.
func TokenRecord(t *syntax.Token) *Record {
	return &Record{Fields: []Field{
		{Key: "kind", Value: t.KindName()},
		{Key: "text", Value: t.Text()},
	}}
}

// MarshalJSON keeps the field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var _ msgpack.CustomEncoder = (*Record)(nil)

// EncodeMsgpack writes the record as a msgpack map in field order.
func (r *Record) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(r.Fields)); err != nil {
		return err
	}
	for _, f := range r.Fields {
		if err := enc.EncodeString(f.Key); err != nil {
			return err
		}
		if err := enc.Encode(f.Value); err != nil {
			return fmt.Errorf("field %q: %w", f.Key, err)
		}
	}
	return nil
}

// MarshalYAML builds an ordered mapping node.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.Fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}
		val := &yaml.Node{}
		if err := val.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// EncodeJSON serializes a node to indented JSON.
func EncodeJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(Serialize(n), "", "  ")
}

// EncodeMsgpack serializes a node to msgpack.
func EncodeMsgpack(n Node) ([]byte, error) {
	return msgpack.Marshal(Serialize(n))
}

// EncodeYAML serializes a node to YAML.
func EncodeYAML(n Node) ([]byte, error) {
	return yaml.Marshal(Serialize(n))
}
