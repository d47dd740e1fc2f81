package document

import (
	"maps"
	"slices"

	"github.com/tidwall/gjson"
)

// Node is a read-only view of one value in a parsed config document. Lookups
// never fail: a missing key or a value of the wrong type yields a node that
// reports false from the typed accessors.
type Node interface {
	// Exists reports whether the node refers to a value in the document.
	Exists() bool
	// Get returns the member named key when the node is an object or table.
	Get(key string) Node
	// Text returns the value when it is a string.
	Text() (string, bool)
	// Array returns the elements when the value is an array.
	Array() ([]Node, bool)
	// Object returns the members when the value is an object or table.
	Object() ([]Entry, bool)
}

// Entry is a single member of an object or table.
type Entry struct {
	Key   string
	Value Node
}

// Path follows keys from n, one level per key.
func Path(n Node, keys ...string) Node {
	for _, key := range keys {
		n = n.Get(key)
	}
	return n
}

type jsonNode struct {
	r gjson.Result
}

func (n jsonNode) Exists() bool {
	return n.r.Exists()
}

// Get matches key literally rather than as a gjson path, so keys such as
// "@std/path" or "a.b" resolve. With duplicate keys the last one wins.
func (n jsonNode) Get(key string) Node {
	var found gjson.Result
	if !n.r.IsObject() {
		return jsonNode{}
	}
	n.r.ForEach(func(k, value gjson.Result) bool {
		if k.String() == key {
			found = value
		}
		return true
	})
	return jsonNode{r: found}
}

func (n jsonNode) Text() (string, bool) {
	if n.r.Type != gjson.String {
		return "", false
	}
	return n.r.Str, true
}

func (n jsonNode) Array() ([]Node, bool) {
	if !n.r.IsArray() {
		return nil, false
	}
	elems := n.r.Array()
	nodes := make([]Node, 0, len(elems))
	for _, elem := range elems {
		nodes = append(nodes, jsonNode{r: elem})
	}
	return nodes, true
}

// Object preserves the member order of the source text.
func (n jsonNode) Object() ([]Entry, bool) {
	if !n.r.IsObject() {
		return nil, false
	}
	entries := []Entry{}
	n.r.ForEach(func(key, value gjson.Result) bool {
		entries = append(entries, Entry{Key: key.String(), Value: jsonNode{r: value}})
		return true
	})
	return entries, true
}

// tomlNode wraps a value produced by decoding TOML into map[string]any.
type tomlNode struct {
	v      any
	exists bool
}

func (n tomlNode) Exists() bool {
	return n.exists
}

func (n tomlNode) Get(key string) Node {
	table, ok := n.v.(map[string]any)
	if !ok {
		return tomlNode{}
	}
	v, ok := table[key]
	return tomlNode{v: v, exists: ok}
}

func (n tomlNode) Text() (string, bool) {
	s, ok := n.v.(string)
	return s, ok
}

func (n tomlNode) Array() ([]Node, bool) {
	switch arr := n.v.(type) {
	case []any:
		nodes := make([]Node, 0, len(arr))
		for _, elem := range arr {
			nodes = append(nodes, tomlNode{v: elem, exists: true})
		}
		return nodes, true
	case []map[string]any:
		nodes := make([]Node, 0, len(arr))
		for _, elem := range arr {
			nodes = append(nodes, tomlNode{v: elem, exists: true})
		}
		return nodes, true
	default:
		return nil, false
	}
}

// Object returns table members sorted by key; decoded TOML tables do not
// keep their source order.
func (n tomlNode) Object() ([]Entry, bool) {
	table, ok := n.v.(map[string]any)
	if !ok {
		return nil, false
	}
	entries := make([]Entry, 0, len(table))
	for _, key := range slices.Sorted(maps.Keys(table)) {
		entries = append(entries, Entry{Key: key, Value: tomlNode{v: table[key], exists: true}})
	}
	return entries, true
}
