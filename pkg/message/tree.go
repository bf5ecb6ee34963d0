package message

// Tree is an ordered, arbitrarily nested collection of validation messages.
// A tree is one of three shapes: a single message (leaf), a sequence of
// subtrees, or a mapping of named subtrees. Mapping entries keep the order
// they were supplied in, so flattened output is deterministic regardless of
// how the source element accumulated its messages.
type Tree struct {
	kind    nodeKind
	value   string
	entries []Entry
}

type nodeKind uint8

const (
	kindEmpty nodeKind = iota
	kindLeaf
	kindList
	kindMap
)

// Entry is a child of a list or map node. List children carry an empty key.
type Entry struct {
	Key  string
	Tree Tree
}

// Leaf builds a tree holding a single message.
func Leaf(msg string) Tree {
	return Tree{kind: kindLeaf, value: msg}
}

// List builds a sequence node from the given subtrees.
func List(children ...Tree) Tree {
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, Entry{Tree: child})
	}
	return Tree{kind: kindList, entries: entries}
}

// Map builds a mapping node from the given entries, preserving their order.
func Map(entries ...Entry) Tree {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return Tree{kind: kindMap, entries: out}
}

// Pair builds a named map entry.
func Pair(key string, tree Tree) Entry {
	return Entry{Key: key, Tree: tree}
}

// Msg is shorthand for Pair(key, Leaf(msg)), the most common map entry shape
// produced by validators (rule name keyed to its message).
func Msg(key, msg string) Entry {
	return Entry{Key: key, Tree: Leaf(msg)}
}

// IsLeaf reports whether the tree is a single message.
func (t Tree) IsLeaf() bool {
	return t.kind == kindLeaf
}

// Value returns the message held by a leaf node, or "" for container nodes.
func (t Tree) Value() string {
	if t.kind != kindLeaf {
		return ""
	}
	return t.value
}

// Entries returns the children of a list or map node. Leaf and empty nodes
// have no children.
func (t Tree) Entries() []Entry {
	return t.entries
}

// IsEmpty reports whether the tree contains no messages at any depth. A leaf
// is never empty, even when its message is the empty string.
func (t Tree) IsEmpty() bool {
	switch t.kind {
	case kindLeaf:
		return false
	case kindList, kindMap:
		for _, entry := range t.entries {
			if !entry.Tree.IsEmpty() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Len returns the number of messages in the tree, counting every leaf at any
// depth.
func (t Tree) Len() int {
	count := 0
	_ = t.Walk(func(string) error {
		count++
		return nil
	})
	return count
}

// Walk visits every message in depth-first, left-to-right order. The walk
// stops at the first error returned by fn and reports it to the caller.
func (t Tree) Walk(fn func(msg string) error) error {
	switch t.kind {
	case kindLeaf:
		return fn(t.value)
	case kindList, kindMap:
		for _, entry := range t.entries {
			if err := entry.Tree.Walk(fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flatten extracts every message in depth-first, left-to-right order,
// regardless of how list and map nodes are mixed.
func (t Tree) Flatten() []string {
	if t.IsEmpty() {
		return nil
	}
	out := make([]string, 0, 4)
	_ = t.Walk(func(msg string) error {
		out = append(out, msg)
		return nil
	})
	return out
}

// Append returns a tree with msg added as the last message. Appending to a
// leaf promotes it to a list; appending to an empty tree yields a
// single-entry list.
func (t Tree) Append(msg string) Tree {
	return t.appendTree("", Leaf(msg))
}

// AppendKeyed returns a tree with a named entry added at the end. Leaf and
// list roots are promoted to map nodes so the key survives.
func (t Tree) AppendKeyed(key, msg string) Tree {
	return t.appendTree(key, Leaf(msg))
}

func (t Tree) appendTree(key string, child Tree) Tree {
	entry := Entry{Key: key, Tree: child}
	switch t.kind {
	case kindEmpty:
		if key == "" {
			return List(child)
		}
		return Map(entry)
	case kindLeaf:
		promoted := Tree{kind: kindList, entries: []Entry{{Tree: t}, entry}}
		if key != "" {
			promoted.kind = kindMap
		}
		return promoted
	default:
		out := t
		out.entries = append(append([]Entry(nil), t.entries...), entry)
		if key != "" && out.kind == kindList {
			out.kind = kindMap
		}
		return out
	}
}
