// Package element defines the narrow form-field surface view helpers consume,
// plus a basic in-memory implementation for callers that assemble validation
// feedback by hand.
package element

import (
	"strings"

	"github.com/goliatone/go-formview/pkg/message"
)

// Element is a form field carrying accumulated validation messages.
type Element interface {
	Name() string
	Messages() message.Tree
}

// Labeled is implemented by elements that carry a human-readable label.
// Helpers fall back to Name() when the label is absent.
type Labeled interface {
	Label() string
}

// Field is a basic element implementation. Mutators return the receiver so
// call sites can chain configuration.
type Field struct {
	name     string
	label    string
	messages message.Tree
}

// New creates a field with the given name and no messages.
func New(name string) *Field {
	return &Field{name: strings.TrimSpace(name)}
}

func (f *Field) Name() string {
	return f.name
}

func (f *Field) Label() string {
	return f.label
}

// Messages returns the accumulated message tree.
func (f *Field) Messages() message.Tree {
	return f.messages
}

func (f *Field) SetLabel(label string) *Field {
	f.label = strings.TrimSpace(label)
	return f
}

// SetMessages replaces the message tree wholesale.
func (f *Field) SetMessages(tree message.Tree) *Field {
	f.messages = tree
	return f
}

// AddMessage appends a message at the end of the tree.
func (f *Field) AddMessage(msg string) *Field {
	f.messages = f.messages.Append(msg)
	return f
}

// AddMessageFor appends a message keyed by the validation rule that produced
// it.
func (f *Field) AddMessageFor(key, msg string) *Field {
	f.messages = f.messages.AppendKeyed(key, msg)
	return f
}

// ClearMessages drops every accumulated message.
func (f *Field) ClearMessages() *Field {
	f.messages = message.Tree{}
	return f
}

// LabelFor returns the element's label when it provides one, falling back to
// its name.
func LabelFor(el Element) string {
	if labeled, ok := el.(Labeled); ok {
		if label := strings.TrimSpace(labeled.Label()); label != "" {
			return label
		}
	}
	return el.Name()
}
