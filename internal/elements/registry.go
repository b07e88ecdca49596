// Package elements is the in-memory presentation tree the form controller
// drives: named inputs, buttons and containers with class sets and styles.
// Renderers read it; the controller never touches a terminal directly.
package elements

import (
	"fmt"
	"sort"
)

// RootID is the implicit top-level element (the page body).
const RootID = "body"

type Kind int

const (
	Container Kind = iota
	Input
	TextArea
	Button
	NavItem
	Text
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case TextArea:
		return "textarea"
	case Button:
		return "button"
	case NavItem:
		return "nav-item"
	case Text:
		return "text"
	default:
		return "container"
	}
}

// Editable reports whether the kind holds user-entered text.
func (k Kind) Editable() bool { return k == Input || k == TextArea }

type Element struct {
	ID          string
	Kind        Kind
	Label       string // button caption, section title or row text
	Placeholder string
	Value       string
	Disabled    bool
	Section     string // data-section attribute

	parent  string
	classes map[string]bool
	style   map[string]string
}

func (e *Element) Parent() string { return e.parent }

func (e *Element) AddClass(c string) {
	if e.classes == nil {
		e.classes = map[string]bool{}
	}
	e.classes[c] = true
}

func (e *Element) RemoveClass(c string) { delete(e.classes, c) }

func (e *Element) HasClass(c string) bool { return e.classes[c] }

// Classes returns the class list sorted, for stable rendering and asserts.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (e *Element) SetStyle(prop, value string) {
	if e.style == nil {
		e.style = map[string]string{}
	}
	e.style[prop] = value
}

func (e *Element) Style(prop string) string { return e.style[prop] }

// Registry holds elements by id and keeps document order.
type Registry struct {
	byID     map[string]*Element
	children map[string][]string
}

func New() *Registry {
	r := &Registry{
		byID:     map[string]*Element{},
		children: map[string][]string{},
	}
	r.byID[RootID] = &Element{ID: RootID, Kind: Container}
	return r
}

// Append adds el as the last child of parent.
func (r *Registry) Append(parent string, el *Element) error {
	if el == nil || el.ID == "" {
		return fmt.Errorf("append: element needs an id")
	}
	if _, ok := r.byID[parent]; !ok {
		return fmt.Errorf("append %q: no parent %q", el.ID, parent)
	}
	if _, dup := r.byID[el.ID]; dup {
		return fmt.Errorf("append: duplicate id %q", el.ID)
	}
	el.parent = parent
	r.byID[el.ID] = el
	r.children[parent] = append(r.children[parent], el.ID)
	return nil
}

// MustAppend is Append for static layouts built at startup.
func (r *Registry) MustAppend(parent string, el *Element) *Element {
	if err := r.Append(parent, el); err != nil {
		panic(err)
	}
	return el
}

// Get returns nil when id is unknown.
func (r *Registry) Get(id string) *Element { return r.byID[id] }

func (r *Registry) Value(id string) string {
	if el := r.byID[id]; el != nil {
		return el.Value
	}
	return ""
}

// SetValue reports whether the element exists.
func (r *Registry) SetValue(id, v string) bool {
	el := r.byID[id]
	if el == nil {
		return false
	}
	el.Value = v
	return true
}

// Remove detaches id and drops its whole subtree. The root cannot be removed.
func (r *Registry) Remove(id string) bool {
	el := r.byID[id]
	if el == nil || id == RootID {
		return false
	}
	siblings := r.children[el.parent]
	for i, c := range siblings {
		if c == id {
			r.children[el.parent] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	r.drop(id)
	return true
}

func (r *Registry) drop(id string) {
	for _, c := range r.children[id] {
		r.drop(c)
	}
	delete(r.children, id)
	delete(r.byID, id)
}

func (r *Registry) Children(id string) []*Element {
	ids := r.children[id]
	out := make([]*Element, 0, len(ids))
	for _, c := range ids {
		out = append(out, r.byID[c])
	}
	return out
}

// All walks the tree depth-first in document order, root excluded.
func (r *Registry) All() []*Element {
	var out []*Element
	var walk func(string)
	walk = func(id string) {
		for _, c := range r.children[id] {
			out = append(out, r.byID[c])
			walk(c)
		}
	}
	walk(RootID)
	return out
}

// Query returns every element matching keep, in document order.
func (r *Registry) Query(keep func(*Element) bool) []*Element {
	var out []*Element
	for _, el := range r.All() {
		if keep(el) {
			out = append(out, el)
		}
	}
	return out
}

func (r *Registry) ByClass(class string) []*Element {
	return r.Query(func(e *Element) bool { return e.HasClass(class) })
}

func (r *Registry) ByKind(kinds ...Kind) []*Element {
	return r.Query(func(e *Element) bool {
		for _, k := range kinds {
			if e.Kind == k {
				return true
			}
		}
		return false
	})
}

// Within reports whether id sits somewhere under ancestor.
func (r *Registry) Within(id, ancestor string) bool {
	el := r.byID[id]
	for el != nil && el.ID != RootID {
		if el.parent == ancestor {
			return true
		}
		el = r.byID[el.parent]
	}
	return false
}
