// Package nav tracks which form section is current and how far along the
// form the user is.
package nav

import (
	"fmt"

	"github.com/Makepad-fr/resumeform/internal/elements"
)

// Section ids in page order. Progress is measured against this list.
const (
	PersonalInfo = "personalInfo"
	Education    = "education"
	Experience   = "experience"
	Skills       = "skills"
)

var Sections = []string{PersonalInfo, Education, Experience, Skills}

const (
	DefaultThreshold = 100
	ActiveClass      = "active"
	ProgressBarID    = "progressBar"
)

// Bounds is a section's vertical extent in the host's scroll units.
type Bounds struct {
	Top, Height int
}

// Scroller receives smooth-scroll requests from click navigation.
type Scroller interface {
	ScrollTo(offset int)
}

type Option func(*Tracker)

func WithThreshold(n int) Option { return func(t *Tracker) { t.threshold = n } }

func WithScroller(s Scroller) Option { return func(t *Tracker) { t.scroller = s } }

type Tracker struct {
	reg       *elements.Registry
	current   string
	threshold int
	bounds    map[string]Bounds
	scroller  Scroller
}

func New(reg *elements.Registry, opts ...Option) *Tracker {
	t := &Tracker{
		reg:       reg,
		current:   PersonalInfo,
		threshold: DefaultThreshold,
		bounds:    map[string]Bounds{},
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Tracker) Current() string { return t.current }

func (t *Tracker) Threshold() int { return t.threshold }

// SetBounds records where a section sits after the host lays it out.
func (t *Tracker) SetBounds(section string, b Bounds) { t.bounds[section] = b }

func (t *Tracker) Bounds(section string) (Bounds, bool) {
	b, ok := t.bounds[section]
	return b, ok
}

// Navigate handles a click on a nav item. Unknown sections are ignored.
func (t *Tracker) Navigate(section string) bool {
	if indexOf(section) < 0 {
		return false
	}
	t.highlight(section)
	if b, ok := t.bounds[section]; ok && t.scroller != nil {
		t.scroller.ScrollTo(b.Top)
	}
	t.setCurrent(section)
	return true
}

// OnScroll recomputes the current section from the scroll offset. When
// several sections match, the last one in page order wins.
func (t *Tracker) OnScroll(offset int) {
	match := ""
	for _, s := range Sections {
		b, ok := t.bounds[s]
		if !ok {
			continue
		}
		if offset >= b.Top-t.threshold && offset < b.Top+b.Height-t.threshold {
			match = s
		}
	}
	if match == "" {
		return
	}
	t.highlight(match)
	t.setCurrent(match)
}

// Progress is (index of current + 1) / len(Sections) * 100.
func (t *Tracker) Progress() float64 {
	return float64(indexOf(t.current)+1) / float64(len(Sections)) * 100
}

// Active lists the sections whose nav item carries the active class.
func (t *Tracker) Active() []string {
	var out []string
	for _, el := range t.reg.ByKind(elements.NavItem) {
		if el.HasClass(ActiveClass) {
			out = append(out, el.Section)
		}
	}
	return out
}

func (t *Tracker) setCurrent(section string) {
	t.current = section
	if bar := t.reg.Get(ProgressBarID); bar != nil {
		bar.SetStyle("width", fmt.Sprintf("%g%%", t.Progress()))
	}
}

func (t *Tracker) highlight(section string) {
	for _, el := range t.reg.ByKind(elements.NavItem) {
		if el.Section == section {
			el.AddClass(ActiveClass)
		} else {
			el.RemoveClass(ActiveClass)
		}
	}
}

func indexOf(section string) int {
	for i, s := range Sections {
		if s == section {
			return i
		}
	}
	return -1
}
