package tui

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/resumeform/internal/elements"
	"github.com/Makepad-fr/resumeform/internal/form"
	"github.com/Makepad-fr/resumeform/internal/nav"
)

type page struct {
	m     *Model
	focus string
	out   []string
	pos   map[string]int
}

func (p *page) add(id, line string) {
	if id != "" {
		p.pos[id] = len(p.out)
	}
	p.out = append(p.out, line)
}

// layout renders the form body one line per element. focusView replaces the
// focused field's value; pass "" to lay out without the live input.
func (m *Model) layout(focusView string) ([]string, map[string]int, map[string]nav.Bounds) {
	p := &page{m: m, focus: focusView, pos: map[string]int{}}
	bounds := map[string]nav.Bounds{}
	reg := m.ctrl.Registry()

	for _, sec := range reg.ByClass(form.SectionClass) {
		top := len(p.out)
		p.add(sec.ID, m.theme.Title.Render(sec.Label))
		for _, child := range reg.Children(sec.ID) {
			p.element(child, 1)
		}
		p.add("", "")
		bounds[sec.Section] = nav.Bounds{Top: top, Height: len(p.out) - top}
	}

	var actions []string
	for _, btn := range reg.Children(form.ActionsID) {
		p.pos[btn.ID] = len(p.out)
		actions = append(actions, m.button(btn))
	}
	p.add("", strings.Join(actions, "  "))

	m.vp.SetContent(strings.Join(p.out, "\n"))
	return p.out, p.pos, bounds
}

func (p *page) element(el *elements.Element, depth int) {
	m := p.m
	reg := m.ctrl.Registry()
	indent := strings.Repeat("  ", depth)
	focused := el.ID == m.focus
	marker := "  "
	if focused {
		marker = m.theme.Accent.Render("> ")
	}

	switch el.Kind {
	case elements.Input, elements.TextArea:
		label := fmt.Sprintf("%-12s", el.Placeholder+":")
		cont := indent + "  " + strings.Repeat(" ", len(label)+1)
		value := el.Value
		switch {
		case focused && !el.Disabled && p.focus != "":
			value = p.focus
		case el.Disabled:
			value = m.theme.Disabled.Render(value)
		case value == "":
			value = m.theme.Muted.Render("—")
		}
		// One body line per value line keeps section bounds in step with
		// the textarea while it grows.
		for i, v := range strings.Split(value, "\n") {
			if i == 0 {
				if el.Disabled {
					label = m.theme.Disabled.Render(label)
				}
				p.add(el.ID, indent+marker+label+" "+v)
				continue
			}
			p.add("", cont+v)
		}

	case elements.Button:
		p.add(el.ID, indent+marker+m.button(el))

	case elements.Text:
		line := m.theme.Bullet + " " + el.Label
		if focused {
			line = m.theme.Selected.Render(line)
		}
		p.add(el.ID, indent+marker+line)

	case elements.Container:
		children := reg.Children(el.ID)
		switch {
		case el.HasClass(form.EducationClass), el.HasClass(form.ExperienceClass):
			p.add(el.ID, indent+m.theme.Muted.Render(strings.Repeat("─", 24)))
			for _, c := range children {
				p.element(c, depth+1)
			}
		case len(children) == 0 && el.ID == form.SkillsListID:
			p.add(el.ID, indent+"  "+m.theme.Muted.Render("no skills yet"))
		default:
			for _, c := range children {
				p.element(c, depth)
			}
		}
	}
}

func (m *Model) button(el *elements.Element) string {
	label := "[ " + el.Label + " ]"
	switch {
	case el.Disabled:
		return m.theme.Disabled.Render(label)
	case el.ID == m.focus:
		return m.theme.Selected.Render(label)
	case el.HasClass(form.UnlockClass):
		return m.theme.Pending.Render(label)
	}
	return m.theme.Accent.Render(label)
}
