// Package tui is the terminal front end of the resume form. It renders the
// element registry, turns keys into form events and schedules toast expiry.
package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/resumeform/internal/elements"
	"github.com/Makepad-fr/resumeform/internal/form"
	"github.com/Makepad-fr/resumeform/internal/nav"
	"github.com/Makepad-fr/resumeform/internal/ui"
)

// lines taken by header, toasts, help and the frame around the body
const chromeHeight = 9

// ScrollBridge carries smooth-scroll requests from the nav tracker to the
// viewport; the tracker holds it as its nav.Scroller.
type ScrollBridge struct {
	offset  int
	pending bool
}

func (s *ScrollBridge) ScrollTo(offset int) {
	s.offset = offset
	s.pending = true
}

func (s *ScrollBridge) take() (int, bool) {
	if !s.pending {
		return 0, false
	}
	s.pending = false
	return s.offset, true
}

type toastExpiredMsg struct {
	ID int
	At time.Time
}

type Model struct {
	ctrl   *form.Controller
	scroll *ScrollBridge
	theme  ui.Theme
	log    *slog.Logger

	keys keyMap
	help help.Model
	vp   viewport.Model
	ti   textinput.Model // inputs
	ta   textarea.Model  // textareas

	focus     string         // id of the focused element
	lines     map[string]int // element id -> body line
	scheduled int            // highest toast id with an expiry tick
	ready     bool
}

func New(ctrl *form.Controller, scroll *ScrollBridge, theme ui.Theme, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	m := Model{
		ctrl:   ctrl,
		scroll: scroll,
		theme:  theme,
		log:    log,
		keys:   defaultKeys(),
		help:   help.New(),
		vp:     viewport.New(76, 15),
		ti:     textinput.New(),
		ta:     textarea.New(),
		lines:  map[string]int{},
	}
	m.ti.Prompt = ""
	m.ti.CharLimit = 0
	m.ta.Prompt = ""
	m.ta.ShowLineNumbers = false
	m.ta.CharLimit = 0
	m.ta.MaxHeight = 0
	m.ta.MaxWidth = 0
	m.ta.SetWidth(56)
	m.help.Styles.ShortKey = theme.Accent
	m.help.Styles.ShortDesc = theme.Help

	if f := m.focusables(); len(f) > 0 {
		m.focus = f[0].ID
	}
	m.relayout()
	m.loadInput()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = max(20, msg.Width-4)
		m.vp.Height = max(3, msg.Height-chromeHeight)
		m.ti.Width = max(10, m.vp.Width-20)
		m.ta.SetWidth(max(10, m.vp.Width-20))
		m.help.Width = msg.Width
		m.ready = true
		m.relayout()
		return m, nil

	case toastExpiredMsg:
		m.ctrl.DismissToast(msg.ID)
		m.ctrl.ExpireToasts(msg.At)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var tiCmd, taCmd tea.Cmd
	m.ti, tiCmd = m.ti.Update(msg)
	m.ta, taCmd = m.ta.Update(msg)
	return m, tea.Batch(tiCmd, taCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Inside a textarea enter breaks the line and up/down move the cursor.
	if el := m.editing(); el != nil && el.Kind == elements.TextArea &&
		(key.Matches(msg, m.keys.Activate) || key.Matches(msg, m.keys.Lines)) {
		return m.typeInto(el, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m.dispatch(form.Event{Kind: form.EventSave})
	case key.Matches(msg, m.keys.Print):
		return m.dispatch(form.Event{Kind: form.EventPrint})
	case key.Matches(msg, m.keys.AddEducation):
		return m.dispatch(form.Event{Kind: form.EventAddEducation})
	case key.Matches(msg, m.keys.AddExp):
		return m.dispatch(form.Event{Kind: form.EventAddExperience})
	case key.Matches(msg, m.keys.Remove):
		if row := m.ctrl.RowOf(m.focus); row != "" {
			return m.dispatch(form.Event{Kind: form.EventRemoveRow, Target: row})
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(m.vp.Height)
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	}
	for i, b := range m.keys.Sections {
		if key.Matches(msg, b) {
			return m.dispatch(form.Event{Kind: form.EventNavigate, Target: nav.Sections[i]})
		}
	}

	// Everything else is typing into the focused field.
	if el := m.editing(); el != nil {
		return m.typeInto(el, msg)
	}
	return m, nil
}

// editing returns the focused element when it accepts text.
func (m Model) editing() *elements.Element {
	el := m.ctrl.Registry().Get(m.focus)
	if el == nil || !el.Kind.Editable() || el.Disabled {
		return nil
	}
	return el
}

// typeInto feeds msg to the editor of el. The element is written only when
// the editor's text changed, so cursor keys never rewrite a stored value.
func (m Model) typeInto(el *elements.Element, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if el.Kind == elements.TextArea {
		before := m.ta.Value()
		m.ta, cmd = m.ta.Update(msg)
		if after := m.ta.Value(); after != before {
			el.Value = after
			m.fitArea()
			m.relayout()
		}
		return m, cmd
	}
	before := m.ti.Value()
	m.ti, cmd = m.ti.Update(msg)
	if after := m.ti.Value(); after != before {
		el.Value = after
	}
	return m, cmd
}

// activate is enter: press the focused button, submit the skill input, or
// move on from a plain field.
func (m Model) activate() (tea.Model, tea.Cmd) {
	el := m.ctrl.Registry().Get(m.focus)
	if el == nil {
		return m, nil
	}
	switch {
	case el.ID == form.SkillInputID:
		return m.dispatch(form.Event{Kind: form.EventAddSkill})
	case el.HasClass(form.SkillClass):
		return m.dispatch(form.Event{Kind: form.EventRemoveRow, Target: el.ID})
	case el.Kind == elements.Button:
		if ev, ok := buttonEvent(el.ID); ok {
			return m.dispatch(ev)
		}
		return m, nil
	}
	return m.moveFocus(1)
}

func buttonEvent(id string) (form.Event, bool) {
	switch id {
	case form.AddEducationID:
		return form.Event{Kind: form.EventAddEducation}, true
	case form.AddExperienceID:
		return form.Event{Kind: form.EventAddExperience}, true
	case form.AddSkillID:
		return form.Event{Kind: form.EventAddSkill}, true
	case form.SaveButtonID:
		return form.Event{Kind: form.EventSave}, true
	case form.PrintButtonID:
		return form.Event{Kind: form.EventPrint}, true
	}
	if strings.HasSuffix(id, "-"+form.RemoveSuffix) {
		return form.Event{Kind: form.EventRemoveRow, Target: id}, true
	}
	return form.Event{}, false
}

func (m Model) dispatch(ev form.Event) (tea.Model, tea.Cmd) {
	prev := m.lines[m.focus]
	if err := m.ctrl.Dispatch(ev); err != nil {
		m.log.Warn("event failed", "event", string(ev.Kind), "err", err)
	}

	m.relayout()
	if off, ok := m.scroll.take(); ok {
		m.vp.SetYOffset(off)
	}
	if ev.Kind == form.EventNavigate {
		m.focusIn(ev.Target)
	}
	m.fixFocus(prev)
	m.relayout()
	m.loadInput()

	return m, m.scheduleToasts()
}

func (m *Model) scheduleToasts() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.ctrl.Toasts() {
		if t.ID <= m.scheduled {
			continue
		}
		m.scheduled = t.ID
		id := t.ID
		cmds = append(cmds, tea.Tick(form.ToastTTL, func(at time.Time) tea.Msg { return toastExpiredMsg{ID: id, At: at} }))
	}
	return tea.Batch(cmds...)
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	list := m.focusables()
	if len(list) == 0 {
		return m, nil
	}
	idx := 0
	for i, el := range list {
		if el.ID == m.focus {
			idx = (i + delta + len(list)) % len(list)
			break
		}
	}
	m.focus = list[idx].ID
	m.relayout()
	m.loadInput()
	m.ensureVisible()
	m.pollScroll()
	return m, nil
}

func (m Model) scrollBy(delta int) (tea.Model, tea.Cmd) {
	m.vp.SetYOffset(m.vp.YOffset + delta)
	m.pollScroll()
	return m, nil
}

// pollScroll reports the viewport position to the tracker.
func (m *Model) pollScroll() {
	if err := m.ctrl.Dispatch(form.Event{Kind: form.EventScroll, Offset: m.vp.YOffset}); err != nil {
		m.log.Warn("scroll event failed", "err", err)
	}
}

func (m *Model) ensureVisible() {
	line, ok := m.lines[m.focus]
	if !ok {
		return
	}
	switch {
	case line < m.vp.YOffset:
		m.vp.SetYOffset(line)
	case line >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(line - m.vp.Height + 1)
	}
}

// focusables lists what tab can land on, in document order.
func (m Model) focusables() []*elements.Element {
	locked := m.ctrl.State().Locked
	return m.ctrl.Registry().Query(func(el *elements.Element) bool {
		switch el.Kind {
		case elements.Input, elements.TextArea, elements.Button:
			return !el.Disabled
		case elements.Text:
			return el.HasClass(form.SkillClass) && !locked
		}
		return false
	})
}

// fixFocus moves focus off an element that vanished or got disabled, to the
// next focusable at or below the line it sat on.
func (m *Model) fixFocus(prev int) {
	list := m.focusables()
	for _, el := range list {
		if el.ID == m.focus {
			return
		}
	}
	if len(list) == 0 {
		m.focus = ""
		return
	}
	m.focus = list[0].ID
	for _, el := range list {
		if line, ok := m.lines[el.ID]; ok && line >= prev {
			m.focus = el.ID
			return
		}
	}
}

// focusIn puts focus on the first focusable inside section.
func (m *Model) focusIn(section string) {
	reg := m.ctrl.Registry()
	for _, el := range m.focusables() {
		if reg.Within(el.ID, section) {
			m.focus = el.ID
			return
		}
	}
}

// loadInput points the matching editor at the focused element.
func (m *Model) loadInput() {
	m.ti.Blur()
	m.ta.Blur()
	el := m.editing()
	if el == nil {
		m.ti.SetValue("")
		m.ta.Reset()
		return
	}
	if el.Kind == elements.TextArea {
		m.ta.SetValue(el.Value)
		m.ta.Placeholder = el.Placeholder
		m.fitArea()
		m.ta.Focus()
		return
	}
	m.ti.SetValue(el.Value)
	m.ti.Placeholder = el.Placeholder
	m.ti.CursorEnd()
	m.ti.Focus()
}

// fitArea sizes the textarea to its lines so the body layout stays put.
func (m *Model) fitArea() {
	m.ta.SetHeight(strings.Count(m.ta.Value(), "\n") + 1)
}

// editorView is the live editor for the focused field, or "".
func (m Model) editorView() string {
	el := m.editing()
	switch {
	case el == nil:
		return ""
	case el.Kind == elements.TextArea:
		return m.ta.View()
	}
	return m.ti.View()
}

// relayout recomputes body lines and hands section bounds to the tracker.
func (m *Model) relayout() {
	_, pos, bounds := m.layout("")
	m.lines = pos
	for s, b := range bounds {
		m.ctrl.Tracker().SetBounds(s, b)
	}
}

func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	m.layout(m.editorView())

	parts := []string{m.header(), m.vp.View()}
	if toasts := m.toastView(); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, m.help.View(m.keys))
	return ui.Panel(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) header() string {
	reg := m.ctrl.Registry()
	title := m.theme.Title.Render("Resume Builder")
	if reg.Get(elements.RootID).HasClass(form.LockedClass) {
		title += "  " + m.theme.Pending.Render(m.theme.Lock+" locked")
	}

	var tabs []string
	for i, el := range reg.Children(form.NavID) {
		label := fmt.Sprintf("%d %s", i+1, el.Label)
		if el.HasClass(nav.ActiveClass) {
			tabs = append(tabs, m.theme.Active.Render(label))
		} else {
			tabs = append(tabs, m.theme.Muted.Render(label))
		}
	}

	bar := ui.ProgressBar(m.progress(), 28)
	return title + "\n" + strings.Join(tabs, "  │  ") + "\n" + m.theme.Accent.Render(bar)
}

// progress reads the bar width the tracker wrote into the registry.
func (m Model) progress() float64 {
	if bar := m.ctrl.Registry().Get(nav.ProgressBarID); bar != nil {
		w := strings.TrimSuffix(bar.Style("width"), "%")
		if p, err := strconv.ParseFloat(w, 64); err == nil {
			return p
		}
	}
	return m.ctrl.Tracker().Progress()
}

func (m Model) toastView() string {
	var out []string
	for _, t := range m.ctrl.Toasts() {
		switch t.Kind {
		case form.ToastSuccess:
			out = append(out, m.theme.Success.Render("✔ "+t.Message))
		case form.ToastError:
			out = append(out, m.theme.Error.Render("✖ "+t.Message))
		default:
			out = append(out, m.theme.Accent.Render("• "+t.Message))
		}
	}
	return strings.Join(out, "\n")
}
