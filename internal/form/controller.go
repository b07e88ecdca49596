// Package form is the resume form controller: lock/save, restore on start,
// the list editors and the event dispatch table.
package form

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/resumeform/internal/document"
	"github.com/Makepad-fr/resumeform/internal/elements"
	"github.com/Makepad-fr/resumeform/internal/model"
	"github.com/Makepad-fr/resumeform/internal/nav"
	"github.com/Makepad-fr/resumeform/internal/store"
)

// Printer receives the current document on a print action and reports
// where it went.
type Printer interface {
	Print(doc model.ResumeDocument) (string, error)
}

type Options struct {
	Registry *elements.Registry // defaults to BuildPage()
	Storage  store.Storage      // required
	Tracker  *nav.Tracker       // defaults to a tracker over Registry
	Printer  Printer            // print actions fail without one
	Logger   *slog.Logger
	Now      func() time.Time
	NewID    func() string
}

type Controller struct {
	state   *State
	reg     *elements.Registry
	storage store.Storage
	tracker *nav.Tracker
	printer Printer
	log     *slog.Logger
	now     func() time.Time
	newID   func() string

	toasts    []Toast
	nextToast int
	disp      *Dispatcher
}

func New(opt Options) *Controller {
	c := &Controller{
		state:   &State{},
		reg:     opt.Registry,
		storage: opt.Storage,
		tracker: opt.Tracker,
		printer: opt.Printer,
		log:     opt.Logger,
		now:     opt.Now,
		newID:   opt.NewID,
	}
	if c.reg == nil {
		c.reg = BuildPage()
	}
	if c.tracker == nil {
		c.tracker = nav.New(c.reg)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	c.disp = NewDispatcher()
	return c
}

func (c *Controller) State() *State                { return c.state }
func (c *Controller) Registry() *elements.Registry { return c.reg }
func (c *Controller) Tracker() *nav.Tracker        { return c.tracker }
func (c *Controller) Dispatcher() *Dispatcher      { return c.disp }

// Dispatch routes ev through the controller's dispatch table.
func (c *Controller) Dispatch(ev Event) error {
	return c.disp.Dispatch(c, ev)
}

// ToggleLock flips the lock. Locking saves the whole document; a failed
// write leaves the form unlocked and returns a *SaveError.
func (c *Controller) ToggleLock() error {
	c.state.Locked = !c.state.Locked
	c.setFieldsDisabled(c.state.Locked)
	if !c.state.Locked {
		c.log.Debug("form unlocked")
		return nil
	}

	doc := c.collect()
	c.state.Education = doc.Education
	c.state.Experience = doc.Experience

	if err := c.save(doc); err != nil {
		c.state.Locked = false
		c.setFieldsDisabled(false)
		c.pushToast(ToastError, "Could not save resume: "+err.Cause.Error())
		c.log.Error("save failed", "err", err)
		return err
	}
	c.pushToast(ToastSuccess, "Resume saved successfully!")
	c.log.Info("resume saved",
		"education", len(doc.Education),
		"experience", len(doc.Experience),
		"skills", len(doc.Skills))
	return nil
}

func (c *Controller) save(doc model.ResumeDocument) *SaveError {
	blob, err := document.Encode(doc)
	if err != nil {
		return &SaveError{Message: "encode", Cause: err}
	}
	if err := c.storage.Set(document.StorageKey, blob); err != nil {
		return &SaveError{Message: "write storage", Cause: err}
	}
	return nil
}

// Restore repopulates personal-info inputs from the stored document, by key.
// Lists are not restored. Missing or unusable data is treated as no data.
func (c *Controller) Restore() {
	raw, err := c.storage.Get(document.StorageKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.log.Warn("restore: read storage", "err", err)
		}
		return
	}
	fields, err := document.PersonalFields(raw)
	if err != nil {
		c.log.Debug("restore: ignoring stored document", "err", err)
		return
	}
	n := 0
	for _, f := range fields {
		el := c.reg.Get(f.Key)
		if el == nil || !el.Kind.Editable() {
			continue
		}
		el.Value = f.Value
		n++
	}
	c.log.Debug("restored personal info", "fields", n)
}

// Print sends the live form (not the stored copy) to the printer.
func (c *Controller) Print() error {
	if c.printer == nil {
		err := &PrintError{Message: "no printer configured"}
		c.pushToast(ToastError, err.Error())
		return err
	}
	dest, err := c.printer.Print(c.collect())
	if err != nil {
		pe := &PrintError{Message: "printer failed", Cause: err}
		c.pushToast(ToastError, "Could not print resume: "+err.Error())
		c.log.Error("print failed", "err", err)
		return pe
	}
	c.pushToast(ToastInfo, fmt.Sprintf("Resume printed to %s", dest))
	c.log.Info("resume printed", "dest", dest)
	return nil
}

func (c *Controller) personalInfo() model.PersonalInfo {
	return model.PersonalInfo{
		FullName: c.reg.Value(FullNameID),
		Email:    c.reg.Value(EmailID),
		Phone:    c.reg.Value(PhoneID),
		Address:  c.reg.Value(AddressID),
	}
}

func (c *Controller) collect() model.ResumeDocument {
	doc := model.ResumeDocument{
		PersonalInfo: c.personalInfo(),
		Skills:       append([]string(nil), c.state.Skills...),
	}
	for _, row := range c.reg.Children(EducationListID) {
		doc.Education = append(doc.Education, model.EducationEntry{
			School: c.reg.Value(fieldID(row.ID, "school")),
			Degree: c.reg.Value(fieldID(row.ID, "degree")),
			Year:   c.reg.Value(fieldID(row.ID, "year")),
		})
	}
	for _, row := range c.reg.Children(ExperienceListID) {
		doc.Experience = append(doc.Experience, model.ExperienceEntry{
			Company:     c.reg.Value(fieldID(row.ID, "company")),
			Position:    c.reg.Value(fieldID(row.ID, "position")),
			Duration:    c.reg.Value(fieldID(row.ID, "duration")),
			Description: c.reg.Value(fieldID(row.ID, "description")),
		})
	}
	return doc.Normalized()
}

// setFieldsDisabled applies the lock to every input, textarea and button
// except save and print, and flips the save button between its two faces.
func (c *Controller) setFieldsDisabled(disabled bool) {
	for _, el := range c.reg.ByKind(elements.Input, elements.TextArea, elements.Button) {
		if el.ID == SaveButtonID || el.ID == PrintButtonID {
			continue
		}
		el.Disabled = disabled
	}

	body := c.reg.Get(elements.RootID)
	save := c.reg.Get(SaveButtonID)
	if disabled {
		body.AddClass(LockedClass)
		if save != nil {
			save.Label = UnlockLabel
			save.AddClass(UnlockClass)
		}
		return
	}
	body.RemoveClass(LockedClass)
	if save != nil {
		save.Label = SaveLabel
		save.RemoveClass(UnlockClass)
	}
}

// Toasts returns the toasts that have not expired or been dismissed.
func (c *Controller) Toasts() []Toast {
	return append([]Toast(nil), c.toasts...)
}

func (c *Controller) DismissToast(id int) {
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

// ExpireToasts drops every toast whose deadline is at or before now.
func (c *Controller) ExpireToasts(now time.Time) {
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

func (c *Controller) pushToast(kind ToastKind, msg string) {
	c.nextToast++
	c.toasts = append(c.toasts, Toast{
		ID:        c.nextToast,
		Kind:      kind,
		Message:   msg,
		ExpiresAt: c.now().Add(ToastTTL),
	})
}
