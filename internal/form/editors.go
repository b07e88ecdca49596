package form

import (
	"strings"

	"github.com/Makepad-fr/resumeform/internal/elements"
)

// RemoveSuffix names the remove button of an entry row.
const RemoveSuffix = "remove"

func fieldID(rowID, field string) string { return rowID + "-" + field }

// AddEducation appends one empty education row. It returns the row id, or
// "" when the add button is disabled.
func (c *Controller) AddEducation() string {
	if c.disabled(AddEducationID) {
		return ""
	}
	row := c.appendRow(EducationListID, "edu", EducationClass)
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, "school"), Kind: elements.Input, Placeholder: "School Name"})
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, "degree"), Kind: elements.Input, Placeholder: "Degree"})
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, "year"), Kind: elements.Input, Placeholder: "Year"})
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, RemoveSuffix), Kind: elements.Button, Label: "Remove"})
	c.log.Debug("education row added", "row", row)
	return row
}

func (c *Controller) AddExperience() string {
	if c.disabled(AddExperienceID) {
		return ""
	}
	row := c.appendRow(ExperienceListID, "exp", ExperienceClass)
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, "company"), Kind: elements.Input, Placeholder: "Company"})
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, "position"), Kind: elements.Input, Placeholder: "Position"})
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, "duration"), Kind: elements.Input, Placeholder: "Duration"})
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, "description"), Kind: elements.TextArea, Placeholder: "Description"})
	c.reg.MustAppend(row, &elements.Element{ID: fieldID(row, RemoveSuffix), Kind: elements.Button, Label: "Remove"})
	c.log.Debug("experience row added", "row", row)
	return row
}

// AddSkill takes the skill input's value. Blank input is ignored.
func (c *Controller) AddSkill() string {
	if c.disabled(AddSkillID) {
		return ""
	}
	v := c.reg.Value(SkillInputID)
	if strings.TrimSpace(v) == "" {
		return ""
	}
	row := c.appendRow(SkillsListID, "skill", SkillClass)
	c.reg.Get(row).Label = v
	c.state.Skills = append(c.state.Skills, v)
	c.reg.SetValue(SkillInputID, "")
	c.log.Debug("skill added", "skill", v)
	return row
}

// RemoveRow drops one entry row. id may be the row itself or any element
// inside it (its remove button, typically). Skill values stay in State.Skills.
func (c *Controller) RemoveRow(id string) bool {
	if c.state.Locked {
		return false
	}
	row := c.RowOf(id)
	if row == "" {
		return false
	}
	if btn := c.reg.Get(fieldID(row, RemoveSuffix)); btn != nil && btn.Disabled {
		return false
	}
	c.reg.Remove(row)
	c.log.Debug("row removed", "row", row)
	return true
}

// RowOf returns the entry row containing id, or "".
func (c *Controller) RowOf(id string) string {
	el := c.reg.Get(id)
	for el != nil {
		switch el.Parent() {
		case EducationListID, ExperienceListID, SkillsListID:
			return el.ID
		case "", elements.RootID:
			return ""
		}
		el = c.reg.Get(el.Parent())
	}
	return ""
}

func (c *Controller) appendRow(list, prefix, class string) string {
	row := &elements.Element{ID: prefix + "-" + c.newID(), Kind: elements.Container}
	if list == SkillsListID {
		row.Kind = elements.Text
	}
	row.AddClass(class)
	c.reg.MustAppend(list, row)
	return row.ID
}

func (c *Controller) disabled(id string) bool {
	el := c.reg.Get(id)
	return el == nil || el.Disabled
}
