package form

import (
	"github.com/Makepad-fr/resumeform/internal/elements"
	"github.com/Makepad-fr/resumeform/internal/nav"
)

// Element ids the controller reads and writes.
const (
	FullNameID = "fullName"
	EmailID    = "email"
	PhoneID    = "phone"
	AddressID  = "address"

	EducationListID  = "educationList"
	ExperienceListID = "experienceList"
	SkillsListID     = "skillsList"
	SkillInputID     = "skillInput"

	AddEducationID  = "addEducation"
	AddExperienceID = "addExperience"
	AddSkillID      = "addSkill"
	SaveButtonID    = "saveBtn"
	PrintButtonID   = "printBtn"

	NavID     = "nav"
	ActionsID = "actions"
)

// Classes applied by the controller.
const (
	SectionClass    = "section"
	EducationClass  = "education-item"
	ExperienceClass = "experience-item"
	SkillClass      = "skill-item"
	LockedClass     = "form-locked"
	UnlockClass     = "unlock-btn"
)

const (
	SaveLabel   = "Save Resume"
	UnlockLabel = "Unlock Form"
)

var sectionTitles = map[string]string{
	nav.PersonalInfo: "Personal Information",
	nav.Education:    "Education",
	nav.Experience:   "Work Experience",
	nav.Skills:       "Skills",
}

// SectionTitle is the heading shown for a section id.
func SectionTitle(section string) string { return sectionTitles[section] }

// BuildPage lays out the static form: nav, progress bar, the four sections
// and the save/print actions.
func BuildPage() *elements.Registry {
	r := elements.New()

	r.MustAppend(elements.RootID, &elements.Element{ID: NavID, Kind: elements.Container})
	for _, s := range nav.Sections {
		r.MustAppend(NavID, &elements.Element{
			ID: "nav-" + s, Kind: elements.NavItem, Label: sectionTitles[s], Section: s,
		})
	}
	r.MustAppend(elements.RootID, &elements.Element{ID: nav.ProgressBarID, Kind: elements.Container})

	section := func(id string) {
		el := r.MustAppend(elements.RootID, &elements.Element{
			ID: id, Kind: elements.Container, Label: sectionTitles[id], Section: id,
		})
		el.AddClass(SectionClass)
	}

	section(nav.PersonalInfo)
	r.MustAppend(nav.PersonalInfo, &elements.Element{ID: FullNameID, Kind: elements.Input, Placeholder: "Full Name"})
	r.MustAppend(nav.PersonalInfo, &elements.Element{ID: EmailID, Kind: elements.Input, Placeholder: "Email"})
	r.MustAppend(nav.PersonalInfo, &elements.Element{ID: PhoneID, Kind: elements.Input, Placeholder: "Phone"})
	r.MustAppend(nav.PersonalInfo, &elements.Element{ID: AddressID, Kind: elements.TextArea, Placeholder: "Address"})

	section(nav.Education)
	r.MustAppend(nav.Education, &elements.Element{ID: EducationListID, Kind: elements.Container})
	r.MustAppend(nav.Education, &elements.Element{ID: AddEducationID, Kind: elements.Button, Label: "Add Education"})

	section(nav.Experience)
	r.MustAppend(nav.Experience, &elements.Element{ID: ExperienceListID, Kind: elements.Container})
	r.MustAppend(nav.Experience, &elements.Element{ID: AddExperienceID, Kind: elements.Button, Label: "Add Experience"})

	section(nav.Skills)
	r.MustAppend(nav.Skills, &elements.Element{ID: SkillInputID, Kind: elements.Input, Placeholder: "Add a skill"})
	r.MustAppend(nav.Skills, &elements.Element{ID: AddSkillID, Kind: elements.Button, Label: "Add Skill"})
	r.MustAppend(nav.Skills, &elements.Element{ID: SkillsListID, Kind: elements.Container})

	r.MustAppend(elements.RootID, &elements.Element{ID: ActionsID, Kind: elements.Container})
	r.MustAppend(ActionsID, &elements.Element{ID: SaveButtonID, Kind: elements.Button, Label: SaveLabel})
	r.MustAppend(ActionsID, &elements.Element{ID: PrintButtonID, Kind: elements.Button, Label: "Print Resume"})

	return r
}
