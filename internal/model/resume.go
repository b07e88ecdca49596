package model

// PersonalInfo is the flat personal section of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ResumeDocument is persisted wholesale; there is no version field.
type ResumeDocument struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Education    []EducationEntry  `json:"education"`
	Experience   []ExperienceEntry `json:"experience"`
	Skills       []string          `json:"skills"`
}

// Normalized returns a copy whose lists are non-nil so they encode as [].
func (d ResumeDocument) Normalized() ResumeDocument {
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	if d.Experience == nil {
		d.Experience = []ExperienceEntry{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	return d
}
