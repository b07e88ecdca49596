package form

import (
	"time"

	"github.com/Makepad-fr/resumeform/internal/model"
)

// State is the mutable form state. One controller owns it; handlers get it
// through the controller, never through package globals.
type State struct {
	Education  []model.EducationEntry
	Experience []model.ExperienceEntry
	// Skills only ever grows: removing a skill row leaves its value here.
	Skills []string
	Locked bool
}

// ToastTTL is how long a toast stays up before it removes itself.
const ToastTTL = 3000 * time.Millisecond

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

type Toast struct {
	ID        int
	Kind      ToastKind
	Message   string
	ExpiresAt time.Time
}
