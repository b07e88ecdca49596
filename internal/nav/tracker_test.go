package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/resumeform/internal/elements"
)

type recordScroller struct{ offsets []int }

func (r *recordScroller) ScrollTo(offset int) { r.offsets = append(r.offsets, offset) }

func navTree(t *testing.T) *elements.Registry {
	t.Helper()
	reg := elements.New()
	for _, s := range Sections {
		require.NoError(t, reg.Append(elements.RootID, &elements.Element{
			ID: "nav-" + s, Kind: elements.NavItem, Section: s,
		}))
	}
	require.NoError(t, reg.Append(elements.RootID, &elements.Element{ID: ProgressBarID, Kind: elements.Container}))
	return reg
}

func withBounds(tr *Tracker) {
	tr.SetBounds(PersonalInfo, Bounds{Top: 0, Height: 400})
	tr.SetBounds(Education, Bounds{Top: 400, Height: 300})
	tr.SetBounds(Experience, Bounds{Top: 700, Height: 500})
	tr.SetBounds(Skills, Bounds{Top: 1200, Height: 200})
}

func TestTracker_InitialState(t *testing.T) {
	tr := New(navTree(t))
	assert.Equal(t, PersonalInfo, tr.Current())
	assert.Equal(t, 25.0, tr.Progress())
	assert.Equal(t, DefaultThreshold, tr.Threshold())
	assert.Empty(t, tr.Active())
}

func TestTracker_NavigateActivatesExactlyOne(t *testing.T) {
	reg := navTree(t)
	sc := &recordScroller{}
	tr := New(reg, WithScroller(sc))
	withBounds(tr)

	for _, s := range []string{Experience, Education, Skills} {
		require.True(t, tr.Navigate(s))
		assert.Equal(t, []string{s}, tr.Active())
		assert.Equal(t, s, tr.Current())
	}
	assert.Equal(t, []int{700, 400, 1200}, sc.offsets)
	assert.Equal(t, "100%", reg.Get(ProgressBarID).Style("width"))
}

func TestTracker_NavigateUnknownIgnored(t *testing.T) {
	tr := New(navTree(t))
	require.True(t, tr.Navigate(Education))
	assert.False(t, tr.Navigate("references"))
	assert.Equal(t, Education, tr.Current())
	assert.Equal(t, []string{Education}, tr.Active())
}

func TestTracker_Progress(t *testing.T) {
	tr := New(navTree(t))
	want := map[string]float64{PersonalInfo: 25, Education: 50, Experience: 75, Skills: 100}
	for s, p := range want {
		tr.Navigate(s)
		assert.Equal(t, p, tr.Progress(), s)
	}
}

func TestTracker_OnScrollThreshold(t *testing.T) {
	reg := navTree(t)
	tr := New(reg)
	withBounds(tr)

	tests := []struct {
		offset int
		want   string
	}{
		{0, PersonalInfo},
		{299, PersonalInfo},
		{300, Education},  // 400-100
		{599, Education},  // < 400+300-100
		{600, Experience}, // next section's activation starts
		{1100, Skills},
		{1299, Skills},
	}
	for _, tt := range tests {
		tr.OnScroll(tt.offset)
		assert.Equal(t, tt.want, tr.Current(), "offset %d", tt.offset)
		assert.Equal(t, []string{tt.want}, tr.Active(), "offset %d", tt.offset)
	}
	assert.Equal(t, "100%", reg.Get(ProgressBarID).Style("width"))
}

func TestTracker_OnScrollPastEndKeepsCurrent(t *testing.T) {
	tr := New(navTree(t), WithThreshold(10))
	withBounds(tr)
	tr.OnScroll(750)
	require.Equal(t, Experience, tr.Current())

	tr.OnScroll(5000)
	assert.Equal(t, Experience, tr.Current())
}

func TestTracker_LastHandlerWins(t *testing.T) {
	tr := New(navTree(t))
	withBounds(tr)

	tr.Navigate(Skills)
	tr.OnScroll(0)
	assert.Equal(t, PersonalInfo, tr.Current())
	assert.Equal(t, []string{PersonalInfo}, tr.Active())
}
