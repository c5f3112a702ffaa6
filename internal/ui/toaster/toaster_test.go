package toaster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m := New().Show("Cache refreshed", StyleSuccess)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Cache refreshed")
}

func TestHide(t *testing.T) {
	m := New().Show("Cache refreshed", StyleSuccess).Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("First", StyleSuccess).
		Show("Second", StyleError)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Second")
	assert.NotContains(t, m.View(), "First")
}

func TestView_EmptyWhenNotVisible(t *testing.T) {
	m := New()

	assert.Empty(t, m.View())
}

func TestView_EmptyWhenMessageEmpty(t *testing.T) {
	m := Model{visible: true, message: ""}

	assert.Empty(t, m.View())
}

func TestView_StyleSuccess(t *testing.T) {
	m := New().Show("Loaded 120 records", StyleSuccess)
	view := m.View()

	assert.Contains(t, view, "✅")
	assert.Contains(t, view, "Loaded 120 records")
	assert.Contains(t, view, "╭") // rounded border corner
}

func TestView_StyleError(t *testing.T) {
	m := New().Show("failed to load standard", StyleError)
	view := m.View()

	assert.Contains(t, view, "❌")
	assert.Contains(t, view, "failed to load standard")
	assert.Contains(t, view, "╭")
}

func TestView_StyleInfo(t *testing.T) {
	m := New().Show("Switched to Records", StyleInfo)
	view := m.View()

	assert.Contains(t, view, "ℹ️")
	assert.Contains(t, view, "Switched to Records")
	assert.Contains(t, view, "╭")
}

func TestView_StyleWarn(t *testing.T) {
	m := New().Show("2 standards failed to load", StyleWarn)
	view := m.View()

	assert.Contains(t, view, "⚠️")
	assert.Contains(t, view, "2 standards failed to load")
	assert.Contains(t, view, "╭")
}

func TestOverlay_NotVisibleReturnsBackground(t *testing.T) {
	m := New()
	bg := "Background\nContent"

	result := m.Overlay(bg, 20, 10)

	assert.Equal(t, bg, result)
}

func TestOverlay_VisiblePlacesAtBottom(t *testing.T) {
	m := New().Show("Toast", StyleSuccess)
	bg := strings.Repeat(strings.Repeat(".", 20)+"\n", 10)
	bg = strings.TrimSuffix(bg, "\n")

	result := m.Overlay(bg, 20, 10)

	lines := strings.Split(result, "\n")
	// Toast should be near the bottom (with padding)
	bottomLines := lines[len(lines)-5:]
	found := false
	for _, line := range bottomLines {
		if strings.Contains(line, "Toast") {
			found = true
			break
		}
	}
	assert.True(t, found, "Toast should appear near the bottom of the overlay")
}

func TestOverlay_TopLinesUntouched(t *testing.T) {
	m := New().Show("Toast", StyleSuccess)
	bg := strings.Repeat(strings.Repeat(".", 20)+"\n", 10)
	bg = strings.TrimSuffix(bg, "\n")

	result := m.Overlay(bg, 20, 10)

	lines := strings.Split(result, "\n")
	assert.Equal(t, strings.Repeat(".", 20), lines[0])
}

func TestOverlay_EmptyMessageReturnsBackground(t *testing.T) {
	m := Model{visible: true, message: ""}
	bg := "Background"

	result := m.Overlay(bg, 20, 10)

	assert.Equal(t, bg, result)
}

func TestScheduleDismiss(t *testing.T) {
	cmd := ScheduleDismiss(0)
	assert.NotNil(t, cmd)
}

func TestVisible_ImmutableModel(t *testing.T) {
	m1 := New()
	m2 := m1.Show("Hello", StyleSuccess)

	assert.False(t, m1.Visible())
	assert.True(t, m2.Visible())
}

func TestHide_ImmutableModel(t *testing.T) {
	m1 := New().Show("Hello", StyleSuccess)
	m2 := m1.Hide()

	assert.True(t, m1.Visible())
	assert.False(t, m2.Visible())
}
