package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typed(s string) []tea.KeyPressMsg {
	var out []tea.KeyPressMsg
	for _, r := range s {
		out = append(out, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return out
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var ran string
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { ran = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { ran = "D"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("after down Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down at the end moved to %d", m.Selected)
	}

	m.Update(key(tea.KeyEnter))
	if ran != "D" {
		t.Errorf("ran = %q, want D", ran)
	}

	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("after up Selected = %d, want 1", m.Selected)
	}
	if !strings.Contains(m.View(), "▸ B") {
		t.Errorf("View should mark B:\n%s", m.View())
	}
}

func TestTextInput_FiltersKeys(t *testing.T) {
	ti := NewTextInput("a/b", 12)
	for _, k := range typed("1x 1/2a") {
		ti, _ = ti.Update(k)
	}
	if got := ti.Value(); got != "1 1/2" {
		t.Errorf("Value = %q, want %q", got, "1 1/2")
	}

	ti.Submit(true)
	if !strings.Contains(ti.View(), "✓") {
		t.Error("graded view should show a check mark")
	}
	ti.Reset()
	if ti.Value() != "" || strings.Contains(ti.View(), "✓") {
		t.Error("Reset should clear value and mark")
	}
}

func TestStepBar(t *testing.T) {
	bar := NewStepBar("Practice", 2, 3, 40)
	if !strings.Contains(bar.View(), "2 of 3") {
		t.Errorf("View = %q", bar.View())
	}
	if NewStepBar("", 0, 0, 10).Percent != 0 {
		t.Error("empty total should be 0%")
	}
}

func TestButton(t *testing.T) {
	pressed := false
	b := NewButton("I understand", true, func() tea.Cmd { pressed = true; return nil })
	b.Update(key(tea.KeyEnter))
	if !pressed {
		t.Error("Enter should press an active button")
	}

	pressed = false
	b.Active = false
	b.Update(key(tea.KeyEnter))
	if pressed {
		t.Error("inactive button pressed")
	}
}
