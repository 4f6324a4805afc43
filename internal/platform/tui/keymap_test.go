package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFlap, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap, false},
		{"w", runeKey('w'), core.ActionFlap, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFlap, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, expected %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if got := km.MapMouse(press); got != core.ActionFlap {
		t.Errorf("left press = %v, expected Flap", got)
	}

	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if got := km.MapMouse(release); got != core.ActionNone {
		t.Errorf("left release = %v, expected None", got)
	}

	right := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if got := km.MapMouse(right); got != core.ActionNone {
		t.Errorf("right press = %v, expected None", got)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	if got := frame.Count(core.ActionFlap); got != 2 {
		t.Errorf("Count(Flap) = %d, expected 2", got)
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
}
