package bot

import (
	"testing"

	"timetable/internal/core"
)

func TestReplyKeyboardLayout(t *testing.T) {
	menu := &core.Menu{
		Rows: [][]string{
			{core.MenuLabelDaySchedule},
			{core.MenuLabelWeekSchedule},
			{core.MenuLabelChangeGroup},
			{core.MenuLabelSubscribe},
		},
		Resize:      true,
		Placeholder: core.MenuPlaceholder,
	}

	keyboard := replyKeyboard(menu)
	if len(keyboard.Keyboard) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(keyboard.Keyboard))
	}
	for i, row := range keyboard.Keyboard {
		if len(row) != 1 {
			t.Errorf("row %d: expected 1 button, got %d", i, len(row))
		}
	}
	if got := keyboard.Keyboard[3][0].Text; got != core.MenuLabelSubscribe {
		t.Errorf("last row label = %q", got)
	}
	if !keyboard.ResizeKeyboard {
		t.Error("ResizeKeyboard should be set")
	}
	if keyboard.InputFieldPlaceholder != core.MenuPlaceholder {
		t.Errorf("placeholder = %q", keyboard.InputFieldPlaceholder)
	}
}
