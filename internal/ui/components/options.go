package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/biascheck/internal/ui/theme"
)

// Choice is a single answer option shown in an OptionList.
type Choice struct {
	ID   string
	Text string
}

// OptionList renders answer options with a keyboard cursor. It does not
// own the selection; callers pass the chosen ID in at render time.
type OptionList struct {
	Choices []Choice
	Cursor  int
}

// NewOptionList creates an option list with the cursor on the first choice.
func NewOptionList(choices []Choice) OptionList {
	return OptionList{Choices: choices}
}

// Update moves the cursor and returns the ID the user picked, if any.
// Space picks the choice under the cursor; digits 1–9 pick directly.
func (o OptionList) Update(msg tea.Msg) (OptionList, string) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(o.Choices) == 0 {
		return o, ""
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Choices)-1 {
			o.Cursor++
		}
	case "space", " ":
		return o, o.Choices[o.Cursor].ID
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(o.Choices) {
				o.Cursor = i
				return o, o.Choices[i].ID
			}
		}
	}
	return o, ""
}

// View renders the options. Once revealed, the correct option is marked
// green and a wrong pick red.
func (o OptionList) View(selectedID, correctID string, revealed bool) string {
	var s string
	for i, c := range o.Choices {
		prefix := "  "
		if i == o.Cursor && !revealed {
			prefix = "▸ "
		}
		mark := "○"
		if c.ID == selectedID {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d. %s %s", prefix, i+1, mark, c.Text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case revealed && c.ID == correctID:
			style = theme.Correct
			line += "  ✓"
		case revealed && c.ID == selectedID:
			style = theme.Incorrect
			line += "  ✗"
		case revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case c.ID == selectedID:
			style = theme.Selected
		case i == o.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
