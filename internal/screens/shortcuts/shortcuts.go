// Package shortcuts renders the full key reference.
package shortcuts

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clock25/internal/router"
	"github.com/abhisek/clock25/internal/screen"
	"github.com/abhisek/clock25/internal/ui/layout"
	"github.com/abhisek/clock25/internal/ui/theme"
)

// Screen lists every binding of a help.KeyMap.
type Screen struct {
	keys help.KeyMap
	help help.Model
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a key reference screen for keys.
func New(keys help.KeyMap) *Screen {
	h := help.New()
	h.ShowAll = true
	return &Screen{keys: keys, help: h}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Keys" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "any key", Description: "Back"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	body := theme.Card.Render(s.help.View(s.keys))
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
