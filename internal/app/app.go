// Package app hosts the root Bubble Tea model for the practice TUI.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/screens/practice"
	"github.com/nmalhotra/drill/internal/store"
	"github.com/nmalhotra/drill/internal/turn"
)

// Options carries everything the TUI needs.
type Options struct {
	Engine  *turn.Engine
	Learner *store.Learner
	Session *store.Session
	First   *itemgen.Item
}

// appModel is the root Bubble Tea model.
type appModel struct {
	screen practice.Model
	width  int
	height int
}

func newAppModel(opts Options) appModel {
	return appModel{
		screen: practice.New(opts.Engine, opts.Learner, opts.Session, opts.First),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.screen.View())
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
