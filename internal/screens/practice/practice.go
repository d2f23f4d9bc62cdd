// Package practice is the terminal practice screen: it drives the turn
// engine and renders questions, feedback, and session progress.
package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/store"
	"github.com/nmalhotra/drill/internal/turn"
	"github.com/nmalhotra/drill/internal/ui/components"
	"github.com/nmalhotra/drill/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseDone
	phaseError
)

// Model is the Bubble Tea model for a practice session.
type Model struct {
	engine  *turn.Engine
	session *store.Session
	learner *store.Learner

	phase       phase
	item        *itemgen.Item
	result      *turn.Result
	totals      *store.SessionTotals
	err         error
	asked       int
	correct     int
	questionAt  time.Time
	multiChoice components.MultiChoice
	textInput   components.TextInput
	width       int
}

type itemMsg struct {
	item *itemgen.Item
	err  error
}

type resultMsg struct {
	result *turn.Result
	err    error
}

type totalsMsg struct {
	totals *store.SessionTotals
	err    error
}

// New creates a practice model for an already-started session.
func New(engine *turn.Engine, learner *store.Learner, session *store.Session, first *itemgen.Item) Model {
	m := Model{
		engine:  engine,
		session: session,
		learner: learner,
		phase:   phaseLoading,
	}
	if first != nil {
		m.setItem(first)
	}
	return m
}

func (m *Model) setItem(item *itemgen.Item) {
	m.item = item
	m.phase = phaseQuestion
	m.questionAt = time.Now()
	if item.Type == itemgen.TypeMCQ {
		options := make([]string, 0, len(item.Options))
		for _, o := range item.Options {
			options = append(options, itemgen.StripLetterPrefix(o))
		}
		m.multiChoice = components.NewMultiChoice(item.Content, options, correctIndex(item))
	} else {
		m.textInput = components.NewTextInput("your answer", false, 64)
	}
}

func correctIndex(item *itemgen.Item) int {
	resolved := itemgen.ResolveAnswerText(item.CorrectAnswer, item.Options)
	for i, o := range item.Options {
		if strings.EqualFold(itemgen.StripLetterPrefix(o), resolved) {
			return i
		}
	}
	return -1
}

func (m Model) Init() tea.Cmd {
	if m.item == nil {
		return m.nextCmd()
	}
	if m.item.Type != itemgen.TypeMCQ {
		return m.textInput.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case itemMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseError
			return m, nil
		}
		if msg.item == nil {
			m.phase = phaseDone
			return m, m.endCmd()
		}
		m.setItem(msg.item)
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseError
			return m, nil
		}
		m.result = msg.result
		m.asked++
		if msg.result.IsCorrect {
			m.correct++
		}
		m.phase = phaseFeedback
		return m, nil

	case totalsMsg:
		m.totals = msg.totals
		m.phase = phaseDone
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseQuestion && m.item != nil && m.item.Type != itemgen.TypeMCQ {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	switch m.phase {
	case phaseQuestion:
		if key == "esc" {
			m.phase = phaseLoading
			return m, m.endCmd()
		}
		if m.item.Type == itemgen.TypeMCQ {
			var cmd tea.Cmd
			m.multiChoice, cmd = m.multiChoice.Update(msg)
			if m.multiChoice.Submitted {
				answer := m.multiChoice.Options[m.multiChoice.ChosenIndex]
				return m, tea.Batch(cmd, m.submitCmd(answer))
			}
			return m, cmd
		}
		if key == "enter" {
			answer := strings.TrimSpace(m.textInput.Value())
			if answer == "" {
				return m, nil
			}
			return m, m.submitCmd(answer)
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd

	case phaseFeedback:
		switch key {
		case "enter", "n":
			m.phase = phaseLoading
			return m, m.nextCmd()
		case "esc", "e":
			m.phase = phaseLoading
			return m, m.endCmd()
		}

	case phaseDone, phaseError:
		switch key {
		case "q", "enter", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) submitCmd(answer string) tea.Cmd {
	sessionID := m.session.ID
	elapsed := time.Since(m.questionAt).Seconds()
	return func() tea.Msg {
		res, err := m.engine.Submit(context.Background(), sessionID, answer, elapsed)
		return resultMsg{result: res, err: err}
	}
}

func (m Model) nextCmd() tea.Cmd {
	sessionID := m.session.ID
	return func() tea.Msg {
		item, err := m.engine.Next(context.Background(), sessionID)
		return itemMsg{item: item, err: err}
	}
}

func (m Model) endCmd() tea.Cmd {
	sessionID := m.session.ID
	return func() tea.Msg {
		totals, err := m.engine.End(context.Background(), sessionID)
		return totalsMsg{totals: totals, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s — question %d", m.learner.Name, m.asked+1)
	b.WriteString(theme.Title.Render(header) + "\n")
	if m.asked > 0 {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d/%d correct this session", m.correct, m.asked)) + "\n")
	}
	b.WriteString("\n")

	switch m.phase {
	case phaseLoading:
		b.WriteString(theme.Hint.Render("Thinking of a good question..."))

	case phaseQuestion:
		if m.item.Type == itemgen.TypeMCQ {
			b.WriteString(m.multiChoice.View())
		} else {
			b.WriteString(theme.Body.Bold(true).Render(m.item.Content) + "\n\n")
			b.WriteString(m.textInput.View())
		}
		b.WriteString("\n\n" + theme.Hint.Render("Enter to answer · Esc to finish"))

	case phaseFeedback:
		b.WriteString(m.feedbackView())
		b.WriteString("\n\n" + theme.Hint.Render("Enter for the next question · Esc to finish"))

	case phaseDone:
		b.WriteString(theme.Title.Render("Session complete!") + "\n\n")
		if m.totals != nil {
			b.WriteString(theme.Body.Render(fmt.Sprintf("Answered %d, got %d right (%.0f%%).",
				m.totals.Total, m.totals.Correct, m.totals.Accuracy*100)))
		}
		b.WriteString("\n" + theme.Hint.Render("Press q to quit"))

	case phaseError:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("Something went wrong: " + m.err.Error()))
		b.WriteString("\n" + theme.Hint.Render("Press q to quit"))
	}

	return theme.Card.Render(b.String())
}

func (m Model) feedbackView() string {
	var b strings.Builder
	r := m.result

	if r.IsCorrect {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!"))
	} else if r.IsClose {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("So close!"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Not quite."))
	}

	delta := r.RatingAfter - r.RatingBefore
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  rating %+.1f → %.1f", delta, r.RatingAfter)) + "\n\n")

	if !r.IsCorrect {
		b.WriteString(theme.Body.Render("The answer was: "+r.CorrectAnswer) + "\n")
		if r.Explanation != nil {
			b.WriteString(theme.Hint.Render(r.Explanation.Encouragement) + "\n")
			b.WriteString(theme.Body.Render(r.Explanation.Explanation) + "\n")
			if r.Explanation.Tip != "" {
				b.WriteString(theme.Hint.Render("Tip: "+r.Explanation.Tip) + "\n")
			}
		}
	} else if m.item.Explanation != "" {
		b.WriteString(theme.Hint.Render(m.item.Explanation) + "\n")
	}

	return b.String()
}
