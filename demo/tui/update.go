package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case AnalyzeCompleteMsg:
		return m.handleAnalyzeComplete(msg)
	case AnswerReceivedMsg:
		return m.handleAnswerReceived(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.State {
	case StateInput, StateResult, StateAnswer, StateError:
		return m.handleTyping(msg)
	}
	return m, nil
}

// handleTyping accumulates the query/question line and submits on enter.
func (m Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.Input == "" {
			return m, tea.Quit
		}
	case "enter":
		line := strings.TrimSpace(m.Input)
		if line == "" {
			return m, nil
		}
		m.Input = ""
		if m.State == StateInput || m.State == StateError {
			m.Query = line
			m.State = StateAnalyzing
			return m, analyzeCmd(m.Client, line, "")
		}
		// After a run, typed lines are follow-up questions.
		m.Question = line
		m.State = StateAsking
		return m, followupCmd(m.Client, line, m.priorContext())
	case "backspace":
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
		}
		return m, nil
	case "esc":
		m.Input = ""
		m.State = StateInput
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.Input += string(msg.Runes)
	} else if msg.String() == " " {
		m.Input += " "
	}
	return m, nil
}

// handleAnalyzeComplete processes pipeline completion
func (m Model) handleAnalyzeComplete(msg AnalyzeCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Result = msg.Result
	m.Answer = ""
	m.State = StateResult
	return m, nil
}

// handleAnswerReceived processes a follow-up answer
func (m Model) handleAnswerReceived(msg AnswerReceivedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Answer = msg.Answer
	m.State = StateAnswer
	return m, nil
}
