package tui

import (
	"diggi/types"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the application state machine
type State string

const (
	StateInput     State = "input"
	StateAnalyzing State = "analyzing"
	StateResult    State = "result"
	StateAsking    State = "asking"
	StateAnswer    State = "answer"
	StateError     State = "error"
)

// Model represents the TUI client state (thin client over the diggi API)
type Model struct {
	Client *APIClient

	State State
	Input string

	// Last completed run
	Query  string
	Result *types.PipelineResult

	// Follow-up exchange
	Question string
	Answer   string

	Err error
}

// NewModel creates a new TUI model
func NewModel(apiURL string) Model {
	return Model{
		Client: NewAPIClient(apiURL),
		State:  StateInput,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// priorContext returns the combined summary of the last run, the context
// carried into follow-up questions.
func (m Model) priorContext() string {
	if m.Result == nil {
		return ""
	}
	return m.Result.Summary
}
