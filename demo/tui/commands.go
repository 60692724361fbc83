package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// analyzeCmd runs the full pipeline for a query
func analyzeCmd(client *APIClient, query, context string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Analyze(query, context)
		return AnalyzeCompleteMsg{Result: result, Err: err}
	}
}

// followupCmd asks one follow-up question
func followupCmd(client *APIClient, question, context string) tea.Cmd {
	return func() tea.Msg {
		answer, err := client.Followup(question, context)
		return AnswerReceivedMsg{Answer: answer, Err: err}
	}
}
