package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📰 Diggi News Assistant"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Results
	if m.Result != nil && (m.State == StateResult || m.State == StateAsking || m.State == StateAnswer) {
		b.WriteString(BoxStyle.Render(m.formatResult()))
		b.WriteString("\n\n")
	}

	// Follow-up answer
	if m.State == StateAnswer && m.Answer != "" {
		answer := HighlightStyle.Render("Answer") + "\n\n" + m.Answer
		b.WriteString(BoxStyle.Render(answer))
		b.WriteString("\n\n")
	}

	// Input line
	switch m.State {
	case StateInput, StateError:
		b.WriteString(fmt.Sprintf("Topic> %s█\n\n", m.Input))
		b.WriteString(InfoStyle.Render("Type a topic and press Enter | 'q' on an empty line or Ctrl+C to quit"))
	case StateResult, StateAnswer:
		b.WriteString(fmt.Sprintf("Ask> %s█\n\n", m.Input))
		b.WriteString(InfoStyle.Render("Type a follow-up question | Esc for a new topic | Ctrl+C to quit"))
	default:
		b.WriteString(InfoStyle.Render("Ctrl+C to quit"))
	}

	return b.String()
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateInput:
		return HighlightStyle.Render("👋 What's in the news?")
	case StateAnalyzing:
		return StatusStyle.Render(fmt.Sprintf("⏳ Analyzing %q: fetching, extracting and summarizing...", m.Query))
	case StateAsking:
		return StatusStyle.Render(fmt.Sprintf("⏳ Answering %q...", m.Question))
	case StateResult, StateAnswer:
		return StatusStyle.Render(fmt.Sprintf("✅ Analysis of %q", m.Query))
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", errMsg))
	default:
		return ""
	}
}

// formatResult renders the pipeline result for display
func (m Model) formatResult() string {
	var b strings.Builder
	r := m.Result

	b.WriteString(HighlightStyle.Render("Combined Summary"))
	b.WriteString("\n\n")
	b.WriteString(r.Summary)
	b.WriteString("\n\n")

	if len(r.Articles) > 0 {
		b.WriteString(HighlightStyle.Render("Sources"))
		b.WriteString("\n")
		for _, a := range r.Articles {
			line := fmt.Sprintf("  %s (credibility %s): %s", a.Source, a.Credibility, a.Title)
			b.WriteString(InfoStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(r.Perspectives) > 0 {
		b.WriteString(HighlightStyle.Render("Perspectives"))
		b.WriteString("\n")
		for _, p := range r.Perspectives {
			b.WriteString(StatusStyle.Render("  " + p.Perspective))
			b.WriteString("\n")
			b.WriteString(InfoStyle.Render("    " + p.Summary))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(r.Followups) > 0 {
		b.WriteString(HighlightStyle.Render("Suggested Questions"))
		b.WriteString("\n")
		for i, q := range r.Followups {
			b.WriteString(InfoStyle.Render(fmt.Sprintf("  %d. %s", i+1, q)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
