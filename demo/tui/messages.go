package tui

import "diggi/types"

// Messages for the tea program

// AnalyzeCompleteMsg is sent when the pipeline run finishes
type AnalyzeCompleteMsg struct {
	Result *types.PipelineResult
	Err    error
}

// AnswerReceivedMsg is sent when a follow-up answer arrives
type AnswerReceivedMsg struct {
	Answer string
	Err    error
}
