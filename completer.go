package articlecheck

import "context"

// CompletionRequest is a single prompt sent to a language model.
type CompletionRequest struct {
	// System is the system instruction.
	System string

	// Prompt is the user message.
	Prompt string

	Temperature float32

	// JSON asks the model to reply with a single JSON object.
	JSON bool
}

// Completer sends prompts to a language model and returns its reply text.
type Completer interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
