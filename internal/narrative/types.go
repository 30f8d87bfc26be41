package narrative

import (
	"time"

	"github.com/google/uuid"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

// Context is the input handed to the remote report generator.
type Context struct {
	ID          uuid.UUID        `json:"id"`
	Metrics     evm.Metrics      `json:"metrics"`
	Results     evm.Results      `json:"results"`
	Constraints *evm.Constraints `json:"constraints,omitempty"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

// Report is the structured response returned by the generator.
// Its contents are displayed as-is.
type Report struct {
	Summary         string   `json:"summary"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// messagesRequest is the Messages API request body.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the subset of the Messages API response that is read.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}
