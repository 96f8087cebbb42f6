// Package gemini implements question answering over exported course
// material using Google Gemini.
package gemini

import (
	"context"
	"fmt"

	"github.com/bhilliardga/canvex"
	"google.golang.org/genai"
)

// maxContextChars caps the course-material context per ask for token safety.
const maxContextChars = 60000

// Ensure Asker implements canvex.Asker at compile time.
var _ canvex.Asker = (*Asker)(nil)

// Asker answers questions about course material using Google Gemini.
// The course context is fixed at construction time.
type Asker struct {
	client  *genai.Client
	context canvex.CourseContext
	model   string
}

// NewAsker creates a new Asker over the given course context.
func NewAsker(client *genai.Client, courseCtx canvex.CourseContext, model string) *Asker {
	return &Asker{client: client, context: courseCtx, model: model}
}

// Ask answers a natural language question about the course material.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", canvex.Errorf(canvex.EINVALID, "question required")
	}

	prompt := BuildUserPrompt(a.context.Text(maxContextChars), question)

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", canvex.Errorf(canvex.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful tutor who only answers based on the course materials provided.",
			}},
		},
	}
}

// BuildUserPrompt builds the user prompt containing the course material and
// the question.
func BuildUserPrompt(material, question string) string {
	return fmt.Sprintf("Here is the course material:\n%s\n\nNow answer this question:\n%s", material, question)
}
