package gemini_test

import (
	"context"
	"strings"
	"testing"

	"github.com/bhilliardga/canvex"
	"github.com/bhilliardga/canvex/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_EmptyQuestion(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, canvex.NewCourseContext("material"), "gemini-2.5-flash")
	_, err := asker.Ask(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, canvex.EINVALID, canvex.ErrorCode(err))
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("CS101 syllabus", "When is the exam?")
	assert.Equal(t, "Here is the course material:\nCS101 syllabus\n\nNow answer this question:\nWhen is the exam?", prompt)
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	cfg := gemini.BuildConfig()
	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.True(t, strings.Contains(cfg.SystemInstruction.Parts[0].Text, "tutor"))
}
