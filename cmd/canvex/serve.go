package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bhilliardga/canvex"
	"github.com/bhilliardga/canvex/canvas"
	"github.com/bhilliardga/canvex/export"
	"github.com/bhilliardga/canvex/fs"
	"github.com/bhilliardga/canvex/gemini"
	"github.com/bhilliardga/canvex/goquery"
	"github.com/bhilliardga/canvex/htmltomarkdown"
	canvexhttp "github.com/bhilliardga/canvex/http"
	canvexslog "github.com/bhilliardga/canvex/slog"
	"google.golang.org/genai"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))

	factory := func(apiBase, token string) canvex.CourseService {
		return canvas.NewClient(apiBase, token, canvas.WithRequestsPerSecond(c.RPS))
	}

	var exports canvex.ExportService = export.NewService(factory, goquery.NewFileRefExtractor())
	exports = canvexslog.NewLoggingExportService(exports, logger)

	asker, err := c.buildAsker(deps, logger)
	if err != nil {
		return err
	}

	server := canvexhttp.NewServer(exports, asker,
		canvexhttp.WithLogger(logger),
		canvexhttp.WithAllowedOrigin(c.AllowedOrigin),
	)

	srv := &http.Server{Addr: c.Addr, Handler: server.Router()}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)

	select {
	case <-deps.Ctx.Done():
		return srv.Close()
	case err := <-errCh:
		return err
	}
}

// buildAsker assembles the chat subsystem: the course context is loaded
// once here and injected into the Asker. Returns nil (no error) when
// GEMINI_API_KEY is unset; the chat endpoint then reports unavailable.
func (c *ServeCmd) buildAsker(deps *Dependencies, logger *slog.Logger) (canvex.Asker, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY not set; chat endpoint disabled")
		return nil, nil
	}

	// Document sources need a TextExtractor, an injected capability with no
	// implementation shipped here, so only the JSON summaries are wired.
	builder := &fs.ContextBuilder{
		JSONDir:   c.JSONDir,
		Converter: htmltomarkdown.NewConverter(),
	}
	courseCtx, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building course context: %w", err)
	}
	logger.Info("course context loaded", "chars", courseCtx.Len())

	client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return canvexslog.NewLoggingAsker(gemini.NewAsker(client, courseCtx, c.Model), logger), nil
}
