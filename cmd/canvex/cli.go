package main

import (
	"context"
	"io"
)

// Dependencies holds shared values for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" help:"Run the export and chat HTTP server"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr          string  `default:":8000" help:"Listen address"`
	JSONDir       string  `name:"json-dir" help:"Directory of exported course JSON files used as chat context"`
	AllowedOrigin string  `env:"ALLOWED_ORIGIN" default:"*" help:"CORS allowed origin"`
	RPS           float64 `default:"0" help:"Outbound Canvas API requests per second (0 disables pacing)"`
	Model         string  `default:"gemini-2.5-flash" help:"Gemini model used for chat"`
}
