package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/articlecheck"
	"github.com/fwojciec/articlecheck/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Metrics *prometheus.Metrics
	Service articlecheck.AnalysisService
	CLI     *CLI
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Serve the HTTP API"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a single article and print the result as JSON"`

	Provider        string        `name:"provider" env:"AI_PROVIDER" enum:"openai,gemini,anthropic" default:"openai" help:"Language model provider (${enum})"`
	Model           string        `name:"model" env:"AI_MODEL" help:"Model name; empty selects the provider default"`
	OpenRouterKey   string        `name:"openrouter-api-key" env:"OPENROUTER_API_KEY" help:"API key for the OpenAI-compatible provider"`
	OpenRouterURL   string        `name:"openrouter-api-url" env:"OPENROUTER_API_URL" default:"https://openrouter.ai/api/v1" help:"Base URL of the OpenAI-compatible API"`
	GeminiKey       string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"API key for the gemini provider"`
	AnthropicKey    string        `name:"anthropic-api-key" env:"ANTHROPIC_API_KEY" help:"API key for the anthropic provider"`
	Fetcher         string        `name:"fetcher" env:"FETCHER" enum:"http,rod" default:"http" help:"Page fetcher (${enum})"`
	Extractor       string        `name:"extractor" env:"EXTRACTOR" enum:"readability,trafilatura" default:"readability" help:"Content extractor (${enum})"`
	FetchTimeout    time.Duration `name:"fetch-timeout" env:"FETCH_TIMEOUT" default:"15s" help:"Timeout for fetching the article"`
	LinkTimeout     time.Duration `name:"link-timeout" env:"LINK_TIMEOUT" default:"5s" help:"Timeout for each source liveness check"`
	ReferenceDate   string        `name:"reference-date" env:"REFERENCE_DATE" placeholder:"YYYY-MM-DD" help:"Fixed 'today' for the factual analysis"`
	LogFormat       string        `name:"log-format" env:"LOG_FORMAT" enum:"text,json" default:"text" help:"Log output format (${enum})"`
	LogLevel        string        `name:"log-level" env:"LOG_LEVEL" enum:"debug,info,warn,error" default:"info" help:"Minimum log level (${enum})"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port       int    `name:"port" env:"PORT" default:"3002" help:"Port to listen on"`
	CORSOrigin string `name:"cors-origin" env:"CORS_ORIGIN" default:"http://localhost:3000" help:"Allowed CORS origin"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL     string `arg:"" help:"Article URL"`
	Compact bool   `help:"Print the result on a single line"`
}
