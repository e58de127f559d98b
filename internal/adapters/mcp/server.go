package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/chain"
	"github.com/aretw0/chain/internal/config"
	"github.com/aretw0/chain/internal/logging"
	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/model"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes simulation and validation as MCP tools.
type Server struct {
	cfg       config.Config
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance over cfg.
func NewServer(cfg config.Config, logger *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Server{
		cfg:       cfg.Clone(),
		logger:    logger,
		mcpServer: server.NewMCPServer("chain-mcp", strings.TrimSpace(chain.Version)),
	}
	s.registerTools()
	return s, nil
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	simulateTool := mcp.NewTool("simulate",
		mcp.WithDescription("Run the loan request lifecycle Markov chain and return trials, frequencies and mean time per state."),
		mcp.WithNumber("trials", mcp.Description("Number of independent trials (default from config)")),
		mcp.WithNumber("iterations", mcp.Description("States per trial, initial state included")),
		mcp.WithNumber("seed", mcp.Description("Seed for a reproducible run; 0 or omitted seeds from the clock")),
		mcp.WithString("initial", mcp.Description("Initial state label")),
		mcp.WithString("states", mcp.Description("JSON array of state labels, replaces the configured model")),
		mcp.WithString("matrix", mcp.Description("JSON array of transition rows, required with states")),
	)
	s.mcpServer.AddTool(simulateTool, s.handleSimulate)

	validateTool := mcp.NewTool("validate_model",
		mcp.WithDescription("Check that a transition matrix is row-stochastic for the given states."),
		mcp.WithString("states", mcp.Required(), mcp.Description("JSON array of state labels")),
		mcp.WithString("matrix", mcp.Required(), mcp.Description("JSON array of transition rows")),
	)
	s.mcpServer.AddTool(validateTool, s.handleValidate)
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.FromMap(s.cfg, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := cfg.Validate(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid configuration: %v", err)), nil
	}
	if err := cfg.ValidateLimit(config.MaxSteps); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := []chain.Option{chain.WithLogger(s.logger)}
	if cfg.Seed != 0 {
		opts = append(opts, chain.WithSeed(cfg.Seed))
	}
	eng, err := chain.New(cfg.Model(), opts...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := eng.Run(ctx, domain.State(cfg.Initial), cfg.Iterations, cfg.Trials)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.FromMap(config.Config{}, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := model.Validate(cfg.Matrix, cfg.States); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("valid: %d states", len(cfg.States))), nil
}
