package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danendrashafi/ai-portfolio/backend/internal/analysis/category"
	"github.com/danendrashafi/ai-portfolio/backend/internal/config"
	"github.com/danendrashafi/ai-portfolio/backend/internal/logging"
	"github.com/danendrashafi/ai-portfolio/backend/internal/mcpserver"
)

var (
	verbose bool

	askMock    bool
	askExplain bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "AI portfolio backend",
	Long: `Answers questions about the portfolio owner.

Questions go to an OpenAI-compatible LLM first and fall back to a rule-based
answer composer when the LLM is not configured or fails.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: failed to load .env file: %v\n", err)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Log.Format)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer one question and print it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the assistant as an MCP server over stdio",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	askCmd.Flags().BoolVar(&askMock, "mock", false, "Answer from the rule-based core only")
	askCmd.Flags().BoolVar(&askExplain, "explain", false, "Print the matched category and keyword")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return startServer(ctx, cfg.Server, a.router(), logger)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	ask := a.ask.Ask
	if askMock {
		ask = a.ask.AskMock
	}

	result, err := ask(ctx, question)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if askExplain {
		cat, keyword := category.Explain(question)
		if keyword == "" {
			keyword = "-"
		}
		fmt.Fprintf(out, "category: %s (sensitive=%t, keyword=%s)\nsource:   %s\n\n", cat, cat.Sensitive(), keyword, result.Source)
	}
	fmt.Fprintln(out, result.Response)
	return nil
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}

	s := mcpserver.NewServer(mcpserver.Deps{Asker: a.ask, Profile: a.profile, Logger: logger})
	logger.Info("mcp server started", zap.String("transport", "stdio"))
	if err := mcpserver.ServeStdio(ctx, s, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
