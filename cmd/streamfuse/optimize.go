package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/streamfuse/streamfuse/internal/config"
	"github.com/streamfuse/streamfuse/internal/engine"
	"github.com/streamfuse/streamfuse/internal/logger"
	"github.com/streamfuse/streamfuse/internal/report"
	"github.com/streamfuse/streamfuse/internal/stream"
)

type optimizeOptions struct {
	file          string
	trace         bool
	traceConsole  bool
	logLevel      string
	maxIterations int
	plain         bool
}

func newOptimizeCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize a pipeline document and print the fused plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, rootFlags, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the pipeline document (required)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Record fusion trace entries")
	cmd.Flags().BoolVar(&opts.traceConsole, "trace-console", false, "Emit each fusion to the console as it happens")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Trace detail: basic, detailed or verbose")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", -1, "Override the rewrite pass budget")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable styled output")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runOptimize(cmd *cobra.Command, rootFlags *rootFlags, opts *optimizeOptions, log *logger.Logger) error {
	cfg, err := config.ParseConfig(opts.file)
	if err != nil {
		return err
	}

	pipeline, err := stream.FromSpecs(cfg.Pipeline)
	if err != nil {
		return err
	}

	runCfg := cfg.Optimizer.Apply(config.DefaultOptimizerConfig())
	if opts.trace {
		runCfg.EnableTracing = true
	}
	if opts.traceConsole {
		runCfg.EnableTracing = true
		runCfg.TraceToConsole = true
	}
	if opts.logLevel != "" {
		runCfg.LogLevel = config.LogLevel(opts.logLevel)
	}
	if opts.maxIterations >= 0 {
		runCfg.MaxIterations = opts.maxIterations
	}
	runCfg = runCfg.Normalize()

	runLog := log
	if rootFlags.verbose {
		runLog, err = logger.New(logger.Options{Level: "debug", HumanReadable: true})
		if err != nil {
			return err
		}
	}

	optimizer := engine.New(engine.NewDefaultEnvironment(), runLog)
	result := optimizer.Optimize(pipeline, runCfg)

	styled := !opts.plain && term.IsTerminal(int(os.Stdout.Fd()))
	visualizer := report.NewVisualizer(styled)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pipeline %q: %d operators in, %d out\n\n", cfg.Name, len(pipeline), len(result.Pipeline))
	fmt.Fprint(out, visualizer.Render(result.Pipeline))

	if runCfg.EnableTracing {
		summary := report.Summarize(result.Trace)
		fmt.Fprintf(out, "\n%s", summary.String())
		if summary.Iterations == runCfg.MaxIterations {
			fmt.Fprintln(out, "optimization budget exhausted; pipeline may fuse further")
		}
	}

	return nil
}
