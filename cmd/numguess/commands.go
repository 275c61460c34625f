package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"svw.info/numguess/internal/adapters/console"
	"svw.info/numguess/internal/config"
	"svw.info/numguess/internal/generator"
	"svw.info/numguess/internal/property"
	"svw.info/numguess/internal/usecase"
)

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cfg, loadErr := config.Load()

	root := &cobra.Command{
		Use:           "numguess",
		Short:         "Deduce a secret number from property hints",
		Long:          "Each guess is scored against a random set of number properties; bit i of the hint is set when the guess satisfies property i.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), cfg, in, out, errOut)
		},
	}

	flags := root.PersistentFlags()
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "puzzle seed (0 picks one from the clock)")
	flags.IntVar(&cfg.Length, "length", cfg.Length, "number of properties, 1-8")
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "win condition: number|hint")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	root.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "print the secret at startup")
	root.Flags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	root.AddCommand(newDescribeCmd(&cfg, out, errOut))
	root.SetOut(out)
	root.SetErr(errOut)
	return root
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))
}

func seedOf(cfg config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func runGame(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	logger := newLogger(cfg, errOut)
	mode, err := cfg.WinMode()
	if err != nil {
		return err
	}
	uc := usecase.NewService(generator.NewPuzzleGenerator(), logger)
	s, err := uc.NewSession(ctx, seedOf(cfg), cfg.Length, mode)
	if err != nil {
		logger.Error("generate", "err", err)
		return err
	}

	noColor := cfg.NoColor
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		noColor = true
	}
	if err := console.New(in, out, console.Options{NoColor: noColor, Debug: cfg.Debug}).Run(s); err != nil {
		logger.Error("session ended", "session", s.ID, "guesses", s.Guesses, "err", err)
		return err
	}
	logger.Info("session won", "session", s.ID, "guesses", s.Guesses)
	return nil
}

type describeOutput struct {
	Seed       int64              `yaml:"seed"`
	Mode       string             `yaml:"mode"`
	Properties []property.Summary `yaml:"properties"`
	Solutions  []int              `yaml:"solutions,omitempty,flow"`
}

func newDescribeCmd(cfg *config.Config, out, errOut io.Writer) *cobra.Command {
	var (
		format    string
		solutions bool
	)
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Generate a puzzle and print its properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*cfg, errOut)
			mode, err := cfg.WinMode()
			if err != nil {
				return err
			}
			seed := seedOf(*cfg)
			p, st, err := generator.NewPuzzleGenerator().Generate(cmd.Context(), seed, cfg.Length, mode)
			if err != nil {
				return err
			}
			logger.Debug("generated", "seed", seed, "attempts", st.Attempts, "redraws", st.Redraws, "dur", st.Duration)

			doc := describeOutput{Seed: seed, Mode: mode.String(), Properties: property.Summarize(p.Problem)}
			if solutions {
				for _, v := range p.Solutions {
					doc.Solutions = append(doc.Solutions, int(v))
				}
			}
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return err
				}
				return enc.Close()
			case "text":
				fmt.Fprintf(out, "seed %d, mode %s\n", doc.Seed, doc.Mode)
				for _, s := range doc.Properties {
					fmt.Fprintf(out, "bit %d: %s\n", s.Index, s.Description)
				}
				if solutions {
					fmt.Fprintf(out, "solutions: %v\n", doc.Solutions)
				}
				return nil
			}
			return fmt.Errorf("unknown format %q: want text|yaml", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|yaml")
	cmd.Flags().BoolVar(&solutions, "solutions", false, "list every value satisfying all properties")
	return cmd
}
