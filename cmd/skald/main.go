package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/skald-lang/skald"
	"github.com/skald-lang/skald/compiler"
	"github.com/skald-lang/skald/errz"
	modmath "github.com/skald-lang/skald/modules/math"
	"github.com/skald-lang/skald/object"
)

var (
	version = "dev"

	flagEntrypoint string
	flagNoColor    bool
	flagTiming     bool
	flagVerbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "skald FILE",
		Short:         "Run a Skald script",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		RunE:          runHandler,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVarP(&flagEntrypoint, "entrypoint", "e", "main", "public function to run")
	root.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	root.Flags().BoolVar(&flagTiming, "timing", false, "show execution time")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "trace the build and execution")

	if err := root.Execute(); err != nil {
		stream := stderrStream()
		if emitter, ok := err.(interface {
			Emit(*errz.StandardStream) bool
		}); ok {
			emitter.Emit(stream)
		} else {
			stream.Header("error")
			fmt.Fprintf(stream, "%s\n", err)
		}
		os.Exit(1)
	}
}

func stderrStream() *errz.StandardStream {
	choice := errz.ColorAuto
	if flagNoColor {
		choice = errz.ColorNever
	}
	return errz.Stderr(choice)
}

func runHandler(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if flagVerbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: flagNoColor}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	diags := compiler.NewDiagnostics()
	start := time.Now()
	result, err := skald.Eval(cmd.Context(), string(source),
		skald.WithFilename(args[0]),
		skald.WithEntrypoint(flagEntrypoint),
		skald.WithModule(skald.Builtins()),
		skald.WithModule(modmath.Module()),
		skald.WithDiagnostics(diags),
		skald.WithLogger(logger),
	)
	elapsed := time.Since(start)

	diags.Emit(stderrStream())
	if err != nil {
		return err
	}

	if _, isUnit := result.(*object.UnitType); !isUnit {
		fmt.Println(result.Inspect())
	}
	if flagTiming {
		fmt.Fprintf(os.Stderr, "%s\n", elapsed)
	}
	return nil
}
