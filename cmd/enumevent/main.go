package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	enumgeninternal "github.com/enumevent/enumevent/internal/enumgen"
)

var Version = "dev"

var (
	derefFlag bool
	outFlag   string
	tagsFlag  string
	testsFlag bool
	colorFlag string
)

func init() {
	enumgeninternal.Version = Version
}

func main() {
	cmd := &cobra.Command{
		Use:     "enumevent [packages]",
		Short:   "Generate per-variant event types for annotated enums",
		Args:    cobra.ArbitraryArgs,
		Version: Version,
		RunE:    run,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.BoolVar(&derefFlag, "deref", true, "generate dereference accessors on eligible types")
	flags.StringVar(&outFlag, "out", "", "output file name within each namespace package")
	flags.StringVar(&tagsFlag, "tags", "", "comma-separated build tags")
	flags.BoolVar(&testsFlag, "tests", false, "include test files")
	flags.StringVar(&colorFlag, "color", "auto", "colorize diagnostics (auto|always|never)")

	if err := cmd.Execute(); err != nil {
		message := err.Error()
		if useColor(colorFlag) {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"./..."}
	}

	if colorFlag != "auto" && colorFlag != "always" && colorFlag != "never" {
		return fmt.Errorf("invalid --color value: %s", colorFlag)
	}

	cfg, err := enumgeninternal.LoadConfig(wd)
	if err != nil {
		return err
	}

	// Flags override the configuration file.
	if cmd.Flags().Changed("deref") {
		cfg.Deref = derefFlag
	}
	if outFlag != "" {
		cfg.OutFile = outFlag
	}

	outs, err := enumgeninternal.Main(cmd.Context(), wd, os.Environ(), tagsFlag, testsFlag, cfg, args)
	if err != nil {
		return err
	}

	for out, code := range outs {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out, code, 0o644); err != nil {
			return err
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
	return nil
}

// useColor decides whether diagnostics get ANSI color codes.
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty()
}

// isatty reports whether the program is running in a terminal. If it is
// true, we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reTab  = regexp.MustCompile(`(?m)^\t.+`)
	reFail = regexp.MustCompile(`^\tFAIL:.+`)
)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		if reFail.Match(b) {
			return []byte(red + string(b) + reset)
		}
		return []byte(dim + string(b) + reset)
	})
	return string(m)
}
