// Package cli is the diffcore command line: it diffs two files line by line and prints a unified diff.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codalotl/diffcore/internal/altdiff"
	"github.com/codalotl/diffcore/internal/diff"
	"github.com/codalotl/diffcore/internal/patch"
	"github.com/codalotl/diffcore/internal/simplelogger"
	ucli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var logger = simplelogger.New("cli")

// Exit codes, as with diff(1).
const (
	ExitSame    = 0 // inputs have the same lines
	ExitDiffer  = 1 // inputs differ; a patch was printed
	ExitTrouble = 2 // bad arguments or unreadable input
)

// Backend names accepted by --backend.
const (
	BackendMyers = "myers"
	BackendSergi = "sergi"
)

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically os.Args). It returns the exit code and, for ExitTrouble, the error, which has already been printed to opts.Err || Stderr.
func Run(args []string, opts *RunOptions) (int, error) {
	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	differ := false
	root := newRootCommand(in, out, errW, &differ)
	if err := root.Run(context.Background(), markStdinArgs(args)); err != nil {
		logger.Log("run failed: %v", err)
		fmt.Fprintf(errW, "diffcore: %v\n", err)
		return ExitTrouble, err
	}
	if differ {
		return ExitDiffer, nil
	}
	return ExitSame, nil
}

func newRootCommand(in io.Reader, out, errW io.Writer, differ *bool) *ucli.Command {
	return &ucli.Command{
		Name:      "diffcore",
		Usage:     "print the line differences between two files as a unified diff",
		ArgsUsage: "OLD NEW",
		Reader:    in,
		Writer:    out,
		ErrWriter: errW,
		Flags: []ucli.Flag{
			&ucli.IntFlag{
				Name:    "unified",
				Aliases: []string{"U"},
				Value:   3,
				Usage:   "lines of context around each change",
			},
			&ucli.StringFlag{
				Name:  "color",
				Value: "auto",
				Usage: "colorize output: auto|always|never",
			},
			&ucli.StringFlag{
				Name:  "backend",
				Value: BackendMyers,
				Usage: "diff engine: myers|sergi",
			},
			&ucli.DurationFlag{
				Name:  "timeout",
				Usage: "search time limit for the sergi backend (0 means none)",
			},
			&ucli.StringFlag{
				Name:  "label-old",
				Usage: "name shown on the --- line (defaults to OLD)",
			},
			&ucli.StringFlag{
				Name:  "label-new",
				Usage: "name shown on the +++ line (defaults to NEW)",
			},
		},
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected 2 arguments (OLD NEW), got %d", cmd.Args().Len())
			}
			oldPath, newPath := cmd.Args().Get(0), cmd.Args().Get(1)
			if oldPath == stdinArg && newPath == stdinArg {
				return errors.New("only one of OLD and NEW may be - (stdin)")
			}

			color, err := useColor(cmd.String("color"), out)
			if err != nil {
				return err
			}

			oldText, err := readInput(oldPath, in)
			if err != nil {
				return err
			}
			newText, err := readInput(newPath, in)
			if err != nil {
				return err
			}

			if simplelogger.Enabled() {
				logger.Log("diffing %s (%d bytes) to %s (%d bytes) with %s, context %d", displayPath(oldPath), len(oldText), displayPath(newPath), len(newText), cmd.String("backend"), cmd.Int("unified"))
			}

			p, err := linePatch(oldText, newText, cmd.String("backend"), int(cmd.Int("unified")), altdiff.Options{
				Timeout: cmd.Duration("timeout"),
				Cleanup: true,
			})
			if err != nil {
				return err
			}
			if p.IsEmpty() {
				return nil
			}
			*differ = true

			p = p.WithNames(labelOr(cmd.String("label-old"), displayPath(oldPath)), labelOr(cmd.String("label-new"), displayPath(newPath)))
			_, err = io.WriteString(out, p.Render(color))
			return err
		},
	}
}

// linePatch diffs oldText to newText with the named backend and assembles hunks with contextLen lines of context.
func linePatch(oldText, newText, backend string, contextLen int, opts altdiff.Options) (patch.Patch, error) {
	switch backend {
	case BackendMyers:
		return diff.DiffLines(oldText, newText).ToPatch(contextLen), nil
	case BackendSergi:
		d, err := altdiff.DiffLines(oldText, newText, opts)
		if err != nil {
			return patch.Patch{}, err
		}
		return d.ToPatch(contextLen), nil
	default:
		return patch.Patch{}, fmt.Errorf("unknown backend %q (want %s or %s)", backend, BackendMyers, BackendSergi)
	}
}

// useColor resolves a --color value. "auto" colors only when out is a terminal.
func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color %q (want auto, always, or never)", mode)
	}
}

// stdinArg stands in for a positional "-" while urfave/cli parses args, which would otherwise not pass a lone "-" through as an argument. NUL cannot appear in a
// real path.
const stdinArg = "\x00stdin"

// markStdinArgs returns a copy of args with every positional "-" replaced by stdinArg. A "-" that is the value of a preceding flag (e.g. --label-old -) is kept.
// Every flag except help takes a value.
func markStdinArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	positionalOnly := false
	for i := 1; i < len(out); i++ {
		a := args[i]
		if positionalOnly {
			if a == "-" {
				out[i] = stdinArg
			}
			continue
		}
		switch {
		case a == "--":
			positionalOnly = true
		case a == "-":
			prev := args[i-1]
			if i > 1 && takesValue(prev) {
				continue
			}
			out[i] = stdinArg
		}
	}
	return out
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg == "--" || strings.Contains(arg, "=") {
		return false
	}
	name := strings.TrimLeft(arg, "-")
	return name != "h" && name != "help"
}

// displayPath returns path as the user wrote it.
func displayPath(path string) string {
	if path == stdinArg {
		return "-"
	}
	return path
}

// readInput reads path, or in when path is stdinArg.
func readInput(path string, in io.Reader) (string, error) {
	if path == stdinArg {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: no such file", path)
		}
		return "", err
	}
	return string(b), nil
}

func labelOr(label, path string) string {
	if label != "" {
		return label
	}
	return path
}
