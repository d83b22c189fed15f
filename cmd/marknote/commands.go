package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/marknote"
	"github.com/iw2rmb/marknote/editor"
	"github.com/iw2rmb/marknote/markdown"
	"github.com/iw2rmb/marknote/session"
	"github.com/iw2rmb/marknote/store"
)

const fallbackWidth = 80

var errNoInput = errors.New("no input: pass a file or pipe markdown on stdin")

func newRenderCmd() *cobra.Command {
	var (
		preview bool
		dark    bool
		wrap    int
	)
	c := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown to HTML, or to a styled preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			html := markdown.Render(src)
			out := cmd.OutOrStdout()
			if !preview {
				_, err = fmt.Fprintln(out, html)
				return err
			}

			width := wrap
			if width <= 0 {
				width = terminalWidth(out)
			}
			st := editor.LightStyle()
			if dark {
				st = editor.DarkStyle()
			}
			_, err = fmt.Fprintln(out, editor.Paint(html, st.Preview, width))
			return err
		},
	}
	c.Flags().BoolVar(&preview, "preview", false, "print the terminal preview instead of HTML")
	c.Flags().BoolVar(&dark, "dark", false, "use the dark preview theme")
	c.Flags().IntVar(&wrap, "wrap", 0, "preview wrap width (default terminal width)")
	return c
}

// readInput reads the named file, or stdin when no file (or "-") is given.
// An interactive stdin is rejected rather than waited on.
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(raw), nil
	}
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "", errNoInput
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(raw), nil
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return fallbackWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg.StorePath)
			if err != nil {
				return err
			}
			defer st.Close()

			res, err := session.New(st).Dispatch(session.ShowSettings())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Summary)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), marknote.Banner())
		},
	}
}
