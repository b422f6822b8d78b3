package operator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/clock"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/store"
)

// Options configures an Operator.
type Options struct {
	// ExportDir receives CSV exports. Empty means the working directory.
	ExportDir string
	// Uploader, when set, receives a copy of every export.
	Uploader Uploader
}

// Operator runs the admin menu against a store.
type Operator struct {
	store     store.Store
	clock     clock.Clock
	exportDir string
	uploader  Uploader
}

// New creates an Operator.
func New(st store.Store, clk clock.Clock, opts Options) *Operator {
	dir := opts.ExportDir
	if dir == "" {
		dir = "."
	}
	return &Operator{store: st, clock: clk, exportDir: dir, uploader: opts.Uploader}
}

const menu = `
=== Orgainse Lead Management ===
1. View newsletter subscribers
2. View leads dashboard
3. Export subscribers to CSV
4. Exit
Select an option (1-4): `

// Run shows the menu until the operator picks Exit or input ends. A failing
// action is reported and the menu is shown again.
func (o *Operator) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, menu)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		var err error
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			err = o.ListSubscribers(ctx, out)
		case "2":
			err = o.Dashboard(ctx, out)
		case "3":
			var path string
			path, err = o.Export(ctx)
			if err == nil {
				fmt.Fprintf(out, "Exported subscribers to %s\n", path)
			}
		case "4":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option. Please choose 1-4.")
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}
