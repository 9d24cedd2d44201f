package cli

import (
	"context"
	"fmt"
	"os"
)

// Export writes the full record set to a file in the requested format.
func (a *App) Export(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: export csv|json <file>")
		return
	}
	format, file := args[0], args[1]

	var text string
	var err error
	switch format {
	case "csv":
		text, err = a.service.ExportCSV(ctx)
	case "json":
		text, err = a.service.ExportJSON(ctx)
	default:
		fmt.Fprintln(a.out, "unknown export format:", format)
		return
	}
	if err != nil {
		a.log.Error(ctx, "export failed", "format", format, "error", err)
		return
	}

	if err := os.WriteFile(file, []byte(text), 0o600); err != nil {
		a.log.Error(ctx, "error writing file", "path", file, "error", err)
		return
	}
	fmt.Fprintln(a.out, "Exported to", file)
}

// Import reads records from a file and upserts them. CSV imports are
// best-effort per row; JSON imports reject a malformed payload before any
// record is written.
func (a *App) Import(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: import csv|json <file>")
		return
	}
	format, file := args[0], args[1]

	data, err := os.ReadFile(file)
	if err != nil {
		a.log.Error(ctx, "error reading file", "path", file, "error", err)
		return
	}

	var count int
	switch format {
	case "csv":
		count, err = a.service.ImportCSV(ctx, string(data))
	case "json":
		count, err = a.service.ImportJSON(ctx, string(data))
	default:
		fmt.Fprintln(a.out, "unknown import format:", format)
		return
	}
	if err != nil {
		// rows upserted before a CSV failure stay persisted
		a.log.Error(ctx, "import failed", "format", format, "imported", count, "error", err)
		a.rerender(ctx)
		return
	}

	fmt.Fprintf(a.out, "Imported %d records\n", count)
	a.rerender(ctx)
}
