package cmd

import (
	"fmt"
	"os"

	"extractor/pkg/aggregate"
	"extractor/pkg/exclude"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type extractOptions struct {
	folders           []string
	files             []string
	output            string
	excludes          []string
	excludeFrom       string
	noDefaultExcludes bool
	dryRun            bool
	copy              bool
}

func newExtractCmd(a *app) *cobra.Command {
	opts := &extractOptions{}

	extractCmd := &cobra.Command{
		Use:   "extract [paths...]",
		Short: "Write the content of folders and files into one text file",
		Long: `Walk every selected folder and read every selected file, then write all of
their text to the output file. Positional paths are added as folders when they
are directories and as files otherwise. Folder content comes first, in the
order given, followed by the individual files.`,
		Example: `  extractor extract ./src README.md -o context.txt
  extractor extract -d web -x dist -x '**/generated' -o web.txt
  extractor extract ./src --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, a, opts, args)
		},
	}

	flags := extractCmd.Flags()
	flags.StringArrayVarP(&opts.folders, "folder", "d", nil, "Folder to include recursively (repeatable)")
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "Single file to include (repeatable)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output text file, overwritten on each run")
	flags.StringArrayVarP(&opts.excludes, "exclude", "x", nil, "Directory name or pattern to skip (repeatable)")
	flags.StringVar(&opts.excludeFrom, "exclude-from", "", "File with one exclude pattern per line")
	flags.BoolVar(&opts.noDefaultExcludes, "no-default-excludes", false, "Do not skip node_modules directories")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print the files that would be included and write nothing")
	flags.BoolVar(&opts.copy, "copy", false, "Also copy the combined text to the clipboard")

	return extractCmd
}

func runExtract(cmd *cobra.Command, a *app, opts *extractOptions, args []string) error {
	out := cmd.OutOrStdout()

	excl, err := opts.excludeSet(a)
	if err != nil {
		return err
	}
	sel := opts.selection(a, args)
	agg := aggregate.NewOS(excl, a.logger)

	if opts.dryRun {
		if sel.Empty() {
			fmt.Fprintln(out, aggregate.MsgNoSelection)
			return aggregate.ErrNoSelection
		}
		fmt.Fprint(out, aggregate.RenderTree(agg.Discover(sel.Folders, sel.Files)))
		return nil
	}

	report := agg.Process(sel)
	fmt.Fprintln(out, report.Message)
	if !report.OK() {
		return report.Err
	}

	if n := len(report.Document.Unreadable()); n > 0 {
		a.logger.Warn("Some files could not be read", zap.Int("unreadableFiles", n))
	}

	if opts.copy {
		if err := copyToClipboard(report.Document.String()); err != nil {
			a.logger.Warn("Failed to copy output to clipboard", zap.Error(err))
		} else {
			fmt.Fprintln(out, "Copied to clipboard")
		}
	}
	return nil
}

// selection snapshots the chosen paths. Positional directories are appended
// to the folders, everything else to the files.
func (o *extractOptions) selection(a *app, args []string) aggregate.Selection {
	sel := aggregate.Selection{
		Folders: append([]string(nil), o.folders...),
		Files:   append([]string(nil), o.files...),
		Output:  o.output,
	}
	if sel.Output == "" {
		sel.Output = a.cfg.Output
	}

	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			sel.Folders = append(sel.Folders, arg)
		} else {
			sel.Files = append(sel.Files, arg)
		}
	}
	return sel
}

func (o *extractOptions) excludeSet(a *app) (*exclude.Set, error) {
	excl := exclude.New(a.logger)
	if !o.noDefaultExcludes && a.cfg.ExcludeDefaults {
		excl = exclude.Default(a.logger)
	}
	excl.CompileLines(a.cfg.Exclude...)
	excl.CompileLines(o.excludes...)

	if o.excludeFrom != "" {
		if err := excl.CompileFile(o.excludeFrom); err != nil {
			return nil, err
		}
	}
	a.logger.Debug("Exclude patterns", zap.Strings("patterns", excl.Lines()))
	return excl, nil
}
