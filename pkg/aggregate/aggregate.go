// Package aggregate walks folder and file selections and concatenates the
// text of every discovered file into a single output document.
package aggregate

import (
	"errors"
	"fmt"
	"time"

	"extractor/pkg/content"
	"extractor/pkg/exclude"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"
)

// Aggregator combines selected folders and files into one document.
// It holds no state between calls.
type Aggregator struct {
	fs      billy.Filesystem
	reader  *content.Reader
	exclude *exclude.Set
	logger  *zap.Logger
}

// New returns an Aggregator reading from fs. A nil excl prunes node_modules
// only; pass exclude.New(nil) to prune nothing.
func New(fs billy.Filesystem, excl *exclude.Set, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if excl == nil {
		excl = exclude.Default(logger)
	}
	return &Aggregator{
		fs:      fs,
		reader:  content.NewReader(fs, logger),
		exclude: excl,
		logger:  logger,
	}
}

// NewOS returns an Aggregator over the host filesystem.
func NewOS(excl *exclude.Set, logger *zap.Logger) *Aggregator {
	return New(osfs.New("/"), excl, logger)
}

// Build discovers and reads every selected file. Unreadable files become
// placeholder blocks; Build itself never fails.
func (a *Aggregator) Build(folders, files []string) Document {
	entries := a.Discover(folders, files)
	doc := Document{Blocks: make([]Block, 0, len(entries))}
	for _, e := range entries {
		doc.Blocks = append(doc.Blocks, Block{
			Entry:   e,
			Content: a.reader.Read(e.Path, e.Display),
		})
	}
	return doc
}

// Aggregate builds the document for folders and files and writes it to
// output, replacing any existing content.
func (a *Aggregator) Aggregate(folders, files []string, output string) (Document, error) {
	startTime := time.Now()
	a.logger.Info("Starting aggregation",
		zap.Strings("folders", folders),
		zap.Strings("files", files),
		zap.String("output", output))

	doc := a.Build(folders, files)

	if err := a.Write(output, doc); err != nil {
		a.logger.Error("Failed to write output file", zap.String("output", output), zap.Error(err))
		return doc, err
	}

	a.logger.Info("Aggregation completed",
		zap.String("output", output),
		zap.Int("blocks", doc.Len()),
		zap.Int("unreadable", len(doc.Unreadable())),
		zap.Duration("elapsed", time.Since(startTime)))
	return doc, nil
}

// Process validates sel, runs the aggregation and describes the outcome.
// Nothing is written when validation fails.
func (a *Aggregator) Process(sel Selection) Report {
	if err := sel.Validate(); err != nil {
		msg := MsgNoOutput
		if errors.Is(err, ErrNoSelection) {
			msg = MsgNoSelection
		}
		a.logger.Warn("Selection rejected", zap.Error(err))
		return Report{Message: msg, Err: err}
	}

	doc, err := a.Aggregate(sel.Folders, sel.Files, sel.Output)
	if err != nil {
		return Report{
			Message:  fmt.Sprintf("Error writing output file: %v", err),
			Output:   sel.Output,
			Document: doc,
			Err:      err,
		}
	}
	return Report{
		Message:  fmt.Sprintf("Output written to %s", sel.Output),
		Output:   sel.Output,
		Document: doc,
	}
}
