// File: pkg/aggregate/writer.go
package aggregate

import (
	"bufio"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// Write replaces the contents of output with the rendered document.
// Missing parent directories of output are created by the billy filesystem,
// so only an unwritable or directory target fails. A failed write may leave
// a truncated file behind.
func (a *Aggregator) Write(output string, doc Document) (err error) {
	path, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}
	a.logger.Debug("Writing combined content to output file", zap.String("output", path))

	outFile, err := a.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, b := range doc.Blocks {
		if _, err := writer.WriteString(FormatBlock(b)); err != nil {
			return fmt.Errorf("failed to write block %s: %w", b.Name, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
