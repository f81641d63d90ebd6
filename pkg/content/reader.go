// File: pkg/content/reader.go
package content

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

var (
	// ErrUndecodable is returned when a file's bytes are not valid UTF-8.
	ErrUndecodable = errors.New("content is not valid UTF-8")
	// ErrIsDirectory is returned when the path names a directory.
	ErrIsDirectory = errors.New("path is a directory")
)

// Content is the result of reading one file: either decoded text or the
// reason it could not be read.
type Content struct {
	Path string // Path as it is shown in the placeholder text.
	Text string // Decoded text, empty when Err is set.
	Err  error  // Why the file could not be read, nil on success.
}

// Readable reports whether the file was read and decoded.
func (c Content) Readable() bool {
	return c.Err == nil
}

// String returns the text, or the placeholder for an unreadable file.
func (c Content) String() string {
	if c.Err != nil {
		return Placeholder(c.Path)
	}
	return c.Text
}

// Placeholder is the text substituted for a file that could not be read.
func Placeholder(path string) string {
	return fmt.Sprintf("[Error: Could not read file %s]", path)
}

// Reader reads files as UTF-8 text from a billy filesystem.
type Reader struct {
	fs     billy.Filesystem
	logger *zap.Logger
}

// NewReader returns a Reader over fs.
func NewReader(fs billy.Filesystem, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{fs: fs, logger: logger}
}

// Read loads the file at fsPath. display is the path used in the placeholder
// text when reading fails. Read never returns an error; failures are carried
// in Content.Err.
func (r *Reader) Read(fsPath, display string) Content {
	text, err := r.readText(fsPath)
	if err != nil {
		r.logger.Warn("Could not read file",
			zap.String("filePath", fsPath),
			zap.Error(err))
		return Content{Path: display, Err: err}
	}

	r.logger.Debug("Read file content",
		zap.String("filePath", fsPath),
		zap.Int("contentSizeBytes", len(text)))
	return Content{Path: display, Text: text}
}

func (r *Reader) readText(fsPath string) (string, error) {
	info, err := r.fs.Stat(fsPath)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", fsPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("open %s: %w", fsPath, ErrIsDirectory)
	}

	f, err := r.fs.Open(fsPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", fsPath, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", fsPath, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode %s: %w", fsPath, ErrUndecodable)
	}
	return normalizeNewlines(string(data)), nil
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
