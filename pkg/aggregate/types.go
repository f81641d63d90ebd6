package aggregate

import (
	"errors"
	"strings"

	"extractor/pkg/content"
)

// Messages reported back to the caller of Process.
const (
	MsgNoSelection = "No folders or files selected."
	MsgNoOutput    = "No output file selected."
)

var (
	// ErrNoSelection is returned when neither folders nor files were selected.
	ErrNoSelection = errors.New("no folders or files selected")
	// ErrNoOutput is returned when no output path was given.
	ErrNoOutput = errors.New("no output file selected")
)

// Selection is an immutable snapshot of what the user chose.
type Selection struct {
	Folders []string // Folder roots walked recursively, in the order added.
	Files   []string // Individually selected files, in the order added.
	Output  string   // Destination path for the combined document.
}

// Empty reports whether nothing was selected.
func (s Selection) Empty() bool {
	return len(s.Folders) == 0 && len(s.Files) == 0
}

// Validate checks that something was selected and an output path is set.
// Any non-empty output is accepted, including one made only of spaces.
func (s Selection) Validate() error {
	if s.Empty() {
		return ErrNoSelection
	}
	if s.Output == "" {
		return ErrNoOutput
	}
	return nil
}

// Source tells where an entry was discovered.
type Source int

const (
	SourceFolder Source = iota // Found while walking a folder selection.
	SourceFile                 // Selected directly.
)

// Entry is a discovered file before it has been read.
type Entry struct {
	Name    string // Path relative to the folder root, or the base name.
	Origin  string // Folder as supplied, or the parent directory.
	Path    string // Absolute path used to open the file.
	Display string // Path shown when the file cannot be read.
	Source  Source
}

// Block is one formatted unit of the output document.
type Block struct {
	Entry
	Content content.Content
}

// Document is the ordered list of blocks produced by one pass.
type Document struct {
	Blocks []Block
}

// Len returns the number of blocks.
func (d Document) Len() int {
	return len(d.Blocks)
}

// Unreadable returns the blocks whose file could not be read.
func (d Document) Unreadable() []Block {
	var out []Block
	for _, b := range d.Blocks {
		if !b.Content.Readable() {
			out = append(out, b)
		}
	}
	return out
}

// String renders the document in output file format.
func (d Document) String() string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		sb.WriteString(FormatBlock(b))
	}
	return sb.String()
}

// Report is the outcome of Process, suitable for showing to a user.
type Report struct {
	Message  string
	Output   string
	Document Document
	Err      error
}

// OK reports whether the document was written.
func (r Report) OK() bool {
	return r.Err == nil
}
