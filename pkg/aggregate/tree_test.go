package aggregate

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	fs := memfs.New()
	writeFiles(t, fs, map[string]string{
		"/proj/a.txt":             "a",
		"/proj/src/b.go":          "b",
		"/proj/src/util/c.go":     "c",
		"/proj/z.md":              "z",
		"/proj/node_modules/x.js": "x",
		"/docs/readme.md":         "r",
	})

	entries := New(fs, nil, nil).Discover([]string{"/proj/", "/docs"}, []string{"extra/notes.txt"})

	want := "" +
		"/proj/\n" +
		"├── a.txt\n" +
		"├── z.md\n" +
		"└── src/\n" +
		"    ├── b.go\n" +
		"    └── util/\n" +
		"        └── c.go\n" +
		"/docs/\n" +
		"└── readme.md\n" +
		"notes.txt (from extra)\n"
	assert.Equal(t, want, RenderTree(entries))
}

func TestRenderTreeEmpty(t *testing.T) {
	assert.Empty(t, RenderTree(nil))
}
