package content

import (
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderRead(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/src/hello.txt", []byte("hello"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/src/crlf.txt", []byte("a\r\nb\rc\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/src/latin1.txt", []byte{'c', 'a', 'f', 0xe9}, 0o644))
	require.NoError(t, util.WriteFile(fs, "/src/empty.txt", nil, 0o644))
	require.NoError(t, fs.MkdirAll("/src/dir", 0o755))

	r := NewReader(fs, nil)

	tests := []struct {
		name     string
		path     string
		want     string
		wantErr  error
		readable bool
	}{
		{name: "plain text", path: "/src/hello.txt", want: "hello", readable: true},
		{name: "line endings normalized", path: "/src/crlf.txt", want: "a\nb\nc\n", readable: true},
		{name: "empty file", path: "/src/empty.txt", want: "", readable: true},
		{name: "invalid utf-8", path: "/src/latin1.txt", wantErr: ErrUndecodable},
		{name: "missing file", path: "/src/missing.txt", wantErr: os.ErrNotExist},
		{name: "directory", path: "/src/dir", wantErr: ErrIsDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Read(tt.path, "shown/"+tt.path)
			assert.Equal(t, tt.readable, got.Readable())
			if tt.wantErr != nil {
				require.Error(t, got.Err)
				assert.True(t, errors.Is(got.Err, tt.wantErr), "got %v", got.Err)
				assert.Equal(t, "[Error: Could not read file shown/"+tt.path+"]", got.String())
				assert.Empty(t, got.Text)
				return
			}
			require.NoError(t, got.Err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "[Error: Could not read file a/b.bin]", Placeholder("a/b.bin"))
}
