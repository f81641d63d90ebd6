// File: pkg/aggregate/format.go
package aggregate

import (
	"fmt"
	"strings"
)

// Separator closes every block.
var Separator = strings.Repeat("-", 50)

// FormatBlock renders a block with its header, content and separator.
func FormatBlock(b Block) string {
	return fmt.Sprintf("File: %s (from %s)\nContent:\n%s\n%s\n", b.Name, b.Origin, b.Content.String(), Separator)
}
