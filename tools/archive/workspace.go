// tools/archive/workspace.go
package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// NewWorkspace creates root/<prefix>-<id> for one tool job and returns the
// directory and the job id.
func NewWorkspace(root, prefix string) (string, string, error) {
	id := uuid.NewString()
	dir := filepath.Join(root, prefix+"-"+id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create workspace: %w", err)
	}
	return dir, id, nil
}
