package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skillscope/internal/types"
)

// ModelStore supplies pre-fit task models. Implementations signal a missing
// or corrupt artifact with *ModelUnavailableError; the classifier treats
// that as a cue to fall back, never as a failure.
type ModelStore interface {
	Load(task types.ClassificationTask) (*TaskModel, error)
}

// ModelUnavailableError reports a trained artifact that is missing or
// corrupt. It triggers the heuristic fallback and is logged, not propagated.
type ModelUnavailableError struct {
	Task  types.ClassificationTask
	Path  string
	Cause error
}

func (e *ModelUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model unavailable for task %s (%s): %v", e.Task, e.Path, e.Cause)
	}
	return fmt.Sprintf("model unavailable for task %s (%s)", e.Task, e.Path)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Cause
}

// FileModelStore loads task models from JSON artifacts in a directory,
// one file per task (category.json, experience.json, match_score.json).
type FileModelStore struct {
	dir string
}

// NewFileModelStore creates a store rooted at dir.
func NewFileModelStore(dir string) *FileModelStore {
	return &FileModelStore{dir: dir}
}

// Load reads, parses, and validates the artifact for one task.
func (s *FileModelStore) Load(task types.ClassificationTask) (*TaskModel, error) {
	path := filepath.Join(s.dir, string(task)+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelUnavailableError{Task: task, Path: path, Cause: err}
	}

	var model TaskModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, &ModelUnavailableError{Task: task, Path: path, Cause: err}
	}
	if err := model.Validate(); err != nil {
		return nil, &ModelUnavailableError{Task: task, Path: path, Cause: err}
	}

	return &model, nil
}
