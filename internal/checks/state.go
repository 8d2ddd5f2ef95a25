package checks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StateDirName is the per-repo directory that holds gate state.
const StateDirName = ".featgov"

// StateStore handles reading and writing gate state.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory (e.g. <root>/.featgov).
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

func (s *StateStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

func (s *StateStore) rulePath(ruleID string) string {
	return filepath.Join(s.baseDir, "checks", ruleID+".json")
}

// ReadLastRun loads the last gate summary.
func (s *StateStore) ReadLastRun() (*LastRun, error) {
	f, err := os.Open(s.lastRunPath())
	if os.IsNotExist(err) {
		return nil, nil // Not found is clean state
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var last LastRun
	if err := json.NewDecoder(f).Decode(&last); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &last, nil
}

// ReadRule loads a single rule's persisted result.
func (s *StateStore) ReadRule(ruleID string) (*RuleResult, error) {
	f, err := os.Open(s.rulePath(ruleID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var res RuleResult
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WriteLastRun saves the gate summary.
func (s *StateStore) WriteLastRun(last LastRun) (err error) {
	path := s.lastRunPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 - path derived from the resolved repo root
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(last)
}

// WriteRuleResult saves a rule's result.
func (s *StateStore) WriteRuleResult(res RuleResult) (err error) {
	path := s.rulePath(res.Rule)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 - path derived from the resolved repo root
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// Reset clears the state directory.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}
