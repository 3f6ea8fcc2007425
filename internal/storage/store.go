package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/metrics"
)

const metadataFile = "metadata.json"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type MethodSummary struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Result      float64 `json:"result"`
	Steps       int     `json:"steps"`
	Evaluations int     `json:"evaluations"`
	MaxError    float64 `json:"max_error,omitempty"`
	MeanError   float64 `json:"mean_error,omitempty"`
	RMSError    float64 `json:"rms_error,omitempty"`
	File        string  `json:"file"`
}

type RunMetadata struct {
	ID           string          `json:"id"`
	Problem      string          `json:"problem"`
	Equation     string          `json:"equation"`
	Timestamp    time.Time       `json:"timestamp"`
	Params       dynamo.Params   `json:"params"`
	CompareExact bool            `json:"compare_exact"`
	Methods      []MethodSummary `json:"methods"`
}

// ResultsFile is the CSV name used for a method, e.g. "rk4_results.csv".
func ResultsFile(key string) string {
	return key + "_results.csv"
}

// Save writes one CSV per solved method plus metadata.json into a new run
// directory and returns the run id. Exact columns are written when exact is
// non-nil and comparison was requested.
func (s *Store) Save(meta RunMetadata, methods []dynamo.Method, exact dynamo.Exact) (string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%s", meta.Problem, uuid.New().String()[:8])
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", &dynamo.FileError{Path: runDir, Wrapped: err}
	}

	csvExact := exact
	if !meta.CompareExact {
		csvExact = nil
	}

	meta.Methods = make([]MethodSummary, 0, len(methods))
	for _, m := range methods {
		result, err := m.Result()
		if err != nil {
			return "", fmt.Errorf("%s: %w", m.Name(), err)
		}

		info := m.Info()
		summary := MethodSummary{
			Key:         info.Key,
			Name:        info.Name,
			Result:      result,
			Steps:       m.Stats().Steps,
			Evaluations: m.Stats().Evaluations,
			File:        ResultsFile(info.Key),
		}
		if maxErr, err := m.MaxError(); err == nil {
			summary.MaxError = maxErr
		}
		if exact != nil {
			errs := metrics.Evaluate(m.Trajectory(), metrics.ErrorSuite(exact)...)
			summary.MeanError = errs["mean_abs_error"]
			summary.RMSError = errs["rms_error"]
		}

		if err := ExportCSV(filepath.Join(runDir, summary.File), m.Trajectory(), csvExact); err != nil {
			return "", err
		}
		meta.Methods = append(meta.Methods, summary)
	}

	metaPath := filepath.Join(runDir, metadataFile)
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(metaPath, data, 0644); err != nil {
		return "", &dynamo.FileError{Path: metaPath, Wrapped: err}
	}

	return meta.ID, nil
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads back the CSV of one method in a run.
func (s *Store) LoadTrajectory(runID, key string) (dynamo.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, ResultsFile(key)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ResultsPath returns where the CSV of one method in a run lives.
func (s *Store) ResultsPath(runID, key string) string {
	return filepath.Join(s.baseDir, runID, ResultsFile(key))
}
