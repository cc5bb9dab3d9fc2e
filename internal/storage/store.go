package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/dsviz/internal/bst"
	"github.com/san-kum/dsviz/internal/scenario"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var framesHeader = []string{"time", "nodes", "animating", "traversal", "phase", "mean_distance", "notification"}

// ErrRunNotFound is returned when no run directory exists for an ID.
var ErrRunNotFound = errors.New("run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return errors.Wrapf(os.MkdirAll(s.baseDir, 0755), "creating %s", s.baseDir)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Description string             `json:"description,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	Frames      int                `json:"frames"`
	InOrder     []int              `json:"in_order"`
	Params      bst.Params         `json:"params"`
	Metrics     map[string]float64 `json:"metrics"`
	Events      []bst.Event        `json:"events"`
}

// Save writes res under a new run directory named <scenario>_<unix> and
// returns the run ID.
func (s *Store) Save(sc *scenario.Scenario, p bst.Params, res *scenario.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", sc.Name, now.Unix())
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(s.baseDir, runID)); os.IsNotExist(err) {
			break
		}
		runID = fmt.Sprintf("%s_%d_%d", sc.Name, now.Unix(), i)
	}
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(err, "creating run %s", runID)
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    sc.Name,
		Description: sc.Description,
		Timestamp:   now,
		Dt:          res.Dt,
		Frames:      len(res.Frames),
		InOrder:     res.InOrder,
		Params:      p,
		Metrics:     res.Metrics,
		Events:      res.Events,
	}
	err := writeJSON(filepath.Join(runDir, metadataFile), meta)
	if err == nil {
		err = writeFrames(filepath.Join(runDir, framesFile), res.Frames)
	}
	if err != nil {
		// A run is either complete or absent.
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			err = errors.CombineErrors(err, errors.Wrapf(rmErr, "removing partial run %s", runID))
		}
		return "", err
	}
	return runID, nil
}

// createFile runs write on a new file at path and reports the first error
// of write and Close.
func createFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

func writeJSON(path string, v interface{}) error {
	return createFile(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

func writeFrames(path string, frames []scenario.Frame) error {
	return createFile(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(framesHeader); err != nil {
			return err
		}
		for _, fr := range frames {
			row := []string{
				strconv.FormatFloat(fr.Time, 'f', 6, 64),
				strconv.Itoa(fr.Nodes),
				strconv.Itoa(fr.Animating),
				fr.Traversal,
				fr.Phase,
				strconv.FormatFloat(fr.MeanDistance, 'f', 6, 64),
				fr.Notification,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrapf(err, "listing %s", s.baseDir)
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
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].Timestamp.Before(runs[j].Timestamp)
		}
		return runs[i].ID < runs[j].ID
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrRunNotFound, "%s", runID)
		}
		return nil, errors.Wrapf(err, "reading run %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "decoding run %s", runID)
	}
	return &meta, nil
}

// LoadFrames reads the frame log of a run. Malformed rows are skipped.
func (s *Store) LoadFrames(runID string) ([]scenario.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrRunNotFound, "%s", runID)
		}
		return nil, errors.Wrapf(err, "opening frames of %s", runID)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading frames of %s", runID)
	}
	if len(records) < 2 {
		return []scenario.Frame{}, nil
	}

	frames := make([]scenario.Frame, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(framesHeader) {
			continue
		}
		t, err1 := strconv.ParseFloat(rec[0], 64)
		nodes, err2 := strconv.Atoi(rec[1])
		anim, err3 := strconv.Atoi(rec[2])
		dist, err4 := strconv.ParseFloat(rec[5], 64)
		if err := errors.CombineErrors(errors.CombineErrors(err1, err2), errors.CombineErrors(err3, err4)); err != nil {
			continue
		}
		frames = append(frames, scenario.Frame{
			Time:         t,
			Nodes:        nodes,
			Animating:    anim,
			Traversal:    rec[3],
			Phase:        rec[4],
			MeanDistance: dist,
			Notification: rec[6],
		})
	}
	return frames, nil
}

// ExportData is a run as a single document.
type ExportData struct {
	Metadata RunMetadata      `json:"metadata"`
	Frames   []scenario.Frame `json:"frames"`
}

// ExportJSON writes the metadata and frames of a run to w.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(ExportData{Metadata: *meta, Frames: frames}), "encoding export")
}
