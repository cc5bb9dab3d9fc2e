// Package scenario scripts the tree engine headlessly: a YAML list of
// inserts, searches and waits is played at a fixed frame step and every
// frame is recorded.
package scenario

import (
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt      = 1.0 / 60
	DefaultMaxWait = 60.0
)

const (
	OpInsert = "insert"
	OpSearch = "search"
	OpWait   = "wait"
	OpSettle = "settle"
)

// Scenario defines a scripted sequence of tree commands.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Dt          float64 `yaml:"dt"`
	Steps       []Step  `yaml:"steps"`
}

// Step is a single command. An insert with Values settles after every
// value; an insert with Value does not, so a following command can
// supersede it.
type Step struct {
	Op      string  `yaml:"op"`
	Value   *int    `yaml:"value,omitempty"`
	Values  []int   `yaml:"values,omitempty"`
	Seconds float64 `yaml:"seconds,omitempty"`
	MaxWait float64 `yaml:"max_wait,omitempty"`
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario %s", path)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario %s", path)
	}
	if sc.Dt == 0 {
		sc.Dt = DefaultDt
	}
	if err := sc.Validate(); err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return &sc, nil
}

// Resolve returns the preset called nameOrPath, or loads it as a file.
func Resolve(nameOrPath string) (*Scenario, error) {
	if sc := GetPreset(nameOrPath); sc != nil {
		return sc, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return nil, errors.Wrapf(ErrUnknownPreset, "%q is neither a preset nor a file", nameOrPath)
	}
	return LoadScenario(nameOrPath)
}

func (sc *Scenario) Validate() error {
	if !(sc.Dt > 0) {
		return errors.Wrapf(ErrInvalidDt, "dt = %g", sc.Dt)
	}
	for i, st := range sc.Steps {
		switch st.Op {
		case OpInsert:
			if st.Value == nil && len(st.Values) == 0 {
				return errors.Wrapf(ErrMissingValue, "step %d: %s", i+1, st.Op)
			}
		case OpSearch:
			if st.Value == nil {
				return errors.Wrapf(ErrMissingValue, "step %d: %s", i+1, st.Op)
			}
		case OpWait, OpSettle:
		default:
			return errors.Wrapf(ErrUnknownOp, "step %d: %q", i+1, st.Op)
		}
	}
	return nil
}

func intp(v int) *int { return &v }

// Presets are built-in scenarios runnable by name.
var Presets = map[string]*Scenario{
	"balanced": {
		Name:        "balanced",
		Description: "seven values forming a complete tree of height three",
		Dt:          DefaultDt,
		Steps: []Step{
			{Op: OpInsert, Values: []int{50, 30, 70, 20, 40, 60, 80}},
			{Op: OpSettle},
		},
	},
	"chain": {
		Name:        "chain",
		Description: "sorted inserts degenerating into a right spine",
		Dt:          DefaultDt,
		Steps: []Step{
			{Op: OpInsert, Values: []int{1, 2, 3, 4, 5}},
			{Op: OpSettle},
		},
	},
	"search-hit": {
		Name:        "search-hit",
		Description: "search for a leaf that exists",
		Dt:          DefaultDt,
		Steps: []Step{
			{Op: OpInsert, Values: []int{50, 30, 70}},
			{Op: OpSearch, Value: intp(70)},
			{Op: OpSettle},
		},
	},
	"search-miss": {
		Name:        "search-miss",
		Description: "search for a value past the right spine",
		Dt:          DefaultDt,
		Steps: []Step{
			{Op: OpInsert, Values: []int{50, 30, 70}},
			{Op: OpSearch, Value: intp(99)},
			{Op: OpSettle},
		},
	},
	"supersede": {
		Name:        "supersede",
		Description: "a search replacing an insert halfway down the path",
		Dt:          DefaultDt,
		Steps: []Step{
			{Op: OpInsert, Values: []int{50, 30, 70}},
			{Op: OpInsert, Value: intp(5)},
			{Op: OpWait, Seconds: 0.25},
			{Op: OpSearch, Value: intp(3)},
			{Op: OpSettle},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Scenario {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	sc := *p
	sc.Steps = append([]Step(nil), p.Steps...)
	return &sc
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
