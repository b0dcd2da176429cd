package testkit

import (
	"github.com/BurntSushi/toml"
)

// Scenario is one declarative golden-scenario fixture row. Fields are a
// superset across all scenario kinds a testdata/scenarios.toml file may
// describe; each kind reads only the fields it needs.
type Scenario struct {
	ID         string  `toml:"id"`
	Name       string  `toml:"name"`
	Kind       string  `toml:"kind"`
	Input      string  `toml:"input"`
	WantPretty string  `toml:"want_pretty"`
	WantInt    int64   `toml:"want_int"`
	WantFloat  float64 `toml:"want_float"`
	WantCode   string  `toml:"want_code"`
}

// ScenarioFile is the top-level shape of a testdata/scenarios.toml fixture.
type ScenarioFile struct {
	Scenario []Scenario `toml:"scenario"`
}

// LoadScenarios decodes a scenarios.toml fixture at path.
func LoadScenarios(path string) (*ScenarioFile, error) {
	var sf ScenarioFile
	if _, err := toml.DecodeFile(path, &sf); err != nil {
		return nil, err
	}
	return &sf, nil
}
