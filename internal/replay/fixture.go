package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/ruinware/internal/engine"
	"github.com/danielpatrickdp/ruinware/internal/journal"
	"github.com/danielpatrickdp/ruinware/internal/labyrinth"
	"github.com/danielpatrickdp/ruinware/internal/lament"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay script.
type Fixture struct {
	Description string        `json:"description"`
	Secret      []int         `json:"secret,omitempty"`
	Steps       []FixtureStep `json:"steps"`
}

// FixtureStep is one scripted input. Empty expectations are not checked.
type FixtureStep struct {
	Input          string `json:"input"`
	ExpectKind     string `json:"expect_kind,omitempty"`
	ExpectContains string `json:"expect_contains,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the fixture as indented JSON.
func (f *Fixture) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// NewRouter builds a fresh router for this fixture, keyed to its secret when
// one is given. Extra options are applied after the navigator is set.
func (f *Fixture) NewRouter(opts ...engine.Option) *engine.Router {
	lock := lament.NewLock()
	if len(f.Secret) > 0 {
		lock = lament.NewLockWithSecret(f.Secret)
	}
	all := append([]engine.Option{engine.WithNavigator(labyrinth.NewNavigatorWithLock(lock))}, opts...)
	return engine.New(all...)
}

// #endregion fixture-loader

// #region fixture-export

// FromTurns builds a fixture from journalled turns. Navigator turns keep their
// full response; status turns keep only the first line since uptime varies;
// advisory turns are replayed but not checked.
func FromTurns(description string, turns []journal.Turn) Fixture {
	f := Fixture{Description: description, Steps: make([]FixtureStep, 0, len(turns))}
	for _, t := range turns {
		step := FixtureStep{Input: t.Input}
		switch engine.Kind(t.Kind) {
		case engine.KindCenobite:
			step.ExpectKind = t.Kind
			step.ExpectContains = t.Response
		case engine.KindSystem:
			step.ExpectKind = t.Kind
			step.ExpectContains, _, _ = strings.Cut(t.Response, "\n")
		}
		f.Steps = append(f.Steps, step)
	}
	return f
}

// #endregion fixture-export
