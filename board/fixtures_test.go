package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"goban/geom"
	"goban/stone"
)

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

type scenario struct {
	Name          string            `yaml:"name"`
	Dim           int               `yaml:"dim"`
	Moves         []string          `yaml:"moves"`
	WhiteCaptures int               `yaml:"white-captures"`
	BlackCaptures int               `yaml:"black-captures"`
	Final         *scenarioScore    `yaml:"final"`
	Points        map[string]string `yaml:"points"`
}

type scenarioScore struct {
	White int `yaml:"white"`
	Black int `yaml:"black"`
}

func TestScenarios(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)
	var file scenarioFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Scenarios)

	for _, sc := range file.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			b, err := EmptyBoard(sc.Dim)
			require.NoError(t, err)
			play(t, b, sc.Moves...)

			assert.Equal(t, Score{White: sc.WhiteCaptures, Black: sc.BlackCaptures}, b.Captures())
			if sc.Final != nil {
				assert.Equal(t, Score{White: sc.Final.White, Black: sc.Final.Black}, b.FinalScore())
			}
			for label, want := range sc.Points {
				idx, err := geom.ParseLabel(sc.Dim, label)
				require.NoError(t, err)
				var c stone.Color
				if want != "empty" {
					c, err = stone.Parse(want)
					require.NoError(t, err)
				}
				assert.Equal(t, c, b.Color(idx), "point %s", label)
			}
			b.ValidatePositions()
		})
	}
}
