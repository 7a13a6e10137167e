package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the engine settings shared by every board in a game.
// KoHistoryWindow is the number of prior positions the repeat test
// retains; 0 retains the whole game (positional superko) and 2
// approximates simple ko. Mixing windows across boards participating in
// the same superko check breaks ko detection, so the value is fixed at
// game start.
type Config struct {
	BoardDim        int  `mapstructure:"board-dim"`
	KoHistoryWindow int  `mapstructure:"ko-history-window"`
	Debug           bool `mapstructure:"debug"`
}

func DefaultConfig() Config {
	return Config{
		BoardDim:        19,
		KoHistoryWindow: 0,
	}
}

// Load fills the config from the environment (GOBAN_BOARD_DIM and
// friends) on top of the defaults.
func (c *Config) Load() error {
	v := viper.New()
	v.SetEnvPrefix("goban")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("board-dim", 19)
	v.SetDefault("ko-history-window", 0)
	v.SetDefault("debug", false)

	// AutomaticEnv alone does not surface env-only keys to Unmarshal;
	// bind them explicitly.
	for _, key := range []string{"board-dim", "ko-history-window", "debug"} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return err
	}
	if c.BoardDim < 1 {
		return fmt.Errorf("config: board-dim must be >= 1, got %d", c.BoardDim)
	}
	return nil
}
