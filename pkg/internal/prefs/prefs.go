package prefs

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// DarkModeKey is the one durable piece of client state; everything else is
// forgotten when the process exits.
const DarkModeKey = "appearance.dark_mode"

type Store struct {
	dark bool
}

// Load reads the display preference once at startup.
func Load() *Store {
	return &Store{dark: viper.GetString(DarkModeKey) == "true"}
}

func (s *Store) DarkMode() bool {
	return s.dark
}

// Toggle flips the preference and writes it through on every switch.
func (s *Store) Toggle() bool {
	s.dark = !s.dark
	viper.Set(DarkModeKey, lo.Ternary(s.dark, "true", "false"))
	if err := viper.WriteConfig(); err != nil {
		if err = viper.SafeWriteConfig(); err != nil {
			log.Warn().Err(err).Msg("An error occurred when saving display preference.")
		}
	}
	return s.dark
}
