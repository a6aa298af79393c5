package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment setting.
const EnvPrefix = "PULSE_LOGGER"

// ErrInvalidSettings wraps validation failures.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Sink kinds accepted in Settings.Sink.
const (
	SinkSyslog = "syslog"
	SinkStdout = "stdout"
	SinkStderr = "stderr"
)

// Settings are the process-level knobs resolved once at startup.
//
//	PULSE_LOGGER_CONFIG      path of the polled config document; empty disables polling
//	PULSE_LOGGER_LEVEL       initial level (label or number)
//	PULSE_LOGGER_IDENTIFIER  tag attached to every message
//	PULSE_LOGGER_SINK        syslog | stdout | stderr
type Settings struct {
	ConfigPath string `mapstructure:"config"`
	Level      string `mapstructure:"level"`
	Identifier string `mapstructure:"identifier"`
	Sink       string `mapstructure:"sink" validate:"required,oneof=syslog stdout stderr"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (*Settings, error) {
	return loadSettings(viper.New())
}

func loadSettings(v *viper.Viper) (*Settings, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("config", "")
	v.SetDefault("level", "")
	v.SetDefault("identifier", "")
	v.SetDefault("sink", SinkSyslog)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	s.Sink = strings.ToLower(strings.TrimSpace(s.Sink))
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var validate = validator.New()

// Validate checks field constraints.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}
