package manager

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hoppxi/iconify/internal/icons"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	v       *viper.Viper
	loadErr error
)

// Settings is the decoded view of the viper keys.
type Settings struct {
	InputDir    string        `mapstructure:"input_dir"`
	OutputDir   string        `mapstructure:"output_dir"`
	KeepGoing   bool          `mapstructure:"keep_going"`
	StrictNames bool          `mapstructure:"strict_names"`
	Notify      bool          `mapstructure:"notify"`
	Debounce    time.Duration `mapstructure:"debounce"`
}

// Transformer builds an icon transformer from the settings.
func (s Settings) Transformer() *icons.Transformer {
	t := icons.New(s.InputDir, s.OutputDir)
	t.KeepGoing = s.KeepGoing
	t.StrictNames = s.StrictNames
	return t
}

type ConfigManager struct {
	// File overrides the iconify.yaml lookup in the working directory.
	File string
}

var Config = &ConfigManager{}

func (c *ConfigManager) Load() (*viper.Viper, error) {
	once.Do(func() {
		v, loadErr = NewViper(c.File)
	})

	return v, loadErr
}

func (c *ConfigManager) Watch(onChange func()) {
	if v == nil || v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		onChange()
	})
	v.WatchConfig()
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("input_dir", icons.DefaultInputDir)
	v.SetDefault("output_dir", icons.DefaultOutputDir)
	v.SetDefault("keep_going", false)
	v.SetDefault("strict_names", true)
	v.SetDefault("notify", false)
	v.SetDefault("debounce", 300*time.Millisecond)
}

// NewViper reads file, or iconify.yaml from the working directory when file
// is empty. Only an explicitly named file has to exist.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("ICONIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName("iconify")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

func Decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}
