package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// WellbeingConfig holds the tunable parts of the check-in pipeline: the
// classifier keyword sets, the recommendation texts per risk level, and the
// bucket label used when an analysis has no resolvable department. These are
// operational knobs, not business logic, so they live in a reloadable file.
type WellbeingConfig struct {
	PositiveKeywords []string `mapstructure:"positiveKeywords"`
	NegativeKeywords []string `mapstructure:"negativeKeywords"`

	Recommendations RecommendationMessages `mapstructure:"recommendations"`

	UnknownDepartment string `mapstructure:"unknownDepartment"`
}

type RecommendationMessages struct {
	High   string `mapstructure:"high"`
	Medium string `mapstructure:"medium"`
	Low    string `mapstructure:"low"`
}

func DefaultWellbeingConfig() WellbeingConfig {
	return WellbeingConfig{
		PositiveKeywords: []string{"happy", "good", "great", "awesome", "love", "excellent"},
		NegativeKeywords: []string{"sad", "bad", "terrible", "hate", "stress", "tired", "angry", "exhausted"},
		Recommendations: RecommendationMessages{
			High:   "Consider taking a short break today and reach out to your mentor or a trusted colleague.",
			Medium: "A short mitigation activity like a five minute meditation could help reset your day.",
			Low:    "Great to see you doing well. Keep up whatever is working for you!",
		},
		UnknownDepartment: "Unknown",
	}
}

type WellbeingConfigHolder struct {
	current atomic.Value // holds WellbeingConfig
}

// NewWellbeingConfigHolder loads wellbeing.yml and keeps it hot-reloaded.
// Missing file falls back to the built-in defaults.
func NewWellbeingConfigHolder() (*WellbeingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("wellbeing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/pulse/config") // Volume-mounted config
	v.AddConfigPath("/etc/pulse")            // System config
	v.AddConfigPath(".")                     // Current directory (dev mode)

	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultWellbeingConfig()
		v.SetDefault("wellbeing.positiveKeywords", defaults.PositiveKeywords)
		v.SetDefault("wellbeing.negativeKeywords", defaults.NegativeKeywords)
		v.SetDefault("wellbeing.recommendations", defaults.Recommendations)
		v.SetDefault("wellbeing.unknownDepartment", defaults.UnknownDepartment)
	}

	var cfg WellbeingConfig
	if err := v.UnmarshalKey("wellbeing", &cfg); err != nil {
		return nil, err
	}
	if err := validateWellbeingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &WellbeingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated WellbeingConfig
		if err := v.UnmarshalKey("wellbeing", &updated); err != nil {
			log.Printf("[wellbeing-config] reload failed: %v", err)
			return
		}
		if err := validateWellbeingConfig(updated); err != nil {
			log.Printf("[wellbeing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[wellbeing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticWellbeingConfigHolder wraps a fixed config, for tests.
func NewStaticWellbeingConfigHolder(cfg WellbeingConfig) *WellbeingConfigHolder {
	holder := &WellbeingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *WellbeingConfigHolder) Get() WellbeingConfig {
	return h.current.Load().(WellbeingConfig)
}

func validateWellbeingConfig(cfg WellbeingConfig) error {
	if len(cfg.PositiveKeywords) == 0 {
		return errors.New("wellbeing.positiveKeywords cannot be empty")
	}
	if len(cfg.NegativeKeywords) == 0 {
		return errors.New("wellbeing.negativeKeywords cannot be empty")
	}
	if strings.TrimSpace(cfg.UnknownDepartment) == "" {
		return errors.New("wellbeing.unknownDepartment cannot be empty")
	}
	return nil
}
