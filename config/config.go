package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port             int
	BurstCeiling     int
	ValidationPolicy string
	TracingEnabled   bool
	TracingOutput    string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits when it is unreadable.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		if config, err = Load(""); err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads the given config file, or a file named config in the working directory when path is
// empty. A missing file is not an error: defaults and FCFS_* environment variables still apply.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.fcfs.burst_ceiling", 500)
	v.SetDefault("scheduler.fcfs.validation_policy", "reject")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "")

	v.SetEnvPrefix("fcfs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("no config file found, using defaults")
	}

	return &SchedulerConfig{
		Port:             v.GetInt("port"),
		BurstCeiling:     v.GetInt("scheduler.fcfs.burst_ceiling"),
		ValidationPolicy: v.GetString("scheduler.fcfs.validation_policy"),
		TracingEnabled:   v.GetBool("tracing.enabled"),
		TracingOutput:    v.GetString("tracing.output"),
	}, nil
}
