package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env-default:"info"`
	LogFile        string `yaml:"log-file" env-default:""`
	Engine         Engine `yaml:"engine"`
	Redis          Redis  `yaml:"redis"`
	ArchiveEnabled bool   `yaml:"archive-enabled" env-default:"false"`
}

type Engine struct {
	Name    string `yaml:"name" env-default:"hecks-backend"`
	Version string `yaml:"version" env-default:"0.1.0"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
