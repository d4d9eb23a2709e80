package config

import (
	"errors"
	"fmt"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig holds the single connection endpoint of the MOTD store.
type RedisConfig struct {
	URL string `mapstructure:"url"`
	// Charset is the text transport of stored members: windows-1252 or utf-8.
	Charset string `mapstructure:"charset"`
}

// Validate reports a missing endpoint.
func (r *RedisConfig) Validate() error {
	if r.URL == "" {
		return errors.New("REDIS_URL not set")
	}
	return nil
}

type MOTDConfig struct {
	// Languages is the allow-list of language codes accepted by the CLI and
	// the read endpoint.
	Languages []string `mapstructure:"languages"`
}
