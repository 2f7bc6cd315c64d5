package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "STOREFRONT"
	configFileEnvName = "STOREFRONT_CONFIG_FILE"
)

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	LogFile        string     `mapstructure:"log_file"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
}

// Load builds the configuration from defaults, an optional yaml file
// and environment overrides. The binary runs with no file at all.
func Load() Config {
	_ = godotenv.Load()

	viper.SetDefault("log_level", int(slog.LevelInfo))
	viper.SetDefault("log_file", "")
	viper.SetDefault("http_server_addr", ":8080")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if path := getConfigFilepath(); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			die(err)
		}
	}

	var cfg Config
	if err := viper.UnmarshalExact(&cfg); err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	LogFile=%q
	HTTPServerAddr=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.LogFile,
		c.HTTPServerAddr,
	)
}
