package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Settings struct {
	Database DatabaseSettings `mapstructure:"database"`
	HTTP     HTTPSettings     `mapstructure:"http"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Log      LogSettings      `mapstructure:"log"`
	Review   ReviewSettings   `mapstructure:"review"`
}

type DatabaseSettings struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type HTTPSettings struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AuthSettings struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

// ReviewSettings holds the raw task area -> review bucket table.
// Keys are matched case-insensitively.
type ReviewSettings struct {
	AreaMapping map[string]string `mapstructure:"area_mapping"`
}

var DefaultAreaMapping = map[string]string{
	"Full Stack":   "BIZNESS",
	"S4":           "BIZNESS",
	"808":          "BIZNESS",
	"Huge Capital": "BIZNESS",
	"Personal":     "DAILY",
	"Golf":         "GOLF",
	"Health":       "HEALTH",
}

// LoadSettings reads defaults, an optional config file and the environment.
// An empty path searches ./lifeboard.yaml and ./config/lifeboard.yaml.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lifeboard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("LIFEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// unprefixed names kept from the lambda deployment
	_ = v.BindEnv("database.dsn", "LIFEBOARD_DATABASE_DSN", "DATABASE_DSN")
	_ = v.BindEnv("auth.jwt_secret", "LIFEBOARD_AUTH_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv("log.level", "LIFEBOARD_LOG_LEVEL", "LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		Logger.Debug("No config file found, using defaults and environment")
	} else {
		Logger.WithField("path", v.ConfigFileUsed()).Info("Config file loaded")
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(s.Review.AreaMapping) == 0 {
		s.Review.AreaMapping = DefaultAreaMapping
	}

	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("log.level", "info")
}
