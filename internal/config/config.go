package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	ReportsPerPage = 10
	AuthorsPerPage = 50
)

type Configuration struct {
	// ApiURL is the GraphQL endpoint of the lobbying API, derived from the
	// server DSN.
	ApiURL string
	// AppURL is this application's public URL, used to build the OpenID
	// redirect URI.
	AppURL string
	// SessionSecret signs the session cookie holding the access token.
	SessionSecret string
	// TimeZone is the display zone every date and timestamp is converted
	// into before rendering.
	TimeZone string
	Location *time.Location
	// StaticDir is the directory serving the stylesheet, favicon and other
	// static files.
	StaticDir string
	Debug     bool
	Port      uint16
}

// ReadConfig builds the configuration from environment variables, with an
// optional olapp.yaml next to the binary overriding the defaults.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("olapp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server_dsn", "http://localhost:8010")
	v.SetDefault("app_url", "http://localhost:8020")
	v.SetDefault("time_zone", "Europe/Prague")
	v.SetDefault("static_dir", "static")
	v.SetDefault("debug", false)
	v.SetDefault("port", 8020)

	v.BindEnv("server_dsn", "OPENLOBBY_SERVER_DSN")
	v.BindEnv("app_url", "APP_URL")
	v.BindEnv("secret_key", "SECRET_KEY")
	v.BindEnv("time_zone", "TIME_ZONE")
	v.BindEnv("static_dir", "STATIC_DIR")
	v.BindEnv("debug", "DEBUG")
	v.BindEnv("port", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	cfg := Configuration{
		ApiURL:        v.GetString("server_dsn") + "/graphql",
		AppURL:        v.GetString("app_url"),
		SessionSecret: v.GetString("secret_key"),
		TimeZone:      v.GetString("time_zone"),
		StaticDir:     v.GetString("static_dir"),
		Debug:         v.GetBool("debug"),
		Port:          uint16(v.GetUint32("port")),
	}

	if cfg.SessionSecret == "" {
		if !cfg.Debug {
			return cfg, errors.New("missing SECRET_KEY")
		}
		cfg.SessionSecret = "not-secret-at-all"
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return cfg, fmt.Errorf("time zone %s: %w", cfg.TimeZone, err)
	}
	cfg.Location = loc

	return cfg, nil
}
