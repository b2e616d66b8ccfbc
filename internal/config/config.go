package config

import (
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Configuration struct {
	// ApiBase is the base URL of the remote Malagasy Science API.
	ApiBase *url.URL
	// TokenPath is the file the bearer credential is read from when no
	// cookie session carries one. May be empty.
	TokenPath string
	// PollInterval controls how often the feed and the notification list
	// are refreshed while the daemon runs.
	PollInterval time.Duration
	// PresenceInterval controls how often the presence ping is sent so the
	// platform keeps showing the user as online.
	PresenceInterval time.Duration
	// DbUrl is the path to the snapshot database file.
	DbUrl string
	// MigrationsFolder holds the snapshot schema migrations.
	MigrationsFolder string
	// SessionSecret signs the local session cookie.
	SessionSecret string
	// Addr is the listen address of the local JSON surface.
	Addr string
	// Debug, if true, will make the application log every remote request.
	Debug bool
}

func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("malsci")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/malsci")
	v.SetEnvPrefix("malsci")
	v.AutomaticEnv()

	v.SetDefault("api_base", "http://localhost:8080")
	v.SetDefault("token_path", "")
	v.SetDefault("poll_interval", "30s")
	v.SetDefault("presence_interval", "60s")
	v.SetDefault("db_url", "malsci.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("addr", ":8765")
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; the defaults plus the environment are a
		// complete configuration.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Configuration{}, err
		}
	}

	base, err := url.Parse(v.GetString("api_base"))
	if err != nil {
		return Configuration{}, err
	}

	return Configuration{
		ApiBase:          base,
		TokenPath:        v.GetString("token_path"),
		PollInterval:     v.GetDuration("poll_interval"),
		PresenceInterval: v.GetDuration("presence_interval"),
		DbUrl:            v.GetString("db_url"),
		MigrationsFolder: v.GetString("migrations_folder"),
		SessionSecret:    v.GetString("session_secret"),
		Addr:             v.GetString("addr"),
		Debug:            v.GetBool("debug"),
	}, nil
}
