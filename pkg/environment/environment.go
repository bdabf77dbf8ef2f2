package environment

import (
	"errors"
	"io/fs"

	envLoader "github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment holds all configuration read from the process environment.
type Environment struct {
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID,required"`
	FirebaseCredentialsJSON string `env:"FIREBASE_CREDENTIALS_JSON"`

	Port      string   `env:"PORT" envDefault:"8080"`
	CorsHosts []string `env:"CORS_HOSTS" envSeparator:","`
	LogLevel  string   `env:"LOG_LEVEL" envDefault:"info"`

	ResendKey    string `env:"RESEND_KEY"`
	ReportSender string `env:"REPORT_SENDER" envDefault:"onboarding@resend.dev"`
	HostURL      string `env:"HOST_URL" envDefault:"http://localhost:3000"`

	AdminClaim string `env:"ADMIN_CLAIM" envDefault:"admin"`
}

// Load reads an optional .env file and parses the environment into an
// Environment. It also sets the global log level.
func Load() (*Environment, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}
	return parse(envLoader.Options{})
}

// loadDotenv loads the given files, or .env when none are named. Missing
// files are skipped.
func loadDotenv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func parse(opts envLoader.Options) (*Environment, error) {
	e := Environment{}
	if err := envLoader.ParseWithOptions(&e, opts); err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(e.LogLevel)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	log.Debug().
		Str("project", e.FirebaseProjectID).
		Str("port", e.Port).
		Strs("cors_hosts", e.CorsHosts).
		Msg("Loaded environment")

	return &e, nil
}
