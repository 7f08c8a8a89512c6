package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/erc7824/fieldsig/pkg/digest"
	"github.com/erc7824/fieldsig/pkg/log"
	"github.com/erc7824/fieldsig/pkg/protocol"
)

const (
	configDirPathEnv     = "FIELDSIG_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
)

// Config is the command configuration, read from the environment after the
// optional .env file in FIELDSIG_CONFIG_DIR_PATH has been applied.
type Config struct {
	Log log.Config

	HashAlgorithm string `env:"FIELDSIG_HASH_ALG" env-default:"SHA-256" validate:"hashalg"`
	Convention    string `env:"FIELDSIG_CONVENTION" env-default:"raw" validate:"oneof=raw hex-text"`
	MetricsFile   string `env:"FIELDSIG_METRICS_FILE"`
	OtelEndpoint  string `env:"FIELDSIG_OTEL_ENDPOINT" validate:"omitempty,url"`

	// DotEnvPath is the .env file that was applied, empty if none was found.
	DotEnvPath string
}

// LoadConfig builds the configuration from the process environment.
// A missing .env file is not an error; a malformed one is.
func LoadConfig() (*Config, error) {
	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	var conf Config
	dotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(dotEnvPath); err == nil {
		conf.DotEnvPath = dotEnvPath
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
	}

	if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	level, err := log.ParseLevel(string(conf.Log.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	conf.Log.Level = level
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SigningConvention returns the configured protocol convention.
func (c *Config) SigningConvention() protocol.Convention {
	conv, err := protocol.ParseConvention(c.Convention)
	if err != nil {
		// Validate restricts Convention to parseable names.
		return protocol.ConventionRawDigest
	}
	return conv
}

// getValidator returns the process-wide validator with the custom rules
// registered.
var getValidator = sync.OnceValue(func() *validator.Validate {
	validate := validator.New()

	if err := validate.RegisterValidation("hashalg", func(fl validator.FieldLevel) bool {
		return digest.DefaultRegistry().Has(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register hashalg validation: %v", err))
	}
	return validate
})
