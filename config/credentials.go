package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Credentials is either APICredentials or NoCredentials. The interface is
// sealed so a type switch over it only has those two cases.
type Credentials interface {
	credentials()
}

// APICredentials holds the key pair used to sign private requests.
type APICredentials struct {
	APIKey    string
	SecretKey string
}

// NoCredentials means at least one of the key pair is missing; the journal
// runs offline against the record store only.
type NoCredentials struct{}

func (APICredentials) credentials() {}
func (NoCredentials) credentials()  {}

type credentialEnv struct {
	APIKey    string `env:"BITUNIX_API_KEY"`
	SecretKey string `env:"BITUNIX_SECRET_KEY"`
}

// LoadCredentials reads the key pair from the process environment. A .env
// file in the working directory, if present, is loaded first and never
// overrides variables that are already set.
func LoadCredentials() (Credentials, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return credentialsFromEnv()
}

func credentialsFromEnv() (Credentials, error) {
	var ce credentialEnv
	if err := env.Parse(&ce); err != nil {
		return nil, err
	}
	if ce.APIKey == "" || ce.SecretKey == "" {
		return NoCredentials{}, nil
	}
	return APICredentials{APIKey: ce.APIKey, SecretKey: ce.SecretKey}, nil
}
