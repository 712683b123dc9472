package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	ethNodeEnvKey      = "ETH_NODE_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	retentionCapEnvKey = "RETENTION_CAP"
	pollIntervalEnvKey = "POLL_INTERVAL_MS"
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	RetentionCap    int
	PollInterval    time.Duration
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	retentionCap, err := intEnvOrDefault(retentionCapEnvKey, 0)
	if err != nil {
		return App{}, err
	}

	pollMs, err := intEnvOrDefault(pollIntervalEnvKey, 0)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		RetentionCap:    retentionCap,
		PollInterval:    time.Duration(pollMs) * time.Millisecond,
	}, nil
}

func intEnvOrDefault(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
