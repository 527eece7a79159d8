package main

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/env"
)

const serverURLKey = "ALLURE_SERVER_URL"

var requiredInputs = []string{serverURLKey}

var inputDefaults = map[string]string{
	"ALLURE_SERVER_USERNAME": "",
	"ALLURE_SERVER_PASSWORD": "",
	"ALLURE_RESULTS":         "allure-results",
	"REPORT_PATH":            "main",
	"REPORT_NAME":            "Allure",
	"REPORT_URL":             "",
	"EXECUTOR_INFO_NAME":     "Drone",
	"EXECUTOR_INFO_TYPE":     "exectype",
	"EXECUTOR_INFO_URL":      "",
	"DELETE_RESULTS":         "true",
	"DRONE_BUILD_NUMBER":     "",
	"DRONE_BUILD_LINK":       "",
	"DEBUG_MODE":             "false",
}

// Inputs ...
type Inputs struct {
	ServerURL     string          `env:"ALLURE_SERVER_URL,required"`
	Username      string          `env:"ALLURE_SERVER_USERNAME"`
	Password      stepconf.Secret `env:"ALLURE_SERVER_PASSWORD"`
	ResultsDir    string          `env:"ALLURE_RESULTS"`
	ReportPath    string          `env:"REPORT_PATH"`
	ReportName    string          `env:"REPORT_NAME"`
	ReportURL     string          `env:"REPORT_URL"`
	ExecutorName  string          `env:"EXECUTOR_INFO_NAME"`
	ExecutorType  string          `env:"EXECUTOR_INFO_TYPE"`
	ExecutorURL   string          `env:"EXECUTOR_INFO_URL"`
	DeleteResults string          `env:"DELETE_RESULTS"`
	BuildNumber   string          `env:"DRONE_BUILD_NUMBER"`
	BuildLink     string          `env:"DRONE_BUILD_LINK"`
	DebugMode     string          `env:"DEBUG_MODE"`
}

// Config ...
type Config struct {
	Inputs
	DeleteResults bool
	DebugMode     bool
}

// MissingParametersError lists the required environment variables which are not set.
type MissingParametersError struct {
	Names []string
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("missing required parameters %s", strings.Join(e.Names, ", "))
}

func loadConfig(envRepo env.Repository) (Config, error) {
	var missing []string
	for _, key := range requiredInputs {
		if value, ok := lookupEnv(envRepo, key); !ok || value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Config{}, &MissingParametersError{Names: missing}
	}

	var inputs Inputs
	parser := stepconf.NewInputParser(defaultedRepository{Repository: envRepo, defaults: inputDefaults})
	if err := parser.Parse(&inputs); err != nil {
		return Config{}, err
	}

	return Config{
		Inputs:        inputs,
		DeleteResults: parseFlag(inputs.DeleteResults),
		DebugMode:     parseFlag(inputs.DebugMode),
	}, nil
}

// parseFlag accepts "true" in any case, everything else is false.
func parseFlag(value string) bool {
	return strings.ToLower(value) == "true"
}

// defaultedRepository falls back to defaults for unset keys. A key set to an
// empty value keeps the empty value.
type defaultedRepository struct {
	env.Repository
	defaults map[string]string
}

func (r defaultedRepository) Get(key string) string {
	if value, ok := lookupEnv(r.Repository, key); ok {
		return value
	}
	return r.defaults[key]
}

func lookupEnv(envRepo env.Repository, key string) (string, bool) {
	prefix := key + "="
	for _, kv := range envRepo.List() {
		if strings.HasPrefix(kv, prefix) {
			return strings.TrimPrefix(kv, prefix), true
		}
	}
	return "", false
}
