package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRepository map[string]string

func (r mapRepository) List() []string {
	var envs []string
	for key, value := range r {
		envs = append(envs, key+"="+value)
	}
	return envs
}

func (r mapRepository) Unset(key string) error {
	delete(r, key)
	return nil
}

func (r mapRepository) Get(key string) string {
	return r[key]
}

func (r mapRepository) Set(key, value string) error {
	r[key] = value
	return nil
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := loadConfig(mapRepository{"ALLURE_SERVER_URL": "http://localhost:5050"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5050", config.ServerURL)
	assert.Equal(t, "", config.Username)
	assert.Equal(t, "", string(config.Password))
	assert.Equal(t, "allure-results", config.ResultsDir)
	assert.Equal(t, "main", config.ReportPath)
	assert.Equal(t, "Allure", config.ReportName)
	assert.Equal(t, "", config.ReportURL)
	assert.Equal(t, "Drone", config.ExecutorName)
	assert.Equal(t, "exectype", config.ExecutorType)
	assert.Equal(t, "", config.ExecutorURL)
	assert.Equal(t, "", config.BuildNumber)
	assert.Equal(t, "", config.BuildLink)
	assert.True(t, config.DeleteResults)
	assert.False(t, config.DebugMode)
}

func TestLoadConfig_Overrides(t *testing.T) {
	config, err := loadConfig(mapRepository{
		"ALLURE_SERVER_URL":      "http://allure.test",
		"ALLURE_SERVER_USERNAME": "ci-user",
		"ALLURE_SERVER_PASSWORD": "ci-password",
		"ALLURE_RESULTS":         "build/allure-results",
		"REPORT_PATH":            "feature-x",
		"REPORT_NAME":            "Nightly",
		"REPORT_URL":             "http://reports.test",
		"EXECUTOR_INFO_NAME":     "Jenkins",
		"EXECUTOR_INFO_TYPE":     "jenkins",
		"EXECUTOR_INFO_URL":      "http://jenkins.test",
		"DRONE_BUILD_NUMBER":     "13",
		"DRONE_BUILD_LINK":       "http://drone.test/13",
		"DEBUG_MODE":             "TRUE",
	})
	require.NoError(t, err)

	assert.Equal(t, "ci-user", config.Username)
	assert.Equal(t, "ci-password", string(config.Password))
	assert.Equal(t, "build/allure-results", config.ResultsDir)
	assert.Equal(t, "feature-x", config.ReportPath)
	assert.Equal(t, "Nightly", config.ReportName)
	assert.Equal(t, "http://reports.test", config.ReportURL)
	assert.Equal(t, "Jenkins", config.ExecutorName)
	assert.Equal(t, "jenkins", config.ExecutorType)
	assert.Equal(t, "http://jenkins.test", config.ExecutorURL)
	assert.Equal(t, "13", config.BuildNumber)
	assert.Equal(t, "http://drone.test/13", config.BuildLink)
	assert.True(t, config.DebugMode)
}

func TestLoadConfig_EmptyValueIsKept(t *testing.T) {
	config, err := loadConfig(mapRepository{
		"ALLURE_SERVER_URL":  "http://allure.test",
		"EXECUTOR_INFO_NAME": "",
	})
	require.NoError(t, err)

	assert.Equal(t, "", config.ExecutorName)
}

func TestLoadConfig_DeleteResults(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  bool
	}{
		{name: "Unset", value: nil, want: true},
		{name: "Lower case true", value: stringPtr("true"), want: true},
		{name: "Upper case true", value: stringPtr("TRUE"), want: true},
		{name: "Lower case false", value: stringPtr("false"), want: false},
		{name: "Mixed case false", value: stringPtr("FaLsE"), want: false},
		{name: "Other value", value: stringPtr("yes"), want: false},
		{name: "Empty value", value: stringPtr(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envRepo := mapRepository{"ALLURE_SERVER_URL": "http://allure.test"}
			if tt.value != nil {
				envRepo["DELETE_RESULTS"] = *tt.value
			}

			config, err := loadConfig(envRepo)
			require.NoError(t, err)

			assert.Equal(t, tt.want, config.DeleteResults)
		})
	}
}

func TestLoadConfig_MissingServerURL(t *testing.T) {
	tests := []struct {
		name    string
		envRepo mapRepository
	}{
		{
			name:    "Unset",
			envRepo: mapRepository{"ALLURE_SERVER_USERNAME": "ci-user"},
		},
		{
			name:    "Empty",
			envRepo: mapRepository{"ALLURE_SERVER_URL": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.envRepo)

			var missingErr *MissingParametersError
			require.True(t, errors.As(err, &missingErr))
			assert.Equal(t, []string{"ALLURE_SERVER_URL"}, missingErr.Names)
			assert.Equal(t, "missing required parameters ALLURE_SERVER_URL", err.Error())
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
