package main

import "github.com/bitrise-io/go-steputils/tools"

const reportURLOutputKey = "ALLURE_REPORT_URL"

type outputExporter interface {
	ExportOutput(key, value string) error
}

type envmanExporter struct{}

func (envmanExporter) ExportOutput(key, value string) error {
	return tools.ExportEnvironmentWithEnvman(key, value)
}
