package main

import (
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-deploy-to-allure-server/archiver"
	"github.com/bitrise-steplib/steps-deploy-to-allure-server/report"
	"github.com/bitrise-steplib/steps-deploy-to-allure-server/report/api"
)

// archiveFileName is the name of the results archive, created in the working directory.
const archiveFileName = "allure-results.zip"

func fail(logger log.Logger, format string, v ...interface{}) {
	logger.Errorf(format, v...)
	os.Exit(1)
}

func main() {
	logger := log.NewLogger()

	config, err := loadConfig(env.NewRepository())
	if err != nil {
		fail(logger, "Issue with input: %s", err)
	}

	stepconf.Print(config.Inputs)
	logger.Println()
	logger.EnableDebugLog(config.DebugMode)

	workDir, err := os.Getwd()
	if err != nil {
		fail(logger, "Failed to get working directory: %s", err)
	}

	client := api.NewAllureServerClient(config.ServerURL, config.Username, string(config.Password), logger)
	if err := run(config, workDir, client, envmanExporter{}, logger); err != nil {
		fail(logger, "%s", err)
	}
}

func run(config Config, workDir string, client api.ClientAPI, exporter outputExporter, logger log.Logger) error {
	resultsDir := config.ResultsDir
	if !filepath.IsAbs(resultsDir) {
		resultsDir = filepath.Join(workDir, resultsDir)
	}

	resultsArchiver := archiver.New(pathutil.NewPathChecker(), fileutil.NewFileManager(), logger)
	deployer := report.NewDeployer(client, resultsArchiver, logger)

	response, err := deployer.Deploy(report.Options{
		ResultsDir:  resultsDir,
		ArchivePath: filepath.Join(workDir, archiveFileName),
		ReportPath:  config.ReportPath,
		ReportName:  config.ReportName,
		ReportURL:   config.ReportURL,
		Executor: report.Executor{
			Name: config.ExecutorName,
			Type: config.ExecutorType,
			URL:  config.ExecutorURL,
		},
		Build: report.Build{
			Number: config.BuildNumber,
			Link:   config.BuildLink,
		},
		DeleteResults: config.DeleteResults,
	})
	if err != nil {
		return err
	}

	if response.URL != "" {
		logger.Printf("Report: %s", response.URL)

		if err := exporter.ExportOutput(reportURLOutputKey, response.URL); err != nil {
			logger.Warnf("Failed to export %s: %s", reportURLOutputKey, err)
		} else {
			logger.Printf("The report url is now available in the Environment Variable: %s", reportURLOutputKey)
		}
	}

	return nil
}
