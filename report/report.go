package report

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-deploy-to-allure-server/archiver"
	"github.com/bitrise-steplib/steps-deploy-to-allure-server/report/api"
)

// Archiver ...
type Archiver interface {
	Archive(folder, destination string) (archiver.Summary, error)
}

// Deployer uploads a results folder to an Allure server and requests a report from it.
type Deployer struct {
	client   api.ClientAPI
	archiver Archiver
	logger   log.Logger
}

// NewDeployer ...
func NewDeployer(client api.ClientAPI, resultsArchiver Archiver, logger log.Logger) Deployer {
	return Deployer{
		client:   client,
		archiver: resultsArchiver,
		logger:   logger,
	}
}

// Deploy runs the archive, upload and report steps in order and stops at the first failure.
func (d Deployer) Deploy(opts Options) (api.GenerateReportResponse, error) {
	d.logger.Println()
	d.logger.Infof("Archiving results")

	summary, err := d.archiver.Archive(opts.ResultsDir, opts.ArchivePath)
	if err != nil {
		return api.GenerateReportResponse{}, err
	}

	d.logger.Println()
	d.logger.Infof("Uploading results")

	resultID, err := d.client.UploadResults(summary.Path)
	if err != nil {
		return api.GenerateReportResponse{}, fmt.Errorf("failed to upload results: %w", err)
	}
	d.logger.Printf("Result id: %s", resultID)

	d.logger.Println()
	d.logger.Infof("Generating report")

	payload := newCreateReportPayload(resultID, opts)
	response, err := d.client.GenerateReport(payload)
	if err != nil {
		return api.GenerateReportResponse{}, fmt.Errorf("failed to generate report: %w", err)
	}
	d.logger.Donef("Report generated successfully")

	return response, nil
}
