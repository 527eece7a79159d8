package report

import "github.com/bitrise-steplib/steps-deploy-to-allure-server/report/api"

// Build describes the CI run the results belong to.
type Build struct {
	Number string
	Link   string
}

// Executor ...
type Executor struct {
	Name string
	Type string
	URL  string
}

// Options controls a single deployment of a results folder.
type Options struct {
	ResultsDir    string
	ArchivePath   string
	ReportPath    string
	ReportName    string
	ReportURL     string
	Executor      Executor
	Build         Build
	DeleteResults bool
}

func newCreateReportPayload(resultID string, opts Options) api.CreateReportPayload {
	return api.CreateReportPayload{
		ReportSpec: api.ReportSpec{
			Path: []string{opts.ReportPath},
			ExecutorInfo: api.ExecutorInfo{
				Name:       opts.Executor.Name,
				Type:       opts.Executor.Type,
				URL:        opts.Executor.URL,
				BuildOrder: opts.Build.Number,
				BuildName:  opts.Build.Number,
				BuildURL:   opts.Build.Link,
				ReportName: opts.ReportName,
				ReportURL:  opts.ReportURL,
			},
		},
		Results:       []string{resultID},
		DeleteResults: opts.DeleteResults,
	}
}
