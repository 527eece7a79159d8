package api

// ExecutorInfo describes the CI run that produced the results.
type ExecutorInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	BuildOrder string `json:"buildOrder"`
	BuildName  string `json:"buildName"`
	BuildURL   string `json:"buildUrl"`
	ReportName string `json:"reportName"`
	ReportURL  string `json:"reportUrl"`
}

// ReportSpec ...
type ReportSpec struct {
	Path         []string     `json:"path"`
	ExecutorInfo ExecutorInfo `json:"executorInfo"`
}

// CreateReportPayload ...
type CreateReportPayload struct {
	ReportSpec    ReportSpec `json:"reportSpec"`
	Results       []string   `json:"results"`
	DeleteResults bool       `json:"deleteResults"`
}

// UploadResultResponse ...
type UploadResultResponse struct {
	UUID string `json:"uuid"`
}

// GenerateReportResponse ...
type GenerateReportResponse struct {
	UUID   string `json:"uuid"`
	Path   string `json:"path"`
	URL    string `json:"url"`
	Latest string `json:"latest"`
}
