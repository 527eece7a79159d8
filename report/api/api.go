package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httputil"
	"net/textproto"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/urlutil"
	"github.com/bitrise-io/go-utils/v2/log"
)

const (
	resultsFieldName   = "allureResults"
	archiveContentType = "application/zip"
)

// ClientAPI ...
type ClientAPI interface {
	UploadResults(archivePath string) (string, error)
	GenerateReport(payload CreateReportPayload) (GenerateReportResponse, error)
}

// HTTPClient ...
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AllureServerClient talks to the result and report endpoints of an Allure server.
type AllureServerClient struct {
	logger     log.Logger
	httpClient HTTPClient
	serverURL  string
	username   string
	password   string
}

// NewAllureServerClient ...
func NewAllureServerClient(serverURL, username, password string, logger log.Logger) *AllureServerClient {
	return &AllureServerClient{
		logger:     logger,
		httpClient: newHTTPClient(logger),
		serverURL:  serverURL,
		username:   username,
		password:   password,
	}
}

// UploadResults sends the zipped results to the server and returns the identifier
// the server assigned to them.
func (c *AllureServerClient) UploadResults(archivePath string) (string, error) {
	url, err := urlutil.Join(c.serverURL, "api", "result")
	if err != nil {
		return "", fmt.Errorf("failed to generate upload url: %w", err)
	}

	body, contentType, err := c.newMultipartBody(archivePath)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	respBody, err := c.perform(req)
	if err != nil {
		return "", err
	}

	var response UploadResultResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to parse upload response (%s): %w", respBody, err)
	}
	if response.UUID == "" {
		return "", fmt.Errorf("failed to upload results to %s: %w", url, ErrMissingUUID)
	}

	return response.UUID, nil
}

// GenerateReport asks the server to render a report from already uploaded results.
// The response body is optional, a body which cannot be parsed is only logged.
func (c *AllureServerClient) GenerateReport(payload CreateReportPayload) (GenerateReportResponse, error) {
	url, err := urlutil.Join(c.serverURL, "api", "report")
	if err != nil {
		return GenerateReportResponse{}, fmt.Errorf("failed to generate report url: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return GenerateReportResponse{}, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return GenerateReportResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")

	respBody, err := c.perform(req)
	if err != nil {
		return GenerateReportResponse{}, err
	}

	var response GenerateReportResponse
	if len(bytes.TrimSpace(respBody)) == 0 {
		return response, nil
	}
	if err := json.Unmarshal(respBody, &response); err != nil {
		c.logger.Warnf("Failed to parse report response: %s", err)
		return GenerateReportResponse{}, nil
	}

	return response, nil
}

func (c *AllureServerClient) perform(request *http.Request) ([]byte, error) {
	url := request.URL.String()

	// Dumped before the credentials are added, so the Authorization header never reaches the log.
	dump, err := httputil.DumpRequest(request, false)
	if err != nil {
		c.logger.Warnf("Request dump failed: %s", err)
	} else {
		c.logger.Debugf("Request dump: %s", string(dump))
	}

	request.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	c.logger.Printf("%d %s %s", resp.StatusCode, url, body)

	if resp.StatusCode != http.StatusCreated {
		return nil, &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}

func (c *AllureServerClient) newMultipartBody(archivePath string) (*bytes.Buffer, string, error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.Warnf("Failed to close archive: %s", err)
		}
	}()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, resultsFieldName, filepath.Base(archivePath)))
	header.Set("Content-Type", archiveContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to read archive: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
