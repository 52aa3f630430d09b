package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/revvit/proposal/internal/model"
)

// HTTPSubmitter posts submissions as JSON to POST {BaseURL}/api/sign.
type HTTPSubmitter struct {
	BaseURL    string
	httpClient *http.Client
}

// NewHTTPSubmitter creates an HTTPSubmitter for the given server.
func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, sub model.AcceptanceSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/sign", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// A body that is not JSON leaves Message empty and the fallback applies.
	var data struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&data)
	return &SubmitError{StatusCode: resp.StatusCode, Message: data.Error}
}
