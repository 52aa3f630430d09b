// Package resend provides a lightweight client for the Resend email API.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
package resend

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL は Resend API のエンドポイント
const DefaultBaseURL = "https://api.resend.com"

// Attachment はメールに添付するファイル
type Attachment struct {
	Filename string
	Content  []byte // 送信時に base64 エンコードされる
}

// Email は送信するメッセージ
type Email struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// APIError は Resend が通常のレスポンスとして返した配信エラー
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resend: %s (%d): %s", e.Name, e.StatusCode, e.Message)
}

// SendResponse は送信結果。Error が非 nil の場合、API は配信を拒否している
type SendResponse struct {
	ID    string
	Error *APIError
}

// Client は Resend API クライアントのインターフェース
type Client interface {
	// Send はメールを 1 通送信する。API が拒否した場合は SendResponse.Error を設定し、
	// Go の error は通信・デコード失敗のときのみ返す
	Send(ctx context.Context, email Email) (*SendResponse, error)
	// Configured は API キーが設定済みかを返す
	Configured() bool
}

// RealClient は Resend API への raw HTTP クライアント実装
type RealClient struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

// NewClient は RealClient を生成する
func NewClient(apiKey, baseURL string) *RealClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &RealClient{
		APIKey:     apiKey,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ErrNotConfigured は API キーが設定されていない場合のエラー
var ErrNotConfigured = errors.New("resend: not configured")

// Configured は API キーが設定済みかを返す
func (c *RealClient) Configured() bool {
	return c.APIKey != ""
}

type sendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendRequest struct {
	From        string           `json:"from"`
	To          []string         `json:"to"`
	Subject     string           `json:"subject"`
	HTML        string           `json:"html"`
	Attachments []sendAttachment `json:"attachments,omitempty"`
}

// Send は POST /emails を呼び出す
func (c *RealClient) Send(ctx context.Context, email Email) (*SendResponse, error) {
	if c.APIKey == "" {
		return nil, ErrNotConfigured
	}

	body := sendRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
	}
	for _, a := range email.Attachments {
		body.Attachments = append(body.Attachments, sendAttachment{
			Filename: a.Filename,
			Content:  base64.StdEncoding.EncodeToString(a.Content),
		})
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/emails", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("resend send: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		// レスポンス本文の statusCode より HTTP ステータスを優先する
		apiErr.StatusCode = resp.StatusCode
		return &SendResponse{Error: apiErr}, nil
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("resend send: decode response: %w", err)
	}
	if result.ID == "" {
		return nil, errors.New("resend send: empty email ID in response")
	}
	return &SendResponse{ID: result.ID}, nil
}
