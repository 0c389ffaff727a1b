package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type PublicProfile struct {
	ProfileID   string `json:"profileId"`
	ProfileName string `json:"profileName"`
}

type AuthResponse struct {
	Profile      PublicProfile `json:"profile"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

type Thread struct {
	ThreadID            uuid.UUID  `json:"threadId"`
	ThreadProfileID     uuid.UUID  `json:"threadProfileId"`
	ThreadReplyThreadID *uuid.UUID `json:"threadReplyThreadId"`
	ThreadContent       string     `json:"threadContent"`
}

type PostThreadResponse struct {
	Message string `json:"message"`
	Thread  Thread `json:"thread"`
}

func (c *APIClient) SignUp(name, email, password string) error {
	body := map[string]string{
		"profileName":            name,
		"profileEmail":           email,
		"profilePassword":        password,
		"profilePasswordConfirm": password,
	}
	return c.post("/sign-up", "", body, nil)
}

func (c *APIClient) SignIn(email, password string) (string, error) {
	body := map[string]string{
		"profileEmail":    email,
		"profilePassword": password,
	}

	var result AuthResponse
	if err := c.post("/sign-in", "", body, &result); err != nil {
		return "", err
	}
	return result.AccessToken, nil
}

func (c *APIClient) PostThread(token, content string, replyTo *uuid.UUID) (*Thread, error) {
	body := map[string]interface{}{
		"threadContent": content,
	}
	if replyTo != nil {
		body["threadReplyThreadId"] = replyTo
	}

	var result PostThreadResponse
	if err := c.post("/thread", token, body, &result); err != nil {
		return nil, err
	}
	return &result.Thread, nil
}

func (c *APIClient) GetThreadPage(page int) ([]Thread, error) {
	resp, err := c.httpClient.Get(fmt.Sprintf("%s/thread/page/%d", c.baseURL, page))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var threads []Thread
	if err := json.NewDecoder(resp.Body).Decode(&threads); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return threads, nil
}

func (c *APIClient) post(path, token string, body, out interface{}) error {
	payload, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
	}
	return nil
}
