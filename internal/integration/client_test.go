//go:build integration_test || all_tests

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymprogress/internal/auth"
	"github.com/2beens/gymprogress/internal/middleware"

	"github.com/brianvoe/gofakeit/v6"
)

const userAgent = "test-agent"

var httpClient = &http.Client{Timeout: 10 * time.Second}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func fakeCredentials() credentials {
	return credentials{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 16),
	}
}

// doRequest sends body as JSON and returns the status code and raw response body.
func (s *IntegrationTestSuite) doRequest(method, path string, headers map[string]string, body any) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBody
}

func (s *IntegrationTestSuite) asUser(method, path, token string, body any) (int, []byte) {
	return s.doRequest(method, path, map[string]string{auth.TokenHeader: token}, body)
}

func (s *IntegrationTestSuite) asAdmin(method, path string, body any) (int, []byte) {
	return s.doRequest(method, path, map[string]string{middleware.AdminSecretHeader: testAdminSecret}, body)
}

func (s *IntegrationTestSuite) decode(raw []byte, v any) {
	s.Require().NoError(json.Unmarshal(raw, v), string(raw))
}

// registerAndLogin creates a fresh user and returns its id and session token.
func (s *IntegrationTestSuite) registerAndLogin() (int, string) {
	creds := fakeCredentials()

	status, body := s.doRequest("POST", "/a/register", nil, creds)
	s.Require().Equal(http.StatusCreated, status, string(body))
	var registered auth.RegisterResponse
	s.decode(body, &registered)
	s.Require().Equal(creds.Email, registered.Email)

	status, body = s.doRequest("POST", "/a/login", nil, creds)
	s.Require().Equal(http.StatusOK, status, string(body))
	var session auth.Session
	s.decode(body, &session)
	s.Require().NotEmpty(session.Token)
	s.Require().Equal(registered.UserID, session.UserID)

	return session.UserID, session.Token
}
