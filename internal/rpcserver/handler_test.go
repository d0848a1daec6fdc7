package rpcserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/xbridge-witness/xbwd/internal/rpcserver"
)

type fakeInfo struct {
	err error
}

func (f fakeInfo) ServerInfo(context.Context) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"server_state": "running"}, nil
}

func TestServeHTTP(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	var testCases = map[string]struct {
		httpMethod   string
		body         string
		infoErr      error
		expectStatus int
		expectError  string
		expectStop   bool
	}{
		"server_info": {
			body:         `{"method":"server_info","api_version":1}`,
			expectStatus: http.StatusOK,
		},
		"server_info without version": {
			body:         `{"method":"server_info"}`,
			expectStatus: http.StatusOK,
		},
		"stop": {
			body:         `{"method":"stop","api_version":1}`,
			expectStatus: http.StatusOK,
			expectStop:   true,
		},
		"unknown method": {
			body:         `{"method":"ledger_accept","api_version":1}`,
			expectStatus: http.StatusOK,
			expectError:  rpcserver.ErrUnknownCmd,
		},
		"no method": {
			body:         `{"api_version":1}`,
			expectStatus: http.StatusOK,
			expectError:  rpcserver.ErrInvalidParams,
		},
		"not an object": {
			body:         `["server_info"]`,
			expectStatus: http.StatusOK,
			expectError:  rpcserver.ErrInvalidParams,
		},
		"api version too new": {
			body:         `{"method":"server_info","api_version":2}`,
			expectStatus: http.StatusOK,
			expectError:  rpcserver.ErrInvalidAPIVersion,
		},
		"api version not integral": {
			body:         `{"method":"server_info","api_version":1.5}`,
			expectStatus: http.StatusOK,
			expectError:  rpcserver.ErrInvalidAPIVersion,
		},
		"api version not a number": {
			body:         `{"method":"stop","api_version":"1"}`,
			expectStatus: http.StatusOK,
			expectError:  rpcserver.ErrInvalidAPIVersion,
		},
		"info failure": {
			body:         `{"method":"server_info"}`,
			infoErr:      errors.New("database is locked"),
			expectStatus: http.StatusOK,
			expectError:  rpcserver.ErrInternal,
		},
		"wrong http method": {
			httpMethod:   http.MethodGet,
			expectStatus: http.StatusMethodNotAllowed,
			expectError:  rpcserver.ErrInvalidParams,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(tt *testing.T) {
			var stopped bool
			s := rpcserver.New(log, fakeInfo{err: tc.infoErr},
				func() { stopped = true })
			httpMethod := tc.httpMethod
			if httpMethod == "" {
				httpMethod = http.MethodPost
			}
			req := httptest.NewRequest(httpMethod, "/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, req)
			assert.Equal(tt, tc.expectStatus, rec.Code, name)
			assert.Equal(tt, tc.expectStop, stopped, name)
			var res struct {
				Result map[string]any `json:"result"`
			}
			assert.NoError(tt, json.Unmarshal(rec.Body.Bytes(), &res), name)
			if tc.expectError != "" {
				assert.Equal(tt, any("error"), res.Result["status"], name)
				assert.Equal(tt, any(tc.expectError), res.Result["error"], name)
			} else {
				assert.Equal(tt, any("success"), res.Result["status"], name)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	s := rpcserver.New(log, fakeInfo{}, func() {}, rpcserver.WithRateLimit(0, 1))
	var codes []int
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/",
			strings.NewReader(`{"method":"server_info"}`))
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusServiceUnavailable}, codes)
}
