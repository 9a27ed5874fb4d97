package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cubey2019/insight-vtc-api/internal/domain/model"
	"github.com/Cubey2019/insight-vtc-api/pkg/logger"
)

const tickerBody = `{"ticker":{"base":"VTC","target":"USD","price":"237.90000000","volume":"216.95406435","change":"0.00000000"},"timestamp":1443798711,"success":true,"error":""}`

func TestTickerAPI_Fetch(t *testing.T) {
	testCases := []struct {
		name          string
		status        int
		body          string
		expectedBody  string
		expectedError error
	}{
		{
			name:         "Success - JSON body",
			status:       http.StatusOK,
			body:         tickerBody,
			expectedBody: tickerBody,
		},
		{
			name:         "Success - HTML body is passed through",
			status:       http.StatusOK,
			body:         "<html><head><title>HTML</title></head><body></body></html>",
			expectedBody: "<html><head><title>HTML</title></head><body></body></html>",
		},
		{
			name:          "Error - Server error",
			status:        http.StatusInternalServerError,
			body:          "oops",
			expectedError: model.ErrTransport,
		},
		{
			name:          "Error - Not found",
			status:        http.StatusNotFound,
			expectedError: model.ErrTransport,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/ticker/vtc-usd", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			api := NewTickerAPI(server.URL+"/api/ticker/vtc-usd", time.Second, logger.Nop())
			body, err := api.Fetch(context.Background())

			assert.Equal(t, int32(1), hits.Load())
			if tc.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectedError))
				assert.Nil(t, body)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedBody, string(body))
		})
	}
}

func TestTickerAPI_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	api := NewTickerAPI(url, time.Second, logger.Nop())
	_, err := api.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrTransport))
}

func TestTickerAPI_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	api := NewTickerAPI(server.URL, 50*time.Millisecond, logger.Nop())
	_, err := api.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrTransport))
}

func TestTickerAPI_Fetch_InvalidURL(t *testing.T) {
	api := NewTickerAPIWithClient("://bad", http.DefaultClient, logger.Nop())
	_, err := api.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrTransport))
}
