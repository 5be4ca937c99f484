package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	bidding "auction-house/internal/biddingService"
	closing "auction-house/internal/closingService"
	"auction-house/internal/invoice"
	model "auction-house/internal/models"
	"auction-house/internal/notification"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const adminToken = "integration-admin"

// approveAllChecker passes every bidder; integration tests exercise the
// bidding flow, not the compliance service.
type approveAllChecker struct{}

func (approveAllChecker) Check(context.Context, string, model.Auction) error { return nil }

type testEnv struct {
	router *gin.Engine
	store  *repository.FileStore
}

// SetupTestEnv wires the full stack over a temp file store with fast
// closing timings and the push/email channels disabled.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)

	outbox := notification.NewOutbox(nil, nil, 64)
	outbox.Start()
	t.Cleanup(outbox.Close)

	biddingSvc := bidding.NewBiddingService(store, approveAllChecker{}, outbox)
	invoices := invoice.NewGenerator(store, outbox)
	closer := closing.NewCloser(store, outbox, invoices, 20*time.Millisecond, 50*time.Millisecond)

	auctionHandler := handler.NewAuctionHandler(biddingSvc, closer, store)
	router := server.SetupRouter(auctionHandler, nil, adminToken)
	return &testEnv{router: router, store: store}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func (e *testEnv) ExecuteRequest(t *testing.T, method, url string, body any, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("X-Admin-Token", adminToken)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// ExecuteAndParse executes a request and unmarshals the response envelope.
func (e *testEnv) ExecuteAndParse(t *testing.T, method, url string, body any, admin bool) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	w := e.ExecuteRequest(t, method, url, body, admin)
	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// data extracts the envelope's data object.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return d
}
