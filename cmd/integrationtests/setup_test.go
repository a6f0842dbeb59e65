package integrationtests

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	auction "nft-marketplace/internal/auctionService"
	"nft-marketplace/internal/auth"
	"nft-marketplace/internal/clock"
	"nft-marketplace/internal/custody"
	lending "nft-marketplace/internal/lendingService"
	"nft-marketplace/internal/repository"
	"nft-marketplace/internal/server"
	"nft-marketplace/internal/store"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testStart is the wall-clock instant every test market starts at
var testStart = time.Unix(1_700_000_000, 0)

// TestMarket bundles a router wired to real services with the manual clock
// driving them.
type TestMarket struct {
	Router *gin.Engine
	Clock  *clock.Manual
}

// Account is a signing identity used to call the API
type Account struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// SetupTestMarket initializes the router with an in-memory store for integration testing.
func SetupTestMarket(t *testing.T) *TestMarket {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	t.Cleanup(func() { _ = st.Close() })

	repo := repository.NewRepo(st)
	clk := clock.NewManual(testStart)

	router := server.SetupRouter(server.Dependencies{
		Auctions: auction.NewAuctionService(repo, custody.NewLedger(), clk),
		Lendings: lending.NewLendingService(repo),
		Holdings: custody.NewHoldingService(repo),
		Verifier: auth.NewSignatureVerifier(),
		Replay:   auth.NewNonceGuard(repo, clk, auth.DefaultSignatureWindow),
	})
	return &TestMarket{Router: router, Clock: clk}
}

// NewAccount generates a fresh signing identity
func NewAccount(t *testing.T) Account {
	t.Helper()
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	return Account{Key: key, Address: ethcrypto.PubkeyToAddress(key.PublicKey)}
}

// SignHeaders returns the auth headers of one request signed by as at the
// market clock with a fresh nonce.
func (m *TestMarket) SignHeaders(t *testing.T, as Account, method, path string, body []byte) http.Header {
	t.Helper()

	ts := m.Clock.Now().Unix()
	nonce := auth.NewNonce()
	sig, err := auth.SignRequest(as.Key, method, path, ts, nonce, body)
	require.NoError(t, err)

	h := http.Header{}
	h.Set(auth.HeaderCaller, as.Address.Hex())
	h.Set(auth.HeaderSignature, sig)
	h.Set(auth.HeaderTimestamp, strconv.FormatInt(ts, 10))
	h.Set(auth.HeaderNonce, nonce)
	return h
}

// Execute sends body with the given headers and parses the response envelope
func (m *TestMarket) Execute(t *testing.T, method, url string, headers http.Header, body []byte) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header[k] = v
	}

	w := httptest.NewRecorder()
	m.Router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// ExecuteRequestAndParse executes an HTTP request on the market router and
// parses the response envelope. A nil account sends the request unsigned.
func (m *TestMarket) ExecuteRequestAndParse(t *testing.T, as *Account, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	reqBody := EncodeBody(t, body)
	var headers http.Header
	if as != nil {
		headers = m.SignHeaders(t, *as, method, url, reqBody)
	}
	return m.Execute(t, method, url, headers, reqBody)
}

// EncodeBody marshals body unless it is already raw bytes
func EncodeBody(t *testing.T, body any) []byte {
	t.Helper()
	switch v := body.(type) {
	case nil:
		return nil
	case []byte:
		return v
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		return raw
	}
}

// Data returns the data object of a successful response
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}
