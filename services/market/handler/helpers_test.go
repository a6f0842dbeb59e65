package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"nft-marketplace/services/market/helpers"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	testSeller = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testBidder = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	testMint   = common.HexToAddress("0x00000000000000000000000000000000000000f1")
)

// withCaller stands in for the signer middleware; the null address means
// "no authenticated caller".
func withCaller(caller common.Address) gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller != (common.Address{}) {
			c.Set(helpers.CallerKey, caller)
		}
		c.Next()
	}
}

// newTestRouter initializes Gin in test mode
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// doJSON runs a request against router and decodes the JSON envelope
func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}
