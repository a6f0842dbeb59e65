package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"nft-marketplace/internal/auth"
	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/internal/metrics"
	"nft-marketplace/services/market/helpers"
	"nft-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// maxSignedBody bounds how much of a request body is read for signing
const maxSignedBody = 1 << 20

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	elapsed := time.Since(start)
	metrics.Market().ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), elapsed)
	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": elapsed.String(),
	})
}

// SignerAuthMiddleware verifies the caller's signature over method, path,
// timestamp, nonce and body, admits the nonce once through guard, and stores
// the recovered identity under helpers.CallerKey.
func SignerAuthMiddleware(verifier auth.Verifier, guard auth.ReplayGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimed := c.GetHeader(auth.HeaderCaller)
		sigHex := c.GetHeader(auth.HeaderSignature)
		tsHeader := c.GetHeader(auth.HeaderTimestamp)
		nonceHeader := c.GetHeader(auth.HeaderNonce)
		if claimed == "" || sigHex == "" || tsHeader == "" || nonceHeader == "" {
			abortUnauthorized(c, fmt.Errorf("%w - missing %s, %s, %s or %s header", marketerrors.ErrUnauthorized,
				auth.HeaderCaller, auth.HeaderSignature, auth.HeaderTimestamp, auth.HeaderNonce))
			return
		}

		caller, err := auth.ParseIdentity(claimed)
		if err != nil {
			abortUnauthorized(c, fmt.Errorf("%w - %v", marketerrors.ErrUnauthorized, err))
			return
		}
		sig, err := auth.ParseSignature(sigHex)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		timestamp, err := auth.ParseTimestamp(tsHeader)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		nonce, err := auth.ParseNonce(nonceHeader)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSignedBody+1))
		if err != nil {
			abortUnauthorized(c, fmt.Errorf("%w - unreadable body", marketerrors.ErrUnauthorized))
			return
		}
		if len(body) > maxSignedBody {
			err := fmt.Errorf("%w - body exceeds %d bytes", marketerrors.ErrInvalidRequest, maxSignedBody)
			utils.JSONError(c, http.StatusRequestEntityTooLarge, err, "request body too large", marketerrors.Kind(err))
			utils.Warn("SignerAuthMiddleware: rejected request", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		verified, err := verifier.Verify(auth.Token{
			Claimed:   caller,
			Digest:    auth.RequestDigest(c.Request.Method, c.Request.URL.Path, timestamp, nonce, body),
			Signature: sig,
		})
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		if err := guard.Admit(verified, timestamp, nonce); err != nil {
			if !errors.Is(err, marketerrors.ErrUnauthorized) {
				utils.JSONError(c, http.StatusInternalServerError, err, "internal server error", marketerrors.Kind(err))
				utils.Error("SignerAuthMiddleware: nonce check failed", map[string]any{
					"path":  c.Request.URL.Path,
					"error": err.Error(),
				})
				c.Abort()
				return
			}
			abortUnauthorized(c, err)
			return
		}

		c.Set(helpers.CallerKey, verified)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusUnauthorized, err, "authentication failed", marketerrors.Kind(err))
	utils.Warn("SignerAuthMiddleware: rejected request", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.Abort()
}
