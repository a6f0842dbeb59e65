package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"nft-marketplace/internal/clock"
	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/internal/repository"
	"nft-marketplace/internal/store"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestRequireRole(t *testing.T) {
	t.Parallel()

	seller := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	other := common.HexToAddress("0x00000000000000000000000000000000000000b2")

	tests := []struct {
		name    string
		caller  common.Address
		wantErr bool
	}{
		{name: "holder", caller: seller, wantErr: false},
		{name: "other_caller", caller: other, wantErr: true},
		{name: "null_caller", caller: common.Address{}, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := RequireRole(tc.caller, seller, "seller")
			if tc.wantErr {
				require.True(t, errors.Is(err, marketerrors.ErrUnauthorized), "got: %v", err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSignatureVerifier(t *testing.T) {
	t.Parallel()

	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	caller := ethcrypto.PubkeyToAddress(key.PublicKey)

	otherKey, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	other := ethcrypto.PubkeyToAddress(otherKey.PublicKey)

	body := []byte(`{"bid_amount":60}`)
	const ts = int64(1_700_000_000)
	sigHex, err := SignRequest(key, "POST", "/auctions/a1/bids", ts, "nonce-0001", body)
	require.NoError(t, err)
	sig, err := ParseSignature(sigHex)
	require.NoError(t, err)

	verifier := NewSignatureVerifier()

	tests := []struct {
		name    string
		tok     Token
		wantErr bool
	}{
		{
			name: "valid",
			tok:  Token{Claimed: caller, Digest: RequestDigest("post", "/auctions/a1/bids", ts, "nonce-0001", body), Signature: sig},
		},
		{
			name:    "claimed_other_identity",
			tok:     Token{Claimed: other, Digest: RequestDigest("POST", "/auctions/a1/bids", ts, "nonce-0001", body), Signature: sig},
			wantErr: true,
		},
		{
			name:    "tampered_body",
			tok:     Token{Claimed: caller, Digest: RequestDigest("POST", "/auctions/a1/bids", ts, "nonce-0001", []byte(`{"bid_amount":61}`)), Signature: sig},
			wantErr: true,
		},
		{
			name:    "other_path",
			tok:     Token{Claimed: caller, Digest: RequestDigest("POST", "/auctions/a2/bids", ts, "nonce-0001", body), Signature: sig},
			wantErr: true,
		},
		{
			name:    "other_timestamp",
			tok:     Token{Claimed: caller, Digest: RequestDigest("POST", "/auctions/a1/bids", ts+1, "nonce-0001", body), Signature: sig},
			wantErr: true,
		},
		{
			name:    "other_nonce",
			tok:     Token{Claimed: caller, Digest: RequestDigest("POST", "/auctions/a1/bids", ts, "nonce-0002", body), Signature: sig},
			wantErr: true,
		},
		{
			name:    "short_signature",
			tok:     Token{Claimed: caller, Digest: RequestDigest("POST", "/auctions/a1/bids", ts, "nonce-0001", body), Signature: sig[:64]},
			wantErr: true,
		},
		{
			name:    "null_claim",
			tok:     Token{Digest: RequestDigest("POST", "/auctions/a1/bids", ts, "nonce-0001", body), Signature: sig},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := verifier.Verify(tc.tok)
			if tc.wantErr {
				require.True(t, errors.Is(err, marketerrors.ErrUnauthorized), "got: %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, caller, got)
		})
	}
}

func TestParseIdentity(t *testing.T) {
	t.Parallel()

	addr, err := ParseIdentity(" 0x00000000000000000000000000000000000000A1 ")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xa1"), addr)

	_, err = ParseIdentity("0x0000000000000000000000000000000000000000")
	require.ErrorIs(t, err, marketerrors.ErrInvalidRequest)

	_, err = ParseIdentity("not-an-address")
	require.ErrorIs(t, err, marketerrors.ErrInvalidRequest)

	_, err = ParseSignature("zz")
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)
}

func TestParseTimestampAndNonce(t *testing.T) {
	t.Parallel()

	ts, err := ParseTimestamp(" 1700000000 ")
	require.NoError(t, err)
	require.Equal(t, int64(1_700_000_000), ts)

	_, err = ParseTimestamp("yesterday")
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)

	nonce, err := ParseNonce(NewNonce())
	require.NoError(t, err)
	require.NotEmpty(t, nonce)

	for _, bad := range []string{"short", "has/slash1", "spaces in it", strings.Repeat("a", 65)} {
		_, err = ParseNonce(bad)
		require.ErrorIs(t, err, marketerrors.ErrUnauthorized, bad)
	}
}

func TestNonceGuard(t *testing.T) {
	t.Parallel()

	signer := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	other := common.HexToAddress("0x00000000000000000000000000000000000000b2")
	now := time.Unix(1_700_000_000, 0)

	clk := clock.NewManual(now)
	guard := NewNonceGuard(repository.NewRepo(store.NewMemoryStore()), clk, time.Minute)

	tests := []struct {
		name      string
		signer    common.Address
		timestamp int64
		nonce     string
		wantErr   error
	}{
		{name: "fresh", signer: signer, timestamp: now.Unix(), nonce: "nonce-0001"},
		{name: "replay", signer: signer, timestamp: now.Unix(), nonce: "nonce-0001", wantErr: marketerrors.ErrReplayedRequest},
		{name: "replay_with_new_timestamp", signer: signer, timestamp: now.Unix() + 5, nonce: "nonce-0001", wantErr: marketerrors.ErrReplayedRequest},
		{name: "same_nonce_other_signer", signer: other, timestamp: now.Unix(), nonce: "nonce-0001"},
		{name: "edge_of_window", signer: signer, timestamp: now.Unix() - 60, nonce: "nonce-0002"},
		{name: "too_old", signer: signer, timestamp: now.Unix() - 61, nonce: "nonce-0003", wantErr: marketerrors.ErrStaleRequest},
		{name: "too_far_ahead", signer: signer, timestamp: now.Unix() + 61, nonce: "nonce-0004", wantErr: marketerrors.ErrStaleRequest},
	}

	// cases share the guard's nonce store, so they run in order
	for _, tc := range tests {
		err := guard.Admit(tc.signer, tc.timestamp, tc.nonce)
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr, tc.name)
			require.ErrorIs(t, err, marketerrors.ErrUnauthorized, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
	}

	// a stale rejection does not consume the nonce
	clk.Advance(2 * time.Second)
	require.NoError(t, guard.Admit(signer, now.Unix()+2, "nonce-0003"))
}
