package auth

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/utils"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Request headers carrying the signer proof
const (
	HeaderCaller    = "X-Market-Caller"
	HeaderSignature = "X-Market-Signature"
	HeaderTimestamp = "X-Market-Timestamp"
	HeaderNonce     = "X-Market-Nonce"
)

const (
	signatureLength = 65
	minNonceLength  = 8
	maxNonceLength  = 64
)

// Token is the proof a caller presents: a claimed identity and a signature
// over the request digest.
type Token struct {
	Claimed   common.Address
	Digest    []byte
	Signature []byte
}

// Verifier confirms that the presenter of a token controls the claimed identity.
type Verifier interface {
	Verify(tok Token) (common.Address, error)
}

// SignatureVerifier recovers the secp256k1 signer of the digest and compares
// it with the claimed identity.
type SignatureVerifier struct{}

// NewSignatureVerifier creates a verifier for recoverable secp256k1 signatures
func NewSignatureVerifier() SignatureVerifier {
	return SignatureVerifier{}
}

func (SignatureVerifier) Verify(tok Token) (common.Address, error) {
	if err := Authenticated(tok.Claimed); err != nil {
		return common.Address{}, err
	}
	if len(tok.Signature) != signatureLength {
		return common.Address{}, fmt.Errorf("auth: %w - signature must be %d bytes", marketerrors.ErrUnauthorized, signatureLength)
	}
	pub, err := ethcrypto.SigToPub(tok.Digest, tok.Signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("auth: %w - recover signer: %v", marketerrors.ErrUnauthorized, err)
	}
	recovered := ethcrypto.PubkeyToAddress(*pub)
	if recovered != tok.Claimed {
		return common.Address{}, fmt.Errorf("auth: %w - signature does not match caller %s", marketerrors.ErrUnauthorized, tok.Claimed.Hex())
	}
	return recovered, nil
}

// RequestDigest is the message a caller signs for one HTTP request. The
// timestamp (unix seconds) and nonce make every signature single-use.
func RequestDigest(method, path string, timestamp int64, nonce string, body []byte) []byte {
	header := strings.ToUpper(method) + " " + path + "\n" +
		strconv.FormatInt(timestamp, 10) + "\n" + nonce + "\n"
	return ethcrypto.Keccak256([]byte(header), body)
}

// SignRequest signs the request digest with key and returns the hex signature
// to place in HeaderSignature.
func SignRequest(key *ecdsa.PrivateKey, method, path string, timestamp int64, nonce string, body []byte) (string, error) {
	sig, err := ethcrypto.Sign(RequestDigest(method, path, timestamp, nonce, body), key)
	if err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}
	return "0x" + hex.EncodeToString(sig), nil
}

// NewNonce returns a fresh value for HeaderNonce
func NewNonce() string {
	return utils.GenerateID()
}

// ParseTimestamp decodes the unix-seconds value of HeaderTimestamp
func ParseTimestamp(s string) (int64, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("auth: %w - malformed timestamp", marketerrors.ErrUnauthorized)
	}
	return ts, nil
}

// ParseNonce accepts 8 to 64 characters of letters, digits, '-' and '_'
func ParseNonce(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < minNonceLength || len(s) > maxNonceLength {
		return "", fmt.Errorf("auth: %w - nonce must be %d to %d characters", marketerrors.ErrUnauthorized, minNonceLength, maxNonceLength)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return "", fmt.Errorf("auth: %w - nonce contains %q", marketerrors.ErrUnauthorized, r)
		}
	}
	return s, nil
}

// ParseSignature decodes a hex signature with or without the 0x prefix
func ParseSignature(s string) ([]byte, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	sig, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("auth: %w - malformed signature", marketerrors.ErrUnauthorized)
	}
	return sig, nil
}

// ParseIdentity decodes a hex address; the null address is rejected.
func ParseIdentity(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w - malformed identity %q", marketerrors.ErrInvalidRequest, s)
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w - null identity", marketerrors.ErrInvalidRequest)
	}
	return addr, nil
}
