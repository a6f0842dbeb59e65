// Package auth is the authorization gate in front of every mutating
// operation. Verifiers turn a presented proof into a caller identity; the gate
// functions compare that identity with the role an operation requires.
package auth

import (
	"fmt"

	"nft-marketplace/internal/marketerrors"

	"github.com/ethereum/go-ethereum/common"
)

// Authenticated rejects the null identity. Any other caller may create
// listings, bid and borrow.
func Authenticated(caller common.Address) error {
	if caller == (common.Address{}) {
		return fmt.Errorf("auth: %w - missing caller identity", marketerrors.ErrUnauthorized)
	}
	return nil
}

// RequireRole checks that caller is the identity holding role.
func RequireRole(caller, holder common.Address, role string) error {
	if err := Authenticated(caller); err != nil {
		return err
	}
	if caller != holder {
		return fmt.Errorf("auth: %w - caller %s is not the %s", marketerrors.ErrUnauthorized, caller.Hex(), role)
	}
	return nil
}
