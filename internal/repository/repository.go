package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"nft-marketplace/internal/marketerrors"
	model "nft-marketplace/internal/models"
	"nft-marketplace/internal/store"

	"github.com/ethereum/go-ethereum/common"
)

const (
	kindAuction     = "auction"
	kindLending     = "lending"
	kindHolding     = "holding"
	kindNonce       = "nonce"
	kindHoldingSlot = "holding_slot"
	kindMintSupply  = "mint_supply"
)

// Records is the typed record access available to one request
type Records interface {
	CreateAuction(payer common.Address, auction model.Auction) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	PutAuction(auction model.Auction) error

	CreateLending(payer common.Address, lending model.Lending) (model.Lending, error)
	GetLending(lendingID string) (model.Lending, error)
	PutLending(lending model.Lending) error

	CreateHolding(payer common.Address, holding model.Holding) (model.Holding, error)
	GetHolding(holdingID string) (model.Holding, error)
	PutHolding(holding model.Holding) error
	// ClaimHoldingSlot reserves the single holding owner may keep for mint
	ClaimHoldingSlot(owner, mint common.Address) error
	// ClaimMintSupply reserves the one unit of mint that may ever be deposited
	ClaimMintSupply(depositor, mint common.Address) error

	// ClaimNonce consumes a signer's request nonce
	ClaimNonce(used model.UsedNonce) error
}

// MarketDB runs one request against the records. Update commits every write
// made through Records when fn returns nil and discards all of them otherwise.
type MarketDB interface {
	Update(fn func(Records) error) error
	View(fn func(Records) error) error
}

// Repo implements MarketDB over a store.Store
type Repo struct {
	store store.Store
}

// NewRepo creates a new repository over the given record store
func NewRepo(s store.Store) *Repo {
	return &Repo{store: s}
}

func (r *Repo) Update(fn func(Records) error) error {
	return r.store.Update(func(tx store.Tx) error {
		return fn(&txRecords{tx: tx})
	})
}

func (r *Repo) View(fn func(Records) error) error {
	return r.store.View(func(tx store.Tx) error {
		return fn(&txRecords{tx: tx})
	})
}

type txRecords struct {
	tx store.Tx
}

// CreateAuction allocates a new auction record paid for by payer and stores it
func (r *txRecords) CreateAuction(payer common.Address, auction model.Auction) (model.Auction, error) {
	id, err := r.tx.Allocate(kindAuction, payer.Hex())
	if err != nil {
		return model.Auction{}, fmt.Errorf("create auction: %w", err)
	}
	auction.AuctionID = id
	if err := r.put(kindAuction, id, auction); err != nil {
		return model.Auction{}, fmt.Errorf("create auction: %w", err)
	}
	return auction, nil
}

// GetAuction loads an auction record
func (r *txRecords) GetAuction(auctionID string) (model.Auction, error) {
	var auction model.Auction
	if err := r.get(kindAuction, auctionID, &auction); err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, notFound(err, marketerrors.ErrAuctionNotFound))
	}
	return auction, nil
}

// PutAuction overwrites an existing auction record
func (r *txRecords) PutAuction(auction model.Auction) error {
	if err := r.put(kindAuction, auction.AuctionID, auction); err != nil {
		return fmt.Errorf("put auction %s: %w", auction.AuctionID, notFound(err, marketerrors.ErrAuctionNotFound))
	}
	return nil
}

// CreateLending allocates a new lending record paid for by payer and stores it
func (r *txRecords) CreateLending(payer common.Address, lending model.Lending) (model.Lending, error) {
	id, err := r.tx.Allocate(kindLending, payer.Hex())
	if err != nil {
		return model.Lending{}, fmt.Errorf("create lending: %w", err)
	}
	lending.LendingID = id
	if err := r.put(kindLending, id, lending); err != nil {
		return model.Lending{}, fmt.Errorf("create lending: %w", err)
	}
	return lending, nil
}

// GetLending loads a lending record
func (r *txRecords) GetLending(lendingID string) (model.Lending, error) {
	var lending model.Lending
	if err := r.get(kindLending, lendingID, &lending); err != nil {
		return model.Lending{}, fmt.Errorf("get lending %s: %w", lendingID, notFound(err, marketerrors.ErrLendingNotFound))
	}
	return lending, nil
}

// PutLending overwrites an existing lending record
func (r *txRecords) PutLending(lending model.Lending) error {
	if err := r.put(kindLending, lending.LendingID, lending); err != nil {
		return fmt.Errorf("put lending %s: %w", lending.LendingID, notFound(err, marketerrors.ErrLendingNotFound))
	}
	return nil
}

// CreateHolding allocates a new custody holding paid for by payer and stores it
func (r *txRecords) CreateHolding(payer common.Address, holding model.Holding) (model.Holding, error) {
	id, err := r.tx.Allocate(kindHolding, payer.Hex())
	if err != nil {
		return model.Holding{}, fmt.Errorf("create holding: %w", err)
	}
	holding.HoldingID = id
	if err := r.put(kindHolding, id, holding); err != nil {
		return model.Holding{}, fmt.Errorf("create holding: %w", err)
	}
	return holding, nil
}

// GetHolding loads a custody holding
func (r *txRecords) GetHolding(holdingID string) (model.Holding, error) {
	var holding model.Holding
	if err := r.get(kindHolding, holdingID, &holding); err != nil {
		return model.Holding{}, fmt.Errorf("get holding %s: %w", holdingID, notFound(err, marketerrors.ErrHoldingNotFound))
	}
	return holding, nil
}

// PutHolding overwrites an existing custody holding
func (r *txRecords) PutHolding(holding model.Holding) error {
	if err := r.put(kindHolding, holding.HoldingID, holding); err != nil {
		return fmt.Errorf("put holding %s: %w", holding.HoldingID, notFound(err, marketerrors.ErrHoldingNotFound))
	}
	return nil
}

func (r *txRecords) ClaimHoldingSlot(owner, mint common.Address) error {
	if err := r.tx.Claim(kindHoldingSlot, owner.Hex()+"-"+mint.Hex(), owner.Hex()); err != nil {
		return fmt.Errorf("claim holding slot: %w", exists(err, marketerrors.ErrHoldingExists))
	}
	return nil
}

func (r *txRecords) ClaimMintSupply(depositor, mint common.Address) error {
	if err := r.tx.Claim(kindMintSupply, mint.Hex(), depositor.Hex()); err != nil {
		return fmt.Errorf("claim mint supply: %w", exists(err, marketerrors.ErrAssetExists))
	}
	return nil
}

// ClaimNonce stores the nonce under its signer; a second use of the same
// nonce by the same signer fails with ErrReplayedRequest.
func (r *txRecords) ClaimNonce(used model.UsedNonce) error {
	id := used.Signer.Hex() + "-" + used.Nonce
	if err := r.tx.Claim(kindNonce, id, used.Signer.Hex()); err != nil {
		return fmt.Errorf("claim nonce: %w", exists(err, marketerrors.ErrReplayedRequest))
	}
	if err := r.put(kindNonce, id, used); err != nil {
		return fmt.Errorf("claim nonce: %w", err)
	}
	return nil
}

func (r *txRecords) get(kind, id string, v any) error {
	raw, err := r.tx.Load(kind, id)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (r *txRecords) put(kind, id string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.tx.Put(kind, id, raw)
}

// notFound translates store misses into the record-specific error
func notFound(err, target error) error {
	if errors.Is(err, store.ErrRecordNotFound) || errors.Is(err, store.ErrInvalidRecordID) {
		return fmt.Errorf("%w: %w", target, err)
	}
	return err
}

// exists translates claim collisions into the domain error
func exists(err, target error) error {
	if errors.Is(err, store.ErrRecordExists) {
		return fmt.Errorf("%w: %w", target, err)
	}
	return err
}
