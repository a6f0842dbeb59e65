package handler

import (
	"net/http"

	"nft-marketplace/internal/auth"
	model "nft-marketplace/internal/models"
	"nft-marketplace/services/market/helpers"
	"nft-marketplace/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=lending_handler.go -destination=mock_lending_handler.go -package=handler

type LendingServiceInterface interface {
	LendNFT(caller, mint common.Address, loanAmount uint64) (model.Lending, error)
	BorrowNFT(caller common.Address, lendingID string, collateral uint64) (model.Lending, error)
	GetLending(lendingID string) (model.Lending, error)
}

type LendingHandler struct {
	service LendingServiceInterface
}

func NewLendingHandler(service LendingServiceInterface) *LendingHandler {
	return &LendingHandler{service: service}
}

// LendNFTHandler handles POST /lendings
func (h *LendingHandler) LendNFTHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "LendNFTHandler")
	if !ok {
		return
	}

	var req helpers.LendNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LendNFTHandler", err)
		return
	}
	mint, err := auth.ParseIdentity(req.NFTMint)
	if err != nil {
		helpers.WriteServiceError(c, "LendNFTHandler", err, map[string]any{"nft_mint": req.NFTMint})
		return
	}

	lending, err := h.service.LendNFT(caller, mint, req.LoanAmount)
	if err != nil {
		helpers.WriteServiceError(c, "LendNFTHandler", err, map[string]any{"lender": caller.Hex()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewLendingResponse(lending), "lending created successfully")
	helpers.LogSuccess("LendNFTHandler", "lending created successfully", map[string]any{
		"lending_id":  lending.LendingID,
		"lender":      caller.Hex(),
		"loan_amount": lending.LoanAmount,
	})
}

// GetLendingHandler handles GET /lendings/:lending_id
func (h *LendingHandler) GetLendingHandler(c *gin.Context) {
	lendingID := c.Param("lending_id")
	lending, err := h.service.GetLending(lendingID)
	if err != nil {
		helpers.WriteServiceError(c, "GetLendingHandler", err, map[string]any{"lending_id": lendingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewLendingResponse(lending), "lending retrieved successfully")
}

// BorrowNFTHandler handles POST /lendings/:lending_id/borrow
func (h *LendingHandler) BorrowNFTHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "BorrowNFTHandler")
	if !ok {
		return
	}

	var req helpers.BorrowNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BorrowNFTHandler", err)
		return
	}

	lendingID := c.Param("lending_id")
	lending, err := h.service.BorrowNFT(caller, lendingID, req.CollateralAmount)
	if err != nil {
		helpers.WriteServiceError(c, "BorrowNFTHandler", err, map[string]any{
			"lending_id": lendingID,
			"borrower":   caller.Hex(),
			"collateral": req.CollateralAmount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewLendingResponse(lending), "nft borrowed successfully")
	helpers.LogSuccess("BorrowNFTHandler", "nft borrowed successfully", map[string]any{
		"lending_id": lendingID,
		"borrower":   caller.Hex(),
	})
}
