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

//go:generate mockgen -source=holding_handler.go -destination=mock_holding_handler.go -package=handler

type HoldingServiceInterface interface {
	OpenHolding(caller, mint common.Address, amount uint64) (model.Holding, error)
	GetHolding(holdingID string) (model.Holding, error)
}

type HoldingHandler struct {
	service HoldingServiceInterface
}

func NewHoldingHandler(service HoldingServiceInterface) *HoldingHandler {
	return &HoldingHandler{service: service}
}

// OpenHoldingHandler handles POST /holdings
func (h *HoldingHandler) OpenHoldingHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "OpenHoldingHandler")
	if !ok {
		return
	}

	var req helpers.OpenHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OpenHoldingHandler", err)
		return
	}
	mint, err := auth.ParseIdentity(req.NFTMint)
	if err != nil {
		helpers.WriteServiceError(c, "OpenHoldingHandler", err, map[string]any{"nft_mint": req.NFTMint})
		return
	}

	holding, err := h.service.OpenHolding(caller, mint, req.Amount)
	if err != nil {
		helpers.WriteServiceError(c, "OpenHoldingHandler", err, map[string]any{"owner": caller.Hex()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewHoldingResponse(holding), "holding opened successfully")
}

// GetHoldingHandler handles GET /holdings/:holding_id
func (h *HoldingHandler) GetHoldingHandler(c *gin.Context) {
	holdingID := c.Param("holding_id")
	holding, err := h.service.GetHolding(holdingID)
	if err != nil {
		helpers.WriteServiceError(c, "GetHoldingHandler", err, map[string]any{"holding_id": holdingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewHoldingResponse(holding), "holding retrieved successfully")
}
