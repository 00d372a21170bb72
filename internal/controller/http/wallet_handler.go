package http

import (
	"net/http"

	"geodrop/internal/usecase"
	"geodrop/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        *logger.Logger
}

func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// GetBalance godoc
// @Summary      Get credit balance
// @Description  Return the authenticated user's current credit balance
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := c.GetString("user_id")

	balance, err := h.walletUseCase.GetBalance(userID)
	if err != nil {
		h.logger.Error("Failed to get balance: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

type TopUpRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

// TopUp godoc
// @Summary      Top up credits
// @Description  Add credits to the authenticated user's balance
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TopUpRequest true "Top-up amount"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /wallet/topup [post]
func (h *WalletHandler) TopUp(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.walletUseCase.TopUp(userID, req.Amount)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// GetTransactions godoc
// @Summary      List credit transactions
// @Description  Get the authenticated user's credit transaction history, newest first
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of transactions to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /wallet/transactions [get]
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := pagination(c)

	transactions, err := h.walletUseCase.GetTransactions(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to get transactions: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "count": len(transactions), "offset": offset})
}
