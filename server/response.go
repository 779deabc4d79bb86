package server

import (
	"errors"
	"net/http"

	"go-ledger/bank"
	"go-ledger/logging"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func respondValidation(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// respondBankError maps bank errors onto HTTP statuses.
func respondBankError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bank.ErrLocked):
		respondError(c, http.StatusLocked, "Account is locked")
	case errors.Is(err, bank.ErrNumbersExhausted):
		respondError(c, http.StatusConflict, "No account numbers left")
	default:
		logging.FromContext(c.Request.Context()).Error("unhandled bank error", "error", err)
		respondError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
