package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
	"github.com/ahmadsal1998/omari-studio/internal/middleware"
)

// ledgerHandler handles the voucher write path and posting listing.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the ledger voucher, listing and
// statement routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, statementService portssvc.StatementSvcFacade) {
	h := newLedgerHandler(ledgerService)
	sh := newStatementHandler(statementService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/journal", h.postJournal)
		ledger.POST("/receipt", h.postReceipt)
		ledger.GET("/entries", h.listPostings)
		ledger.GET("/statement", sh.getStatement)
	}
}

// postJournal godoc
// @Summary Post a journal voucher
// @Description Records debt against a customer and raises the cached balance atomically.
// @Tags ledger
// @Accept json
// @Produce json
// @Param voucher body dto.CreateJournalVoucherRequest true "Voucher details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ledger/journal [post]
func (h *ledgerHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	posting, err := h.ledgerService.PostJournal(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post journal voucher")
		return
	}

	logger.Info("Journal voucher posted",
		slog.String("posting_id", posting.PostingID),
		slog.String("customer_id", req.CustomerID))
	c.JSON(http.StatusCreated, posting)
}

// postReceipt godoc
// @Summary Post a receipt voucher
// @Description Records a payment collected from a customer and lowers the cached balance atomically.
// @Tags ledger
// @Accept json
// @Produce json
// @Param voucher body dto.CreateReceiptVoucherRequest true "Voucher details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ledger/receipt [post]
func (h *ledgerHandler) postReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	posting, err := h.ledgerService.PostReceipt(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post receipt voucher")
		return
	}

	logger.Info("Receipt voucher posted",
		slog.String("posting_id", posting.PostingID),
		slog.String("customer_id", req.CustomerID))
	c.JSON(http.StatusCreated, posting)
}

// listPostings godoc
// @Summary List stored ledger postings
// @Description Returns stored postings only, newest first. Virtual statement rows are not included.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.ListPostingsResponse
// @Router /ledger/entries [get]
func (h *ledgerHandler) listPostings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPostingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListPostings(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}
