package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
	"github.com/ahmadsal1998/omari-studio/internal/middleware"
)

const statementDateLayout = "2006-01-02"

// statementHandler handles the account statement read path.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: ss}
}

// getStatement godoc
// @Summary Get an account statement
// @Description Merges stored postings with booking invoices (customers) or credit purchases (suppliers) into one running-balance statement. The `to` date is inclusive.
// @Tags ledger
// @Produce json
// @Param entityKind query string true "customer or supplier"
// @Param entityID query string true "Entity ID"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end, inclusive (YYYY-MM-DD)"
// @Param type query string false "Row type filter"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string
// @Router /ledger/statement [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, err := parseStatementDate(params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseStatementDate(params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if to != nil {
		// Widen to the last instant of the day so rows stamped during
		// the `to` date survive the inclusive cut.
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	statement, err := h.statementService.GetStatement(c.Request.Context(), params.EntityKind, params.EntityID, from, to, params.Type)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

func parseStatementDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(statementDateLayout, value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return &t, nil
}
