package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
	"github.com/SscSPs/tip_pooling_app/internal/middleware"
)

// cashOutHandler handles HTTP requests related to end-of-shift cash-out reports.
type cashOutHandler struct {
	cashOutService portssvc.CashOutSvcFacade
}

func newCashOutHandler(cs portssvc.CashOutSvcFacade) *cashOutHandler {
	return &cashOutHandler{cashOutService: cs}
}

// registerCashOutRoutes registers the cash-out routes of a company.
func registerCashOutRoutes(rg *gin.RouterGroup, cashOutService portssvc.CashOutSvcFacade) {
	h := newCashOutHandler(cashOutService)

	cashOuts := rg.Group("/cashouts")
	{
		cashOuts.POST("/preview", h.previewCashOut)
		cashOuts.POST("", h.submitCashOut)
		cashOuts.GET("/:report_id", h.getCashOut)
		cashOuts.PUT("/:report_id/adjustments", h.editManualAdjustments)
	}
}

// previewCashOut godoc
// @Summary Preview a cash-out
// @Description Evaluates a report against the current rule set without storing it
// @Tags cashouts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   report body dto.CashOutRequest true "Shift figures"
// @Success 200 {object} dto.CashOutResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Invalid rule configuration"
// @Failure 500 {object} map[string]string "Failed to evaluate cash-out"
// @Security BearerAuth
// @Router /companies/{company_id}/cashouts/preview [post]
func (h *cashOutHandler) previewCashOut(c *gin.Context) {
	companyID := c.Param("company_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CashOutRequest
	if !bindJSON(c, &req) {
		return
	}

	evaluation, err := h.cashOutService.PreviewCashOut(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to evaluate cash-out")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashOutResponse(evaluation))
}

// submitCashOut godoc
// @Summary Submit a cash-out
// @Description Evaluates and stores a report with its ledger. One report per reporter and service date.
// @Tags cashouts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   report body dto.CashOutRequest true "Shift figures"
// @Success 201 {object} dto.CashOutResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Report already filed"
// @Failure 422 {object} map[string]string "Invalid rule configuration"
// @Failure 500 {object} map[string]string "Failed to submit cash-out"
// @Security BearerAuth
// @Router /companies/{company_id}/cashouts [post]
func (h *cashOutHandler) submitCashOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CashOutRequest
	if !bindJSON(c, &req) {
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("reporter_id", req.ReporterID))
	logger.Info("Received cash-out submission", slog.String("service_date", req.ServiceDate))

	evaluation, err := h.cashOutService.SubmitCashOut(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to submit cash-out")
		return
	}

	logger.Info("Cash-out stored", slog.String("report_id", evaluation.Report.ReportID),
		slog.Int("lines", len(evaluation.Ledger)))
	c.JSON(http.StatusCreated, dto.ToCashOutResponse(evaluation))
}

// getCashOut godoc
// @Summary Get a cash-out
// @Description Returns a stored report with its ledger and due back
// @Tags cashouts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   report_id path string true "Report ID"
// @Success 200 {object} dto.CashOutResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Failed to retrieve cash-out"
// @Security BearerAuth
// @Router /companies/{company_id}/cashouts/{report_id} [get]
func (h *cashOutHandler) getCashOut(c *gin.Context) {
	companyID := c.Param("company_id")
	reportID := c.Param("report_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	evaluation, err := h.cashOutService.GetCashOut(c.Request.Context(), companyID, reportID, userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve cash-out")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashOutResponse(evaluation))
}

// editManualAdjustments godoc
// @Summary Replace manual adjustments
// @Description Replaces the MANUAL and SPLIT_PAYOUT lines of a stored report. Automatic lines are kept.
// @Tags cashouts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   report_id path string true "Report ID"
// @Param   adjustments body dto.EditManualAdjustmentsRequest true "New manual lines"
// @Success 200 {object} dto.CashOutResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Failed to edit adjustments"
// @Security BearerAuth
// @Router /companies/{company_id}/cashouts/{report_id}/adjustments [put]
func (h *cashOutHandler) editManualAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	reportID := c.Param("report_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.EditManualAdjustmentsRequest
	if !bindJSON(c, &req) {
		return
	}

	evaluation, err := h.cashOutService.EditManualAdjustments(c.Request.Context(), companyID, reportID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to edit adjustments")
		return
	}

	logger.Info("Manual adjustments replaced", slog.String("report_id", reportID),
		slog.Int("manual_lines", len(req.ManualAdjustments)))
	c.JSON(http.StatusOK, dto.ToCashOutResponse(evaluation))
}
