package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
	"github.com/SscSPs/tip_pooling_app/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// poolHandler handles HTTP requests related to pay periods and department pools.
type poolHandler struct {
	poolService portssvc.PoolSvcFacade
}

func newPoolHandler(ps portssvc.PoolSvcFacade) *poolHandler {
	return &poolHandler{poolService: ps}
}

// registerPoolRoutes registers the pay-period and pool routes of a company.
func registerPoolRoutes(rg *gin.RouterGroup, poolService portssvc.PoolSvcFacade) {
	h := newPoolHandler(poolService)

	departments := rg.Group("/departments/:department_id")
	{
		departments.GET("/pay-period", h.summarizePayPeriod)
		departments.GET("/pools", h.listPools)
	}

	pools := rg.Group("/pools")
	{
		pools.POST("", h.createPool)
		pools.GET("/:pool_id", h.getPool)
		pools.GET("/:pool_id/export", h.exportPool)
	}
}

// summarizePayPeriod godoc
// @Summary Summarize a pay period
// @Description Totals the department-pool tip-outs routed to a department over an inclusive date range
// @Tags pools
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   department_id path string true "Department ID"
// @Param   start query string true "First service date (YYYY-MM-DD)"
// @Param   end query string true "Last service date (YYYY-MM-DD)"
// @Success 200 {object} dto.PayPeriodSummaryResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Department not found"
// @Failure 500 {object} map[string]string "Failed to summarize pay period"
// @Security BearerAuth
// @Router /companies/{company_id}/departments/{department_id}/pay-period [get]
func (h *poolHandler) summarizePayPeriod(c *gin.Context) {
	companyID := c.Param("company_id")
	departmentID := domain.DepartmentID(c.Param("department_id"))
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	start, err := parseQueryDate(c, "start")
	if err != nil {
		respondError(c, err, "")
		return
	}
	end, err := parseQueryDate(c, "end")
	if err != nil {
		respondError(c, err, "")
		return
	}

	summary, err := h.poolService.SummarizePayPeriod(c.Request.Context(), companyID, departmentID, start, end, userID)
	if err != nil {
		respondError(c, err, "Failed to summarize pay period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayPeriodSummaryResponse(summary))
}

// createPool godoc
// @Summary Create a pool
// @Description Splits a pay period's pooled tip-outs, or an explicit total, across recipients by hours worked. Requires manager access.
// @Tags pools
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   pool body dto.CreatePoolRequest true "Period and recipients"
// @Success 201 {object} dto.PoolResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Department not found"
// @Failure 409 {object} map[string]string "Pool already exists for the period"
// @Failure 422 {object} map[string]string "Pool cannot be allocated"
// @Failure 500 {object} map[string]string "Failed to create pool"
// @Security BearerAuth
// @Router /companies/{company_id}/pools [post]
func (h *poolHandler) createPool(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePoolRequest
	if !bindJSON(c, &req) {
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("department_id", req.DepartmentID))
	logger.Info("Received request to create pool", slog.String("start", req.StartDate), slog.String("end", req.EndDate))

	pool, err := h.poolService.CreatePool(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create pool")
		return
	}

	logger.Info("Pool created successfully", slog.String("pool_id", pool.PoolID),
		slog.String("total_amount", pool.TotalAmount.String()))
	c.JSON(http.StatusCreated, dto.ToPoolResponse(pool))
}

// getPool godoc
// @Summary Get a pool
// @Description Returns a pool with its distributions
// @Tags pools
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   pool_id path string true "Pool ID"
// @Success 200 {object} dto.PoolResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Pool not found"
// @Failure 500 {object} map[string]string "Failed to retrieve pool"
// @Security BearerAuth
// @Router /companies/{company_id}/pools/{pool_id} [get]
func (h *poolHandler) getPool(c *gin.Context) {
	companyID := c.Param("company_id")
	poolID := c.Param("pool_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pool, err := h.poolService.GetPool(c.Request.Context(), companyID, poolID, userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve pool")
		return
	}
	c.JSON(http.StatusOK, dto.ToPoolResponse(pool))
}

// listPools godoc
// @Summary List pools of a department
// @Description Lists pools most recent period first, without distributions
// @Tags pools
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   department_id path string true "Department ID"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPoolsResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list pools"
// @Security BearerAuth
// @Router /companies/{company_id}/departments/{department_id}/pools [get]
func (h *poolHandler) listPools(c *gin.Context) {
	companyID := c.Param("company_id")
	departmentID := domain.DepartmentID(c.Param("department_id"))
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListPoolsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.poolService.ListPools(c.Request.Context(), companyID, departmentID, userID, params)
	if err != nil {
		respondError(c, err, "Failed to list pools")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// exportPool godoc
// @Summary Export a pool
// @Description Downloads a pool distribution as an XLSX workbook
// @Tags pools
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   company_id path string true "Company ID"
// @Param   pool_id path string true "Pool ID"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Pool not found"
// @Failure 500 {object} map[string]string "Failed to export pool"
// @Security BearerAuth
// @Router /companies/{company_id}/pools/{pool_id}/export [get]
func (h *poolHandler) exportPool(c *gin.Context) {
	companyID := c.Param("company_id")
	poolID := c.Param("pool_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workbook, fileName, err := h.poolService.ExportPool(c.Request.Context(), companyID, poolID, userID)
	if err != nil {
		respondError(c, err, "Failed to export pool")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

func parseQueryDate(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: query parameter %s is required", apperrors.ErrDateRangeInvalid, name)
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", apperrors.ErrDateRangeInvalid, name)
	}
	return t, nil
}
