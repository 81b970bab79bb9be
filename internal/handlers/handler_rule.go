package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
	"github.com/SscSPs/tip_pooling_app/internal/middleware"
)

// ruleHandler handles HTTP requests related to tip-out rules.
type ruleHandler struct {
	ruleService portssvc.RuleSvcFacade
}

func newRuleHandler(rs portssvc.RuleSvcFacade) *ruleHandler {
	return &ruleHandler{ruleService: rs}
}

// registerRuleRoutes registers the rule routes of a company.
func registerRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.RuleSvcFacade) {
	h := newRuleHandler(ruleService)

	rules := rg.Group("/rules")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
		rules.DELETE("/:rule_id", h.deleteRule)
	}
}

// createRule godoc
// @Summary Create a tip-out rule
// @Description Adds a rule to the company rule set. Requires manager access.
// @Tags rules
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   rule body dto.CreateRuleRequest true "Rule definition"
// @Success 201 {object} dto.RuleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Invalid rule configuration"
// @Failure 500 {object} map[string]string "Failed to create rule"
// @Security BearerAuth
// @Router /companies/{company_id}/rules [post]
func (h *ruleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("user_id", userID))
	logger.Info("Received request to create rule", slog.String("rule_name", req.Name))

	rule, err := h.ruleService.CreateRule(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create rule")
		return
	}

	logger.Info("Rule created successfully", slog.String("rule_id", string(rule.RuleID)))
	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

// listRules godoc
// @Summary List tip-out rules
// @Description Lists the active rules of the company in evaluation order
// @Tags rules
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.ListRulesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list rules"
// @Security BearerAuth
// @Router /companies/{company_id}/rules [get]
func (h *ruleHandler) listRules(c *gin.Context) {
	companyID := c.Param("company_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rules, err := h.ruleService.ListRules(c.Request.Context(), companyID, userID)
	if err != nil {
		respondError(c, err, "Failed to list rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRulesResponse(rules))
}

// deleteRule godoc
// @Summary Deactivate a tip-out rule
// @Description Removes a rule from future evaluations. Stored ledgers keep their lines.
// @Tags rules
// @Param   company_id path string true "Company ID"
// @Param   rule_id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to delete rule"
// @Security BearerAuth
// @Router /companies/{company_id}/rules/{rule_id} [delete]
func (h *ruleHandler) deleteRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	ruleID := domain.RuleID(c.Param("rule_id"))

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.ruleService.DeleteRule(c.Request.Context(), companyID, ruleID, userID); err != nil {
		respondError(c, err, "Failed to delete rule")
		return
	}

	logger.Info("Rule deactivated", slog.String("rule_id", string(ruleID)), slog.String("user_id", userID))
	c.Status(http.StatusNoContent)
}
