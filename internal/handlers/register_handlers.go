package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	portssvc "github.com/moneytrack/money_tracker_app/internal/core/ports/services"
	"github.com/moneytrack/money_tracker_app/pkg/config"
)

// RegisterHandlers wires every route under the /api prefix.
func RegisterHandlers(
	r *gin.Engine,
	cfg *config.Config,
	accountService portssvc.AccountSvcFacade,
	ledgerService portssvc.LedgerSvcFacade,
	summaryService portssvc.SummaryService,
	reportingService portssvc.ReportingService,
) {
	registerValidations()

	api := r.Group("/api")
	registerAccountRoutes(api, accountService)
	registerTransactionRoutes(api, ledgerService)
	registerReportingRoutes(api, summaryService, reportingService, cfg.ChartDefaultDays)
}

// registerValidations adds the custom binding validators used by the DTOs.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// decimalgtzero: strictly positive decimal.Decimal. "required" cannot
	// express this because a decimal zero is that type's zero value.
	_ = v.RegisterValidation("decimalgtzero", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})
}
