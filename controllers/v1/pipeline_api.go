package apiv1

import (
	"fmt"
	"time"

	"peso-backend/controllers"
	"peso-backend/db"
	"peso-backend/lib/analytics"
	applicationstore "peso-backend/lib/applications/store"
	xlsexport "peso-backend/lib/export/xls"
	"peso-backend/middleware"
	apimodels "peso-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type pipelineApiController struct {
	controllers.BaseAPIController
	applicationStore applicationstore.Provider
}

func InitPipelineApiRouters(app *fiber.App) {
	controller := pipelineApiController{
		applicationStore: applicationstore.NewInstance(db.DB),
	}
	app.Route("pipeline", func(router fiber.Router) {
		router.Get("summary", controller.summary)
		router.Get("report/xls", controller.reportXls)
	})
}

// @Summary Pipeline summary
// @Tags Pipeline
// @Description Application counts per stage for the company funnel chart
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.StageCount}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/pipeline/summary [get]
func (c *pipelineApiController) summary(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	list, err := analytics.Instance.PipelineSummary(companyID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Pipeline report
// @Tags Pipeline
// @Description XLSX export of the company's applications with stage and status
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/pipeline/report/xls [get]
func (c *pipelineApiController) reportXls(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	list, err := c.applicationStore.ListByCompany(companyID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := xlsexport.Instance.ExportPipelineReport(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("pipeline_%v.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
