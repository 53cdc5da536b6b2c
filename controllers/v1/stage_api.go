package apiv1

import (
	"peso-backend/controllers"
	stagecatalog "peso-backend/lib/pipeline/stage-catalog"
	"peso-backend/middleware"
	apimodels "peso-backend/models/api"
	pipelineapimodels "peso-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
)

type stageApiController struct {
	controllers.BaseAPIController
}

func InitStageApiRouters(app *fiber.App) {
	controller := stageApiController{}
	app.Route("stages", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Patch("reorder", middleware.CompanyRequired(), controller.reorder)
		router.Put(":id", middleware.CompanyRequired(), controller.update)
	})
}

// @Summary Stage list
// @Tags Stages
// @Description Company pipeline stages including inactive ones; the company's
// @Description private set is provisioned from the defaults on first use
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.StageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/stages [get]
func (c *stageApiController) list(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	var scope *string
	if companyID != "" {
		if err := stagecatalog.Instance.EnsureProvisioned(ctx.UserContext(), companyID); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		scope = &companyID
	}
	list, err := stagecatalog.Instance.AllStagesFor(scope)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	result := make([]pipelineapimodels.StageView, 0, len(list))
	for _, rec := range list {
		result = append(result, pipelineapimodels.StageConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Update stage
// @Tags Stages
// @Description Rename or toggle a stage of the company pipeline
// @Param	body body	 pipelineapimodels.StageUpdateData	true	"stage changes"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/stages/{id} [put]
func (c *stageApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.StageUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err = stagecatalog.Instance.UpdateStage(companyID, id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reorder stages
// @Tags Stages
// @Description Rewrite the stage order of the company pipeline
// @Param	body body	 pipelineapimodels.StageReorderData	true	"slug list in new order"
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/stages/reorder [patch]
func (c *stageApiController) reorder(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.StageReorderData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := stagecatalog.Instance.Reorder(companyID, payload.Slugs); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
