package apiv1

import (
	"peso-backend/controllers"
	"peso-backend/lib/applications"
	actionlogstore "peso-backend/lib/pipeline/action-log/store"
	"peso-backend/lib/pipeline/executor"
	"peso-backend/lib/pipeline/resolver"
	stagelogstore "peso-backend/lib/pipeline/stage-log/store"
	"peso-backend/middleware"
	apimodels "peso-backend/models/api"
	applicationapimodels "peso-backend/models/api/application"
	pipelineapimodels "peso-backend/models/api/pipeline"

	"peso-backend/db"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
	stageLogStore  stagelogstore.Provider
	actionLogStore actionlogstore.Provider
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{
		stageLogStore:  stagelogstore.NewInstance(db.DB),
		actionLogStore: actionlogstore.NewInstance(db.DB),
	}
	app.Route("applications", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("actions", controller.resolveActions)
			idRoute.Post("actions", controller.executeAction)
			idRoute.Get("stage_log", controller.stageLog)
			idRoute.Get("action_log", controller.actionLog)
		})
	})
}

// @Summary Submit application
// @Tags Applications
// @Description Create a job application at the "applied" stage
// @Param	body body	 applicationapimodels.CreateData	true	"application data"
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applications [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.CreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applications.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get application
// @Tags Applications
// @Description Get application by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applications.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Available actions
// @Tags Pipeline
// @Description Ordered list of actions available for the application's current stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.ActionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applications/{id}/actions [get]
func (c *applicationApiController) resolveActions(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := resolver.Instance.Resolve(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Execute action
// @Tags Pipeline
// @Description Execute a chosen pipeline action (transition, side-effect action or noop)
// @Param	body body	 pipelineapimodels.ActionRequest	true	"chosen action"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.ExecuteResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applications/{id}/actions [post]
func (c *applicationApiController) executeAction(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.ActionRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actorID := middleware.GetUserID(ctx)
	result, err := executor.Instance.Execute(ctx.UserContext(), actorID, payload, id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(pipelineapimodels.ExecuteResult{Result: result}))
}

// @Summary Stage log
// @Tags Pipeline
// @Description Chronological stage chain of the application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.StageLogView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applications/{id}/stage_log [get]
func (c *applicationApiController) stageLog(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := c.stageLogStore.ListByApplication(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	result := make([]pipelineapimodels.StageLogView, 0, len(list))
	for _, rec := range list {
		result = append(result, pipelineapimodels.StageLogConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Action log
// @Tags Pipeline
// @Description Recorded non-transition actions of the application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.ActionLogView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applications/{id}/action_log [get]
func (c *applicationApiController) actionLog(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := c.actionLogStore.ListByApplication(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	result := make([]pipelineapimodels.ActionLogView, 0, len(list))
	for _, rec := range list {
		result = append(result, pipelineapimodels.ActionLogConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
