package apiv1

import (
	"peso-backend/controllers"
	"peso-backend/lib/notify"
	"peso-backend/middleware"
	apimodels "peso-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary Notification list
// @Tags Notifications
// @Description In-app notifications of the current user, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   unread_only  		query   bool    false   "unread only"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Notification}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	unreadOnly := ctx.QueryBool("unread_only")
	list, err := notify.Instance.ListByUser(userID, unreadOnly)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Mark notification read
// @Tags Notifications
// @Description Mark one notification of the current user as read
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/notifications/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = notify.Instance.MarkRead(userID, id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
