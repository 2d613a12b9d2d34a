package notification

import (
	"net/http"
	"reflect"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/repository/postgres/notification"
)

type Controller struct {
	notification Notification
}

func NewController(notification Notification) *Controller {
	return &Controller{notification}
}

func (uc Controller) GetMine(c *web.Context) error {
	var filter notification.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if unread, ok := c.GetQueryFunc(reflect.Bool, "unread_only").(*bool); ok {
		filter.UnreadOnly = unread
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, unreadCount, err := uc.notification.GetMine(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results":      list,
			"unread_count": unreadCount,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) MarkRead(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.notification.MarkRead(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) MarkAllRead(c *web.Context) error {
	if err := uc.notification.MarkAllRead(c.Ctx); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
