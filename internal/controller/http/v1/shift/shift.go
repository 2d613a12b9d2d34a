package shift

import (
	"net/http"
	"reflect"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/repository/postgres/shift"

	"github.com/pkg/errors"
)

type Controller struct {
	shift Shift
}

func NewController(shift Shift) *Controller {
	return &Controller{shift}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter shift.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if userID, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int); ok {
		filter.UserID = userID
	}
	if startDate, ok := c.GetQueryFunc(reflect.String, "start_date").(*string); ok && startDate != nil {
		parsed, err := time.Parse("2006-01-02", *startDate)
		if err != nil {
			return c.RespondError(web.NewRequestError(errors.New("start_date must be YYYY-MM-DD"), http.StatusBadRequest))
		}
		filter.StartDate = &parsed
	}
	if endDate, ok := c.GetQueryFunc(reflect.String, "end_date").(*string); ok && endDate != nil {
		parsed, err := time.Parse("2006-01-02", *endDate)
		if err != nil {
			return c.RespondError(web.NewRequestError(errors.New("end_date must be YYYY-MM-DD"), http.StatusBadRequest))
		}
		end := parsed.Add(24*time.Hour - time.Millisecond)
		filter.EndDate = &end
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.shift.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetUpcoming(c *web.Context) error {
	list, err := uc.shift.GetUpcoming(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request shift.CreateRequest
	if err := c.BindFunc(&request, "UserID", "StartTime", "EndTime"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.shift.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) BulkCreate(c *web.Context) error {
	var request shift.BulkCreateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	responses, err := uc.shift.BulkCreate(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": responses,
			"count":   len(responses),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request shift.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := uc.shift.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.shift.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
