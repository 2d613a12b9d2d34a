package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"reflect"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/repository/postgres/report"
	"timeclock/backend/internal/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const dashboardCacheKey = "dashboard:stats"
const dashboardCacheTTL = 30 * time.Second

type Controller struct {
	report  Report
	redisDB *redis.Client
}

func NewController(report Report, redisDB *redis.Client) *Controller {
	return &Controller{report: report, redisDB: redisDB}
}

func (uc Controller) rangeFilter(c *web.Context) (report.RangeFilter, error) {
	var filter report.RangeFilter

	if startDate, ok := c.GetQueryFunc(reflect.String, "start_date").(*string); ok && startDate != nil {
		parsed, err := time.Parse("2006-01-02", *startDate)
		if err != nil {
			return filter, web.NewRequestError(errors.New("start_date must be YYYY-MM-DD"), http.StatusBadRequest)
		}
		filter.StartDate = &parsed
	}
	if endDate, ok := c.GetQueryFunc(reflect.String, "end_date").(*string); ok && endDate != nil {
		parsed, err := time.Parse("2006-01-02", *endDate)
		if err != nil {
			return filter, web.NewRequestError(errors.New("end_date must be YYYY-MM-DD"), http.StatusBadRequest)
		}
		end := parsed.Add(24*time.Hour - time.Millisecond)
		filter.EndDate = &end
	}
	if rate, ok := c.GetQueryFunc(reflect.Float64, "hourly_rate").(*float64); ok {
		filter.HourlyRate = rate
	}
	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if err := c.ValidQuery(); err != nil {
		return filter, err
	}

	return filter, nil
}

func (uc Controller) GetWeeklyHours(c *web.Context) error {
	filter, err := uc.rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.report.WeeklyHours(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetLaborCost(c *web.Context) error {
	filter, err := uc.rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.report.LaborCost(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// ExportLaborCost streams the labor cost report as an xlsx download.
func (uc Controller) ExportLaborCost(c *web.Context) error {
	filter, err := uc.rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.report.LaborCost(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("media/labor_cost_%d.xlsx", time.Now().Unix())
	if err := service.LaborCostExcel(response, fileName); err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"labor_cost.xlsx\"")
	c.File(fileName)
	return nil
}

func (uc Controller) GetEmployeeHistory(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	filter, err := uc.rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.report.EmployeeHistory(c.Ctx, id, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// ExportTimesheet streams one employee's history as a PDF download.
func (uc Controller) ExportTimesheet(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	filter, err := uc.rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.report.EmployeeHistory(c.Ctx, id, filter)
	if err != nil {
		return c.RespondError(err)
	}

	fileName, err := service.TimesheetPDF(response, "media")
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\""+filepath.Base(fileName)+"\"")
	c.File(fileName)
	return nil
}

// GetDashboardStats serves the dashboard counters, caching them in redis for
// a short window so a wall of manager dashboards does not hammer postgres.
func (uc Controller) GetDashboardStats(c *web.Context) error {
	if cached, err := uc.redisDB.Get(c.Ctx, dashboardCacheKey).Result(); err == nil {
		var stats report.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return c.Respond(map[string]interface{}{
				"data":   stats,
				"status": true,
			}, http.StatusOK)
		}
	}

	stats, err := uc.report.DashboardStats(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if payload, err := json.Marshal(stats); err == nil {
		uc.redisDB.Set(c.Ctx, dashboardCacheKey, payload, dashboardCacheTTL)
	}

	return c.Respond(map[string]interface{}{
		"data":   stats,
		"status": true,
	}, http.StatusOK)
}
