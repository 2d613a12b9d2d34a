package clock

import (
	"net/http"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/repository/postgres/timeentry"
	"timeclock/backend/internal/service"

	"github.com/pkg/errors"
)

var errKioskTablet = errors.New("tablet_id is required")

type Controller struct {
	timeEntry TimeEntry
	baseURL   string
}

func NewController(timeEntry TimeEntry, baseURL string) *Controller {
	return &Controller{timeEntry: timeEntry, baseURL: baseURL}
}

func (uc Controller) ClockIn(c *web.Context) error {
	var request timeentry.ClockInRequest
	if err := c.BindFunc(&request, "Pin", "TabletID"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.timeEntry.ClockIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ClockOut(c *web.Context) error {
	var request timeentry.ClockOutRequest
	if err := c.BindFunc(&request, "Pin"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.timeEntry.ClockOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) CreateManualEntry(c *web.Context) error {
	var request timeentry.ManualEntryRequest
	if err := c.BindFunc(&request, "UserID", "ShiftID", "ClockInTime", "ClockOutTime"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.timeEntry.ManualEntry(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetLiveClockedIn(c *web.Context) error {
	list, err := uc.timeEntry.GetLiveClockedIn(c.Ctx)
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

func (uc Controller) GetMyWeek(c *web.Context) error {
	response, err := uc.timeEntry.MyWeek(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetMyPayPeriod(c *web.Context) error {
	response, err := uc.timeEntry.MyPayPeriod(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// GetKioskQR streams a PNG QR code that opens the kiosk page for a tablet.
func (uc Controller) GetKioskQR(c *web.Context) error {
	tabletID := c.Query("tablet_id")
	if tabletID == "" {
		return c.RespondError(web.NewRequestError(errKioskTablet, http.StatusBadRequest))
	}

	fileName, err := service.KioskQR(uc.baseURL, tabletID, "media")
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "image/png")
	c.File(fileName)
	return nil
}
