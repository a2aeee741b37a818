package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"branchboard/pkg/response"
)

// Optimize godoc
// @Summary     Build a new schedule
// @Description Orders, packs and validates the active tasks of the current branch and stores the result.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body optimizeReq false "Scheduling method"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/optimize [POST]
func (h *handler) Optimize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOptimizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Optimize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Optimize: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(out))
}

// Reschedule godoc
// @Summary     Reschedule a task
// @Description Re-plans a task and its direct dependents after it changed.
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} scheduleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/tasks/{id}/reschedule [POST]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	out, err := h.uc.Reschedule(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reschedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(out))
}

// Current godoc
// @Summary     Current schedule
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} scheduleResp
// @Failure     404 {object} response.Resp "No schedule yet"
// @Router      /api/v1/schedule [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CurrentSchedule(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(out))
}

// Daily godoc
// @Summary     Schedule of one day
// @Description Accepts an ISO date (2024-05-07) or a relative expression (today, tomorrow, in 3 days).
// @Tags        Schedule
// @Produce     json
// @Param       date query string false "Day to show (default: today)"
// @Success     200 {array}  entryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No schedule yet"
// @Router      /api/v1/schedule/daily [GET]
func (h *handler) Daily(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDailyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	entries, err := h.uc.DailySchedule(ctx, date)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEntryListResp(entries))
}

// Workload godoc
// @Summary     Workload per day
// @Tags        Schedule
// @Produce     json
// @Success     200 {array}  dayLoadResp
// @Failure     404 {object} response.Resp "No schedule yet"
// @Router      /api/v1/schedule/workload [GET]
func (h *handler) Workload(c *gin.Context) {
	ctx := c.Request.Context()

	days, err := h.uc.Workload(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newWorkloadResp(days))
}

// Pending godoc
// @Summary     Tasks needing a reschedule
// @Description Pending tasks without a slot and unfinished tasks whose slot is in the past.
// @Tags        Schedule
// @Produce     json
// @Success     200 {array}  taskResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/pending [GET]
func (h *handler) Pending(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.TasksNeedingReschedule(ctx, time.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.TasksNeedingReschedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// GetCalendar godoc
// @Summary     Work calendar settings
// @Tags        Settings
// @Produce     json
// @Success     200 {object} calendarResp
// @Router      /api/v1/settings/calendar [GET]
func (h *handler) GetCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	cal, err := h.uc.Settings(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Settings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCalendarResp(cal))
}

// UpdateCalendar godoc
// @Summary     Update work calendar settings
// @Description Zero values are replaced by the configured defaults.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body calendarReq true "Calendar"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings/calendar [PUT]
func (h *handler) UpdateCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cal, err := h.uc.UpdateSettings(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCalendarResp(cal))
}

// ListTasks godoc
// @Summary     List tasks
// @Tags        Tasks
// @Produce     json
// @Success     200 {array}  taskResp
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.ListTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// UpsertTask godoc
// @Summary     Create or replace a task
// @Description Omit id to create. deadline accepts RFC3339, an ISO date or a relative expression.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body upsertTaskReq true "Task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) UpsertTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpsertTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.UpsertTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpsertTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(t))
}

// SetBranch godoc
// @Summary     Mark a branch node as current
// @Tags        Branches
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Branch node ID"
// @Param       body body branchReq true "Current flag"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/branches/{id} [PUT]
func (h *handler) SetBranch(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processBranchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetCurrentBranch(ctx, id, req.Current); err != nil {
		h.l.Errorf(ctx, "uc.SetCurrentBranch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
