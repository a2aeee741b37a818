package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handler) processOptimizeReq(c *gin.Context) (optimizeReq, error) {
	var req optimizeReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDailyReq resolves ?date= as an ISO date or a relative expression like "tomorrow".
func (h *handler) processDailyReq(c *gin.Context) (time.Time, error) {
	var req dailyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, err
	}
	date, err := h.parser.ParseDate(req.Date, time.Now())
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}

func (h *handler) processUpsertTaskReq(c *gin.Context) (upsertTaskReq, error) {
	var req upsertTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	dl := strings.TrimSpace(req.Deadline)
	if dl == "" {
		return req, nil
	}
	if t, err := time.Parse(time.RFC3339, dl); err == nil {
		req.deadline = &t
		return req, nil
	}
	day, err := h.parser.ParseDate(dl, time.Now())
	if err != nil {
		return req, errInvalidDeadline
	}
	end := h.parser.EndOfDay(day)
	req.deadline = &end
	return req, nil
}

func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processBranchReq(c *gin.Context) (string, branchReq, error) {
	var req branchReq
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", req, errMissingID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, err
	}
	return id, req, nil
}
