package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// PutEvent creates the event for req.TaskID, or updates it when one already exists.
func (c *Client) PutEvent(ctx context.Context, req PutEventRequest) (Event, error) {
	if req.TaskID == "" {
		return Event{}, errors.New("gcalendar: task id is required")
	}

	existing, err := c.findEventID(ctx, req.TaskID)
	if err != nil {
		return Event{}, err
	}

	ev := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{DateTime: req.StartTime.Format(time.RFC3339), TimeZone: req.Timezone},
		End:         &calendar.EventDateTime{DateTime: req.EndTime.Format(time.RFC3339), TimeZone: req.Timezone},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{TaskIDProperty: req.TaskID},
		},
	}

	var saved *calendar.Event
	if existing != "" {
		saved, err = c.service.Events.Update(c.calendarID, existing, ev).Context(ctx).Do()
	} else {
		saved, err = c.service.Events.Insert(c.calendarID, ev).Context(ctx).Do()
	}
	if err != nil {
		return Event{}, fmt.Errorf("failed to put calendar event for task %s: %w", req.TaskID, err)
	}

	out := toEvent(saved)
	out.TaskID = req.TaskID
	out.StartTime, out.EndTime = req.StartTime, req.EndTime
	return out, nil
}

// ListEvents returns task events in the requested window, ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(c.calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		ev := toEvent(item)
		if ev.TaskID == "" {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// DeleteEvent removes the event of taskID. A missing event is not an error.
func (c *Client) DeleteEvent(ctx context.Context, taskID string) error {
	id, err := c.findEventID(ctx, taskID)
	if err != nil || id == "" {
		return err
	}
	err = c.service.Events.Delete(c.calendarID, id).Context(ctx).Do()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete calendar event for task %s: %w", taskID, err)
	}
	return nil
}

func (c *Client) findEventID(ctx context.Context, taskID string) (string, error) {
	res, err := c.service.Events.List(c.calendarID).
		PrivateExtendedProperty(TaskIDProperty + "=" + taskID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up calendar event for task %s: %w", taskID, err)
	}
	if len(res.Items) == 0 {
		return "", nil
	}
	return res.Items[0].Id, nil
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:       item.Id,
		Summary:  item.Summary,
		HtmlLink: item.HtmlLink,
	}
	if item.ExtendedProperties != nil {
		ev.TaskID = item.ExtendedProperties.Private[TaskIDProperty]
	}
	ev.StartTime = parseEventTime(item.Start)
	ev.EndTime = parseEventTime(item.End)
	return ev
}

func parseEventTime(dt *calendar.EventDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if dt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
			return t
		}
	}
	if dt.Date != "" {
		if t, err := time.Parse("2006-01-02", dt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
