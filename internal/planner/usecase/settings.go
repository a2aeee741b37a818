package usecase

import (
	"context"
	"fmt"
	"strconv"

	"branchboard/internal/model"
)

// Settings keys in the settings store.
const (
	keyWorkHoursPerDay = "work_hours_per_day"
	keyWorkDaysPerWeek = "work_days_per_week"
	keyStartOfDay      = "start_of_day"
	keyEndOfDay        = "end_of_day"
	keyExcludeWeekends = "exclude_weekends"
	keyBreakDuration   = "break_duration"
	keyTimezone        = "timezone"
)

// Settings returns the stored work calendar, with configured defaults for missing keys.
func (uc *implUseCase) Settings(ctx context.Context) (model.WorkCalendar, error) {
	cal := uc.defaults

	load := func(key string, apply func(string) error) error {
		v, ok, err := uc.repo.GetSetting(ctx, key)
		if err != nil {
			return err
		}
		if !ok || v == "" {
			return nil
		}
		if err := apply(v); err != nil {
			uc.l.Warnf(ctx, "uc.Settings: ignoring stored %s=%q: %v", key, v, err)
		}
		return nil
	}

	steps := []struct {
		key   string
		apply func(string) error
	}{
		{keyWorkHoursPerDay, func(v string) error { return setFloat(&cal.WorkHoursPerDay, v) }},
		{keyWorkDaysPerWeek, func(v string) error { return setInt(&cal.WorkDaysPerWeek, v) }},
		{keyStartOfDay, func(v string) error { cal.StartOfDay = v; return nil }},
		{keyEndOfDay, func(v string) error { cal.EndOfDay = v; return nil }},
		{keyExcludeWeekends, func(v string) error { return setBool(&cal.ExcludeWeekends, v) }},
		{keyBreakDuration, func(v string) error { return setFloat(&cal.BreakDuration, v) }},
		{keyTimezone, func(v string) error { cal.Timezone = v; return nil }},
	}
	for _, s := range steps {
		if err := load(s.key, s.apply); err != nil {
			uc.l.Errorf(ctx, "uc.Settings load %s: %v", s.key, err)
			return model.WorkCalendar{}, err
		}
	}

	if err := cal.Validate(); err != nil {
		uc.l.Warnf(ctx, "uc.Settings: stored calendar invalid (%v), using defaults", err)
		return uc.defaults, nil
	}
	return cal, nil
}

// UpdateSettings validates and stores cal. The cached schedule is dropped.
func (uc *implUseCase) UpdateSettings(ctx context.Context, cal model.WorkCalendar) (model.WorkCalendar, error) {
	cal = cal.WithDefaults()
	if err := cal.Validate(); err != nil {
		return model.WorkCalendar{}, err
	}

	values := map[string]string{
		keyWorkHoursPerDay: strconv.FormatFloat(cal.WorkHoursPerDay, 'f', -1, 64),
		keyWorkDaysPerWeek: strconv.Itoa(cal.WorkDaysPerWeek),
		keyStartOfDay:      cal.StartOfDay,
		keyEndOfDay:        cal.EndOfDay,
		keyExcludeWeekends: strconv.FormatBool(cal.ExcludeWeekends),
		keyBreakDuration:   strconv.FormatFloat(cal.BreakDuration, 'f', -1, 64),
		keyTimezone:        cal.Timezone,
	}
	for k, v := range values {
		if err := uc.repo.SetSetting(ctx, k, v); err != nil {
			uc.l.Errorf(ctx, "uc.UpdateSettings set %s: %v", k, err)
			return model.WorkCalendar{}, fmt.Errorf("save setting %s: %w", k, err)
		}
	}

	uc.cache.Purge()
	return cal, nil
}

func setFloat(dst *float64, v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func setBool(dst *bool, v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
