package icalrecur

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pnreddysvu/google-rfc-2445/rrule"
	"github.com/pnreddysvu/google-rfc-2445/rrule/parse"
)

// Engine provides range-query and expansion operations over
// RecurrenceInfo, backed by the rrule engine instead of an opaque
// third-party expansion library.
type Engine struct {
	cache  *RecurrenceCache
	config EngineConfig
	logger *slog.Logger
}

// NewEngine builds an Engine with DefaultEngineConfig.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig, nil)
}

// NewEngineWithConfig builds an Engine with a custom configuration.
// A nil logger falls back to slog's default.
func NewEngineWithConfig(config EngineConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	var cache *RecurrenceCache
	if config.CacheEnabled {
		cache = NewRecurrenceCache(config.CacheConfig, logger)
	}
	return &Engine{cache: cache, config: config, logger: logger}
}

// Close releases the engine's cache cleanup goroutine, if any.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

func (e *Engine) buildIterator(masterStart time.Time, allDay bool, info RecurrenceInfo) (rrule.RecurrenceIterator, error) {
	dtStart := rrule.FromTime(masterStart, !allDay)
	return parse.CreateIteratorFromParts(info.RRULE, info.EXRULE, info.RDATE, info.EXDATE, dtStart, masterStart.Location(), false, e.logger)
}

// HasOccurrenceInRange reports whether the recurring component
// described by info has any occurrence overlapping [rangeStart,
// rangeEnd]. masterEnd is used only to compute each occurrence's
// duration for the overlap test; allDay marks master/rangeStart as
// carrying no time-of-day, matching a DATE-valued DTSTART.
func (e *Engine) HasOccurrenceInRange(masterStart, masterEnd time.Time, allDay bool, info RecurrenceInfo, rangeStart, rangeEnd time.Time) (bool, error) {
	if e.config.CacheEnabled && e.cache != nil {
		if cached, ok := e.cache.Get("has", info, rangeStart, rangeEnd); ok {
			return cached.(bool), nil
		}
	}

	result, err := e.hasOccurrenceInRange(masterStart, masterEnd, allDay, info, rangeStart, rangeEnd)
	if err != nil {
		return false, err
	}

	if e.config.CacheEnabled && e.cache != nil {
		e.cache.Set("has", info, rangeStart, rangeEnd, result)
	}
	return result, nil
}

func (e *Engine) hasOccurrenceInRange(masterStart, masterEnd time.Time, allDay bool, info RecurrenceInfo, rangeStart, rangeEnd time.Time) (bool, error) {
	it, err := e.buildIterator(masterStart, allDay, info)
	if err != nil {
		return false, fmt.Errorf("icalrecur: build iterator: %w", err)
	}

	duration := masterEnd.Sub(masterStart)
	// Start early enough to see occurrences that begin before rangeStart
	// but are still running at it.
	it.AdvanceTo(rrule.FromTime(rangeStart.Add(-duration), !allDay))

	limit := e.config.MaxExpansionOccurrences
	if limit <= 0 {
		limit = DefaultEngineConfig.MaxExpansionOccurrences
	}

	scanEnd := rangeEnd
	if e.config.LargeRangeThreshold > 0 && rangeEnd.Sub(rangeStart) > e.config.LargeRangeThreshold {
		scanEnd = rangeStart.Add(e.config.LargeRangeLimit)
	}

	found, checked := scanForOverlap(it, duration, rangeStart, scanEnd, limit)
	if found {
		return true, nil
	}
	if scanEnd.Before(rangeEnd) && checked > 0 {
		found, _ = scanForOverlap(it, duration, scanEnd, rangeEnd, limit-checked)
	}
	return found, nil
}

// scanForOverlap consumes it until exhausted, a candidate lands after
// end, or limit candidates have been checked, reporting whether any
// occurrence overlaps [start, end].
func scanForOverlap(it rrule.RecurrenceIterator, duration time.Duration, start, end time.Time, limit int) (found bool, checked int) {
	for it.HasNext() && checked < limit {
		d, ok := it.Next()
		if !ok {
			break
		}
		checked++
		occStart := d.ToTime()
		if occStart.After(end) {
			break
		}
		occEnd := occStart.Add(duration)
		if !occStart.After(end) && !occEnd.Before(start) {
			return true, checked
		}
	}
	return false, checked
}

// Expand materializes the occurrences of info's recurring component
// overlapping [rangeStart, rangeEnd], bounded by opts.
func (e *Engine) Expand(masterStart, masterEnd time.Time, allDay bool, info RecurrenceInfo, rangeStart, rangeEnd time.Time, opts ExpansionOptions) ([]Occurrence, error) {
	effectiveEnd := rangeEnd
	if opts.MaxTimeSpan > 0 {
		if capped := rangeStart.Add(opts.MaxTimeSpan); capped.Before(effectiveEnd) {
			effectiveEnd = capped
		}
	}

	if e.config.CacheEnabled && e.cache != nil {
		if cached, ok := e.cache.Get("expand", info, rangeStart, effectiveEnd); ok {
			return cached.([]Occurrence), nil
		}
	}

	occurrences, err := e.expand(masterStart, masterEnd, allDay, info, rangeStart, effectiveEnd, opts)
	if err != nil {
		return nil, err
	}

	if e.config.CacheEnabled && e.cache != nil {
		e.cache.Set("expand", info, rangeStart, effectiveEnd, occurrences)
	}
	return occurrences, nil
}

func (e *Engine) expand(masterStart, masterEnd time.Time, allDay bool, info RecurrenceInfo, rangeStart, rangeEnd time.Time, opts ExpansionOptions) ([]Occurrence, error) {
	it, err := e.buildIterator(masterStart, allDay, info)
	if err != nil {
		return nil, fmt.Errorf("icalrecur: build iterator: %w", err)
	}

	duration := masterEnd.Sub(masterStart)
	it.AdvanceTo(rrule.FromTime(rangeStart.Add(-duration), !allDay))

	maxOcc := opts.MaxOccurrences
	if maxOcc <= 0 {
		maxOcc = DefaultExpansionOptions.MaxOccurrences
	}

	var out []Occurrence
	for it.HasNext() && len(out) < maxOcc {
		d, ok := it.Next()
		if !ok {
			break
		}
		start := d.ToTime()
		if start.After(rangeEnd) {
			break
		}
		if start.Add(duration).Before(rangeStart) {
			continue
		}
		end := rrule.FromTime(start.Add(duration), d.HasTime)
		out = append(out, Occurrence{Start: d, End: end})
	}
	return out, nil
}
