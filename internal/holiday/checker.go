package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/smartsched/reminder-scheduler/internal/notify"
)

type holidaySource interface {
	PublicHolidays(ctx context.Context, year int, countryCode string) ([]Holiday, error)
}

type notificationSink interface {
	Submit(ctx context.Context, req notify.Request)
}

// Checker runs the once-per-start holiday notification. It is best-effort:
// every failure is logged and absorbed, and it never blocks startup.
type Checker struct {
	source      holidaySource
	sink        notificationSink
	countryCode string
	now         func() time.Time
}

func NewChecker(source holidaySource, sink notificationSink, countryCode string) *Checker {
	return &Checker{
		source:      source,
		sink:        sink,
		countryCode: countryCode,
		now:         time.Now,
	}
}

// CheckToday fetches this year's holidays and, when today's local calendar
// date matches one, submits a single immediate notification for the first
// match.
func (c *Checker) CheckToday(ctx context.Context) {
	now := c.now()

	holidays, err := c.source.PublicHolidays(ctx, now.Year(), c.countryCode)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("country", c.countryCode).Msg("holiday check failed")
		return
	}

	today := now.Format("2006-01-02")

	for _, h := range holidays {
		if h.Date != today {
			continue
		}

		c.sink.Submit(ctx, notify.Request{
			Identifier: notify.HolidayID(today),
			Title:      "Today is a holiday!!",
			Body:       fmt.Sprintf("%s is today!", h.LocalName),
			Trigger:    notify.Immediate(),
		})

		return
	}
}
