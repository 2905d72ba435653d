// Package metrics instruments level to colour lookups with Prometheus counters, so that data feeding the
// visualisation with unknown levels shows up on a dashboard instead of only as a missing swatch.
package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cirruscomms/fragility"
	"github.com/cirruscomms/fragility/o11y"
)

// Colorer is anything that maps a level onto a colour, such as *fragility.Scale.
type Colorer interface {
	ColorOf(level fragility.Level) (fragility.Color, error)
}

// Scale wraps a Colorer and counts its lookups.
type Scale struct {
	next    Colorer
	lookups *prometheus.CounterVec
	unknown prometheus.Counter
	o       *o11y.Observer
}

// New registers the lookup metrics for service on reg and returns a Colorer that records every lookup made through
// next. The context must carry an o11y Observer, used to log unknown levels.
//
// Known levels are counted in <service>_scale_lookups_total, labelled by level. Unknown levels are counted without a
// label in <service>_scale_unknown_levels_total so that bad input cannot grow the series count.
func New(ctx context.Context, service string, reg prometheus.Registerer, next Colorer) (scale *Scale, fault error) {
	_, o, err := o11y.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get o11y observer from context: %w", err)
	}

	if next == nil {
		return nil, errors.New("colorer cannot be nil")
	}

	s := &Scale{
		next: next,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_scale_lookups_total", service),
			Help: fmt.Sprintf("Number of level to colour lookups the %s service has made, by level", service),
		}, []string{"level"}),
		unknown: prometheus.NewCounter(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_scale_unknown_levels_total", service),
			Help: fmt.Sprintf("Number of lookups the %s service has made for levels outside the scale", service),
		}),
		o: o,
	}

	if err := reg.Register(s.lookups); err != nil {
		return nil, fmt.Errorf("could not register lookup counter: %w", err)
	}

	if err := reg.Register(s.unknown); err != nil {
		reg.Unregister(s.lookups)
		return nil, fmt.Errorf("could not register unknown level counter: %w", err)
	}

	return s, nil
}

// ColorOf looks level up through the wrapped Colorer. Errors are passed back unchanged.
func (s *Scale) ColorOf(level fragility.Level) (fragility.Color, error) {
	c, err := s.next.ColorOf(level)
	if err != nil {
		if errors.Is(err, fragility.ErrUnknownLevel) {
			s.unknown.Inc()
			s.o.Warning("lookup for unknown fragility level", o11y.FieldLevel, string(level), "severity", o11y.SeverityMedium)
		} else {
			s.o.Error("scale lookup failed", err, o11y.SeverityMedium, o11y.FieldLevel, string(level))
		}

		return "", err
	}

	s.lookups.WithLabelValues(string(level)).Inc()
	s.o.Develop("scale lookup", o11y.FieldLevel, string(level), o11y.FieldColor, string(c))

	return c, nil
}
