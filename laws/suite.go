package laws

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Suite is an ordered composition of laws that together define a
// structure.
type Suite struct {
	name string
	laws []Law
}

// NewSuite returns a suite running laws in order.
func NewSuite(name string, laws ...Law) Suite {
	return Suite{name: name, laws: append([]Law(nil), laws...)}
}

// Extend returns a new suite named name running the laws of s followed by
// laws. s is unchanged.
func (s Suite) Extend(name string, laws ...Law) Suite {
	all := make([]Law, 0, len(s.laws)+len(laws))
	all = append(all, s.laws...)
	return Suite{name: name, laws: append(all, laws...)}
}

// Include returns a new suite named name running the laws of s followed by
// those of every other suite.
func (s Suite) Include(name string, others ...Suite) Suite {
	out := s.Extend(name)
	for _, o := range others {
		out.laws = append(out.laws, o.laws...)
	}
	return out
}

func (s Suite) Name() string { return s.name }

// Laws returns the laws in order.
func (s Suite) Laws() []Law { return append([]Law(nil), s.laws...) }

// Run checks every law, including those after a failure. All laws share
// one seed, reported on the Report.
func (s Suite) Run(opts ...Option) Report {
	cfg := NewConfig(opts...)
	report := Report{ID: uuid.New(), Suite: s.name, Seed: cfg.Seed}
	logger := cfg.Logger.With(
		zap.Stringer("run_id", report.ID),
		zap.String("suite", s.name),
		zap.Int64("seed", cfg.Seed),
	)

	start := time.Now()
	for _, law := range s.laws {
		out := law.Check(cfg)
		logOutcome(logger, out)
		report.Outcomes = append(report.Outcomes, out)
	}
	report.Span = timespan.BetweenTimes(start, time.Now())

	logger.Info("law suite finished",
		zap.Int("laws", len(report.Outcomes)),
		zap.Int("failed", len(report.Failures())),
		zap.Int("errored", len(report.Errors())),
		zap.Duration("elapsed", report.Span.Duration()),
	)
	return report
}

func logOutcome(logger *zap.Logger, out Outcome) {
	fields := []zap.Field{
		zap.String("law", out.Law),
		zap.Int("succeeded", out.Succeeded),
		zap.Duration("elapsed", out.Span.Duration()),
	}
	switch out.Status {
	case Passed:
		logger.Debug("law passed", fields...)
	case Failed:
		logger.Warn("law failed", append(fields, zap.Stringer("counterexample", out.Counterexample))...)
	case Errored:
		logger.Error("law could not be checked", append(fields, zap.Error(out.Cause))...)
	}
}

// Report is the result of running a suite.
type Report struct {
	ID       uuid.UUID
	Suite    string
	Seed     int64
	Outcomes []Outcome
	Span     timespan.TimeSpan
}

// Passed reports whether every law passed.
func (r Report) Passed() bool {
	for _, o := range r.Outcomes {
		if o.Status != Passed {
			return false
		}
	}
	return true
}

// Failures returns the falsified laws.
func (r Report) Failures() []Outcome { return r.filter(Failed) }

// Errors returns the laws that could not be checked.
func (r Report) Errors() []Outcome { return r.filter(Errored) }

func (r Report) filter(status Status) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Err combines the errors of every law that did not pass.
func (r Report) Err() error {
	var err error
	for _, o := range r.Outcomes {
		err = multierr.Append(err, o.Err())
	}
	return err
}

// Outcome returns the outcome of the named law.
func (r Report) Outcome(law string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Law == law {
			return o, true
		}
	}
	return Outcome{}, false
}
