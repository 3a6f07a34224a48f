package laws

// TestingT is the subset of *testing.T used by Assert.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface {
	Helper()
}

// Assert runs suite and reports every law that did not pass through
// t.Errorf. It returns whether the suite passed.
func Assert(t TestingT, suite Suite, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report := suite.Run(opts...)
	for _, o := range report.Outcomes {
		if err := o.Err(); err != nil {
			t.Errorf("%s: %v", report.Suite, err)
		}
	}
	return report.Passed()
}
