package formcheck

import (
	"go.uber.org/zap"
)

// Rule is a named check over a whole payload.
type Rule struct {
	Name  string
	Check func(Payload) Result
}

// NamedResult pairs a rule with its outcome.
type NamedResult struct {
	Rule string `json:"rule"`
	Result
}

// Summary aggregates one run of the suite. Results keep rule order.
type Summary struct {
	Passed  int           `json:"passed"`
	Total   int           `json:"total"`
	Results []NamedResult `json:"results"`
}

// Failed returns Total-Passed.
func (s Summary) Failed() int {
	return s.Total - s.Passed
}

// AllPassed reports whether every rule passed.
func (s Summary) AllPassed() bool {
	return s.Passed == s.Total
}

// Result looks up the outcome of a rule by name.
func (s Summary) Result(rule string) (Result, bool) {
	for _, r := range s.Results {
		if r.Rule == rule {
			return r.Result, true
		}
	}
	return Result{}, false
}

// Rules returns the six contact form rules in reporting order.
func Rules() []Rule {
	return []Rule{
		{Name: "FormDataValidation", Check: CheckShape},
		{Name: "EmailFormat", Check: func(p Payload) Result {
			return CheckEmailFormat(p["email"])
		}},
		{Name: "RequiredFields", Check: CheckRequiredFields},
		{Name: "DataTypes", Check: CheckFieldTypes},
		{Name: "NameLength", Check: func(p Payload) Result {
			return CheckNameLength(p["name"])
		}},
		{Name: "MessageLength", Check: func(p Payload) Result {
			return CheckMessageLength(p["message"])
		}},
	}
}

// Suite runs a fixed list of rules and reports them to a logger.
type Suite struct {
	rules []Rule
	log   *zap.Logger
}

// NewSuite creates a suite over Rules.
func NewSuite(log *zap.Logger) *Suite {
	if log == nil {
		log = zap.NewNop()
	}

	return &Suite{rules: Rules(), log: log}
}

// Run evaluates every rule against p. It does not log.
func (s *Suite) Run(p Payload) Summary {
	sum := Summary{Total: len(s.rules)}
	for _, rule := range s.rules {
		res := guard(func() Result { return rule.Check(p) })
		if res.Passed {
			sum.Passed++
		}
		sum.Results = append(sum.Results, NamedResult{
			Rule: rule.Name, Result: res,
		})
	}

	return sum
}

// RunAndReport evaluates p and logs the summary followed by one line per
// rule.
func (s *Suite) RunAndReport(p Payload) Summary {
	s.log.Info("Running contact form self-test",
		zap.Int("rules", len(s.rules)))

	sum := s.Run(p)
	s.Report(sum)

	return sum
}

// Report logs a summary.
func (s *Suite) Report(sum Summary) {
	s.log.Info("Self-test results",
		zap.Int("passed", sum.Passed),
		zap.Int("failed", sum.Failed()),
		zap.Int("total", sum.Total))

	for _, r := range sum.Results {
		fields := []zap.Field{
			zap.String("rule", r.Rule),
			zap.String("detail", r.Message),
		}
		if r.Passed {
			s.log.Info("Self-test passed", fields...)
		} else {
			s.log.Warn("Self-test failed", fields...)
		}
	}
}
