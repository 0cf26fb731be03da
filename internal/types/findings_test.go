package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_StatusDeterminism(t *testing.T) {
	pass := Passf("ok")
	warn := Warningf("suspicious")
	fail := Errorf("broken")

	tests := []struct {
		name     string
		passed   []Finding
		warnings []Finding
		errors   []Finding
		want     Status
	}{
		{"all empty", nil, nil, nil, StatusPassed},
		{"only passed", []Finding{pass}, nil, nil, StatusPassed},
		{"only warnings", nil, []Finding{warn}, nil, StatusPassedWithWarnings},
		{"only errors", nil, nil, []Finding{fail}, StatusFailed},
		{"passed and warnings", []Finding{pass}, []Finding{warn}, nil, StatusPassedWithWarnings},
		{"passed and errors", []Finding{pass}, nil, []Finding{fail}, StatusFailed},
		{"warnings and errors", nil, []Finding{warn}, []Finding{fail}, StatusFailed},
		{"all buckets", []Finding{pass}, []Finding{warn}, []Finding{fail}, StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{Passed: tt.passed, Warnings: tt.warnings, Errors: tt.errors}
			assert.Equal(t, tt.want, r.Status())
		})
	}
}

func TestResult_AddRoutesBySeverity(t *testing.T) {
	r := &Result{}
	r.Add(Passf("a"))
	r.Add(Warningf("b"))
	r.Add(Errorf("c"))

	assert.Len(t, r.Passed, 1)
	assert.Len(t, r.Warnings, 1)
	assert.Len(t, r.Errors, 1)
}

func TestResult_AddUnknownSeverityBecomesError(t *testing.T) {
	r := &Result{}
	r.Add(Finding{Severity: "bogus", Message: "x"})

	assert.Len(t, r.Errors, 1)
}

func TestResult_AddPreservesInsertionOrder(t *testing.T) {
	r := &Result{}
	for i := 0; i < 3; i++ {
		r.Add(Warningf("warning %d", i))
	}

	for i, f := range r.Warnings {
		assert.Equal(t, fmt.Sprintf("warning %d", i), f.Message)
	}
}

func TestResult_PassRate(t *testing.T) {
	r := &Result{}
	for i := 0; i < 7; i++ {
		r.Add(Passf("p%d", i))
	}
	r.Add(Warningf("w1"))
	r.Add(Warningf("w2"))
	r.Add(Errorf("e1"))

	assert.Equal(t, 10, r.Total())
	assert.Equal(t, "70.0", fmt.Sprintf("%.1f", r.PassRate()))
}

func TestResult_PassRateEmpty(t *testing.T) {
	r := &Result{}
	assert.Equal(t, 0.0, r.PassRate())
}
