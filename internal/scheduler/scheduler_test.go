package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRegister_RejectsBadSpec(t *testing.T) {
	s := New(zap.NewNop())

	err := s.Register(Job{
		Name: "bad",
		Spec: "not a cron spec",
		Run:  func(context.Context) error { return nil },
	})
	assert.Error(t, err)
}

func TestRegister_RejectsMissingBody(t *testing.T) {
	s := New(zap.NewNop())

	err := s.Register(Job{Name: "empty", Spec: "* * * * *"})
	assert.Error(t, err)
}

func TestSafeRun_SwallowsError(t *testing.T) {
	s := New(zap.NewNop())

	ran := false
	wrapped := s.safeRun(Job{
		Name: "failing",
		Run: func(context.Context) error {
			ran = true
			return errors.New("boom")
		},
	})

	assert.NotPanics(t, wrapped)
	assert.True(t, ran)
}

func TestSafeRun_RecoversPanic(t *testing.T) {
	s := New(zap.NewNop())

	wrapped := s.safeRun(Job{
		Name: "panicking",
		Run: func(context.Context) error {
			panic("unreachable table")
		},
	})

	assert.NotPanics(t, wrapped)
}

// One job blowing up must not keep the next from running.
func TestSafeRun_FailureIsolation(t *testing.T) {
	s := New(zap.NewNop())

	first := s.safeRun(Job{
		Name: "first",
		Run:  func(context.Context) error { panic("boom") },
	})

	secondRan := false
	second := s.safeRun(Job{
		Name: "second",
		Run: func(context.Context) error {
			secondRan = true
			return nil
		},
	})

	first()
	second()
	assert.True(t, secondRan)
}

func TestJobs_ProductionSpecs(t *testing.T) {
	jobs := Jobs(nil, nil)

	specs := map[string]string{}
	for _, j := range jobs {
		specs[j.Name] = j.Spec
	}

	assert.Equal(t, "1 0 * * *", specs["menu-plans:archive-expired"])
	assert.Equal(t, "*/15 * * * *", specs["reservations:update-expired"])
}

func TestJobs_RegisterCleanly(t *testing.T) {
	s := New(zap.NewNop())

	for _, j := range Jobs(nil, nil) {
		assert.NoError(t, s.Register(j))
	}
	assert.Len(t, s.cron.Entries(), 2)
}
