package bench

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/nginx/observer-bench/internal/observer"
	"github.com/nginx/observer-bench/internal/observer/reference"
	"github.com/nginx/observer-bench/internal/observer/value"
)

// Snapshot is the observable state of the scenario: the values of the subject and the values cached by the
// observers A (ValueA), B and BB (ValueB).
type Snapshot struct {
	ValueA     int32
	ValueB     int32
	ObserverA  int32
	ObserverB  int32
	ObserverBB int32
}

// scenarioSystem is a SubjectSystem with the observers A, B and BB attached.
type scenarioSystem interface {
	SetValueA(value int32)
	SetValueB(value int32)
	detachBB()
	snapshot() Snapshot
}

// Step is a step of the scenario with the state expected after it.
type Step struct {
	run      func(s scenarioSystem)
	Name     string
	Expected Snapshot
}

// ScenarioSteps returns the steps of the scenario.
func ScenarioSteps() []Step {
	return []Step{
		{
			Name:     "attach A, B and BB",
			run:      func(_ scenarioSystem) {},
			Expected: Snapshot{},
		},
		{
			Name:     "set ValueA to 1",
			run:      func(s scenarioSystem) { s.SetValueA(1) },
			Expected: Snapshot{ValueA: 1, ObserverA: 1},
		},
		{
			Name:     "set ValueB to 2",
			run:      func(s scenarioSystem) { s.SetValueB(2) },
			Expected: Snapshot{ValueA: 1, ValueB: 2, ObserverA: 1, ObserverB: 2, ObserverBB: 2},
		},
		{
			Name:     "detach BB",
			run:      func(s scenarioSystem) { s.detachBB() },
			Expected: Snapshot{ValueA: 1, ValueB: 2, ObserverA: 1, ObserverB: 2, ObserverBB: 2},
		},
		{
			Name:     "set ValueB to 3",
			run:      func(s scenarioSystem) { s.SetValueB(3) },
			Expected: Snapshot{ValueA: 1, ValueB: 3, ObserverA: 1, ObserverB: 3, ObserverBB: 2},
		},
	}
}

// RunScenario runs the scenario against the variant: observers A (ValueA), B and BB (ValueB) are attached,
// ValueA and ValueB are changed, BB is detached and ValueB is changed again.
// It returns an error listing every step whose state differs from the expected one.
func RunScenario(variant string, logger logr.Logger) error {
	var s scenarioSystem

	opts := []observer.Option{observer.WithLogger(logger)}

	switch variant {
	case VariantReference:
		s = newReferenceScenario(opts...)
	case VariantValue:
		s = newValueScenario(opts...)
	default:
		return fmt.Errorf("unknown variant %q; must be one of %v", variant, Variants())
	}

	var errs []error

	for _, step := range ScenarioSteps() {
		step.run(s)
		got := s.snapshot()

		logger.Info(
			"Ran scenario step",
			"step", step.Name,
			"valueA", got.ValueA,
			"valueB", got.ValueB,
			"observerA", got.ObserverA,
			"observerB", got.ObserverB,
			"observerBB", got.ObserverBB,
		)

		if got != step.Expected {
			errs = append(errs, fmt.Errorf("step %q: expected %+v, got %+v", step.Name, step.Expected, got))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("scenario failed for variant %s: %w", variant, err)
	}

	return nil
}

type referenceScenario struct {
	*reference.SubjectSystem
	observerA  *reference.SubjectObserverA
	observerB  *reference.SubjectObserverB
	observerBB *reference.SubjectObserverB
}

func newReferenceScenario(opts ...observer.Option) *referenceScenario {
	s := &referenceScenario{
		SubjectSystem: reference.NewSubjectSystem(opts...),
		observerA:     &reference.SubjectObserverA{},
		observerB:     &reference.SubjectObserverB{},
		observerBB:    &reference.SubjectObserverB{},
	}

	s.AttachObserver(s.observerA)
	s.AttachObserver(s.observerB)
	s.AttachObserver(s.observerBB)

	return s
}

func (s *referenceScenario) detachBB() {
	s.DetachObserver(s.observerBB)
}

func (s *referenceScenario) snapshot() Snapshot {
	return Snapshot{
		ValueA:     s.GetValueA(),
		ValueB:     s.GetValueB(),
		ObserverA:  s.observerA.GetValue(),
		ObserverB:  s.observerB.GetValue(),
		ObserverBB: s.observerBB.GetValue(),
	}
}

// valueScenario uses an adapter type for A, a closure for B and a method value for BB.
type valueScenario struct {
	*value.SubjectSystem
	observerA  *value.SubjectObserverA
	observerB  value.SystemObserver
	observerBB value.SystemObserver
	valueB     int32
	cacheBB    valueBCache
}

func newValueScenario(opts ...observer.Option) *valueScenario {
	s := &valueScenario{
		SubjectSystem: value.NewSubjectSystem(opts...),
		observerA:     value.NewSubjectObserverA(),
	}

	s.observerB = value.NewObserver(func(subject value.SystemView, tag value.Tag) {
		if tag == value.TagValueB {
			s.valueB = subject.GetValueB()
		}
	})
	s.observerBB = value.NewObserver(s.cacheBB.onNotification)

	s.AttachObserver(s.observerA.Handle())
	s.AttachObserver(s.observerB)
	s.AttachObserver(s.observerBB)

	return s
}

func (s *valueScenario) detachBB() {
	s.DetachObserver(s.observerBB)
}

func (s *valueScenario) snapshot() Snapshot {
	return Snapshot{
		ValueA:     s.GetValueA(),
		ValueB:     s.GetValueB(),
		ObserverA:  s.observerA.GetValue(),
		ObserverB:  s.valueB,
		ObserverBB: s.cacheBB.value,
	}
}
