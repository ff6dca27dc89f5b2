package bench

import (
	"fmt"
	"slices"

	"github.com/nginx/observer-bench/internal/observer"
	"github.com/nginx/observer-bench/internal/observer/reference"
	"github.com/nginx/observer-bench/internal/observer/value"
)

// Names of the observer variants.
const (
	VariantReference = "reference"
	VariantValue     = "value"
)

// Names of the observer payloads.
const (
	// PayloadObject is an observer type with its own state.
	PayloadObject = "object"
	// PayloadClosure is a closure capturing external state.
	PayloadClosure = "closure"
	// PayloadFunction is a package level function.
	PayloadFunction = "function"
)

// Variants returns the names of all observer variants.
func Variants() []string {
	return []string{VariantReference, VariantValue}
}

// fixture is a SubjectSystem with attached observers.
type fixture interface {
	// attach attaches all the observers again.
	attach()
	// notify changes ValueA, which notifies all the observers.
	notify()
}

type newFixtureFunc func(count int, opts ...observer.Option) fixture

// Case is a benchmark case: a variant with a kind of observer payload.
type Case struct {
	newFixture newFixtureFunc
	Variant    string
	Payload    string
}

// Name returns the name of the case.
func (c Case) Name() string {
	return c.Variant + "/" + c.Payload
}

var allCases = []Case{
	{
		Variant:    VariantReference,
		Payload:    PayloadObject,
		newFixture: newReferenceFixture,
	},
	{
		Variant: VariantValue,
		Payload: PayloadObject,
		newFixture: newValueFixture(func() value.SystemObserver {
			return value.NewSubjectObserverA().Handle()
		}),
	},
	{
		Variant:    VariantValue,
		Payload:    PayloadClosure,
		newFixture: newValueFixture(newClosureObserver().Clone),
	},
	{
		Variant:    VariantValue,
		Payload:    PayloadFunction,
		newFixture: newValueFixture(value.NewObserver(cacheValueB).Clone),
	},
}

// SelectCases returns the cases of the given variants, in the order of the variants.
// If no variant is given, all cases are returned.
func SelectCases(variants []string) ([]Case, error) {
	if len(variants) == 0 {
		return slices.Clone(allCases), nil
	}

	var selected []Case
	seen := make(map[string]struct{}, len(variants))

	for _, variant := range variants {
		if !slices.Contains(Variants(), variant) {
			return nil, fmt.Errorf("unknown variant %q; must be one of %v", variant, Variants())
		}

		if _, ok := seen[variant]; ok {
			continue
		}
		seen[variant] = struct{}{}

		for _, c := range allCases {
			if c.Variant == variant {
				selected = append(selected, c)
			}
		}
	}

	return selected, nil
}

type referenceFixture struct {
	subject   *reference.SubjectSystem
	observers []reference.SystemObserver
}

func newReferenceFixture(count int, opts ...observer.Option) fixture {
	f := &referenceFixture{
		subject:   reference.NewSubjectSystem(opts...),
		observers: make([]reference.SystemObserver, 0, count),
	}

	for range count {
		o := &reference.SubjectObserverA{}
		f.observers = append(f.observers, o)
		f.subject.AttachObserver(o)
	}

	return f
}

func (f *referenceFixture) attach() {
	for _, o := range f.observers {
		f.subject.AttachObserver(o)
	}
}

func (f *referenceFixture) notify() {
	f.subject.SetValueA(0)
}

type valueFixture struct {
	subject   *value.SubjectSystem
	observers []value.SystemObserver
}

func newValueFixture(newObserver func() value.SystemObserver) newFixtureFunc {
	return func(count int, opts ...observer.Option) fixture {
		f := &valueFixture{
			subject:   value.NewSubjectSystem(opts...),
			observers: make([]value.SystemObserver, 0, count),
		}

		for range count {
			o := newObserver()
			f.observers = append(f.observers, o)
			f.subject.AttachObserver(o)
		}

		return f
	}
}

func (f *valueFixture) attach() {
	for _, o := range f.observers {
		f.subject.AttachObserver(o)
	}
}

func (f *valueFixture) notify() {
	f.subject.SetValueA(0)
}

// valueBCache is the state captured by the closure observers.
type valueBCache struct {
	value int32
}

func (c *valueBCache) onNotification(subject value.SystemView, tag value.Tag) {
	if tag == value.TagValueB {
		c.value = subject.GetValueB()
	}
}

func newClosureObserver() value.SystemObserver {
	cache := &valueBCache{}

	return value.NewObserver(func(subject value.SystemView, tag value.Tag) {
		cache.onNotification(subject, tag)
	})
}

// lastValueB is the state of the cacheValueB observer.
var lastValueB int32

func cacheValueB(subject value.SystemView, tag value.Tag) {
	if tag == value.TagValueB {
		lastValueB = subject.GetValueB()
	}
}
