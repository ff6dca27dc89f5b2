package reference

import (
	"fmt"

	"github.com/nginx/observer-bench/internal/observer"
)

// Tag identifies the field of a SubjectSystem that changed.
type Tag uint8

const (
	// TagValueA is sent after ValueA of a SubjectSystem changed.
	TagValueA Tag = iota
	// TagValueB is sent after ValueB of a SubjectSystem changed.
	TagValueB
)

func (t Tag) String() string {
	switch t {
	case TagValueA:
		return "ValueA"
	case TagValueB:
		return "ValueB"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// IsValid tells if t is one of the declared tags.
func (t Tag) IsValid() bool {
	return t <= TagValueB
}

// SystemView is the read-only view of a SubjectSystem passed to its observers.
type SystemView interface {
	GetValueA() int32
	GetValueB() int32
}

// SystemObserver is an Observer of a SubjectSystem.
type SystemObserver = Observer[SystemView, Tag]

// SubjectSystem is a Subject with two independent values. Every change of a value is broadcast
// with the tag of that value.
// The zero value is a SubjectSystem with both values set to 0.
type SubjectSystem struct {
	subject Subject[SystemView, Tag]
	valueA  int32
	valueB  int32
}

// NewSubjectSystem creates a new SubjectSystem with the given instrumentation options.
func NewSubjectSystem(opts ...observer.Option) *SubjectSystem {
	return &SubjectSystem{
		subject: *NewSubject[SystemView, Tag](opts...),
	}
}

// AttachObserver attaches the observer to the system.
func (s *SubjectSystem) AttachObserver(o SystemObserver) {
	s.subject.AttachObserver(o)
}

// DetachObserver detaches the observer from the system.
func (s *SubjectSystem) DetachObserver(o SystemObserver) {
	s.subject.DetachObserver(o)
}

// ObserverCount returns the number of attached observers.
func (s *SubjectSystem) ObserverCount() int {
	return s.subject.ObserverCount()
}

// SetValueA stores value and notifies the observers with TagValueA.
func (s *SubjectSystem) SetValueA(value int32) {
	s.valueA = value
	s.subject.SendNotification(s, TagValueA)
}

// SetValueB stores value and notifies the observers with TagValueB.
func (s *SubjectSystem) SetValueB(value int32) {
	s.valueB = value
	s.subject.SendNotification(s, TagValueB)
}

func (s *SubjectSystem) GetValueA() int32 { return s.valueA }

func (s *SubjectSystem) GetValueB() int32 { return s.valueB }
