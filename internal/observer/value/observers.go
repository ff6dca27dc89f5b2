package value

// SubjectObserverA keeps the last ValueA of the SubjectSystem it observes.
// It wires its Observer to a closure updating its own state, so it must not be copied after creation.
type SubjectObserverA struct {
	observer Observer[SystemView, Tag]
	value    int32
}

// NewSubjectObserverA creates a new SubjectObserverA.
func NewSubjectObserverA() *SubjectObserverA {
	o := &SubjectObserverA{}
	o.observer.onNotification = func(subject SystemView, tag Tag) {
		if tag == TagValueA {
			o.value = subject.GetValueA()
		}
	}

	return o
}

// Handle returns the Observer to attach to a SubjectSystem.
func (o *SubjectObserverA) Handle() SystemObserver {
	return &o.observer
}

// GetValue returns the last notified ValueA.
func (o *SubjectObserverA) GetValue() int32 {
	return o.value
}
