package reference

// SubjectObserverA keeps the last ValueA of the SubjectSystem it observes.
type SubjectObserverA struct {
	value int32
}

// OnNotification implements the Observer interface.
func (o *SubjectObserverA) OnNotification(subject SystemView, tag Tag) {
	if tag == TagValueA {
		o.value = subject.GetValueA()
	}
}

// GetValue returns the last notified ValueA.
func (o *SubjectObserverA) GetValue() int32 {
	return o.value
}

// SubjectObserverB keeps the last ValueB of the SubjectSystem it observes.
type SubjectObserverB struct {
	value int32
}

// OnNotification implements the Observer interface.
func (o *SubjectObserverB) OnNotification(subject SystemView, tag Tag) {
	if tag == TagValueB {
		o.value = subject.GetValueB()
	}
}

// GetValue returns the last notified ValueB.
func (o *SubjectObserverB) GetValue() int32 {
	return o.value
}
