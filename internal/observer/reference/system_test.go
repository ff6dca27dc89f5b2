package reference_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/nginx/observer-bench/internal/metrics/collectors"
	"github.com/nginx/observer-bench/internal/observer"
	"github.com/nginx/observer-bench/internal/observer/reference"
)

// detachingObserver detaches the observer target from subject when it is notified.
type detachingObserver struct {
	subject *reference.SubjectSystem
	target  reference.SystemObserver
	calls   int
}

func (o *detachingObserver) OnNotification(_ reference.SystemView, _ reference.Tag) {
	o.calls++
	o.subject.DetachObserver(o.target)
}

// attachingObserver attaches the observer target to subject when it is notified.
type attachingObserver struct {
	subject *reference.SubjectSystem
	target  reference.SystemObserver
}

func (o *attachingObserver) OnNotification(_ reference.SystemView, _ reference.Tag) {
	o.subject.AttachObserver(o.target)
}

// forwardingObserver copies ValueA into ValueB of the subject it observes.
type forwardingObserver struct {
	subject *reference.SubjectSystem
}

func (o *forwardingObserver) OnNotification(view reference.SystemView, tag reference.Tag) {
	if tag == reference.TagValueA {
		o.subject.SetValueB(view.GetValueA())
	}
}

var _ = Describe("SubjectSystem", func() {
	var (
		subject    *reference.SubjectSystem
		observerA  *reference.SubjectObserverA
		observerB  *reference.SubjectObserverB
		observerBB *reference.SubjectObserverB
	)

	BeforeEach(func() {
		subject = reference.NewSubjectSystem(observer.WithLogger(zap.New(zap.WriteTo(GinkgoWriter))))
		observerA = &reference.SubjectObserverA{}
		observerB = &reference.SubjectObserverB{}
		observerBB = &reference.SubjectObserverB{}
	})

	It("starts with zero values", func() {
		Expect(subject.GetValueA()).To(BeZero())
		Expect(subject.GetValueB()).To(BeZero())
		Expect(observerA.GetValue()).To(BeZero())
		Expect(observerB.GetValue()).To(BeZero())
		Expect(observerBB.GetValue()).To(BeZero())
		Expect(subject.ObserverCount()).To(BeZero())
	})

	It("notifies the attached observers of the changed value only", func() {
		subject.AttachObserver(observerA)
		subject.AttachObserver(observerB)
		subject.AttachObserver(observerBB)

		subject.SetValueA(1)

		Expect(subject.GetValueA()).To(Equal(int32(1)))
		Expect(subject.GetValueB()).To(BeZero())
		Expect(observerA.GetValue()).To(Equal(int32(1)))
		Expect(observerB.GetValue()).To(BeZero())
		Expect(observerBB.GetValue()).To(BeZero())

		subject.SetValueB(2)

		Expect(subject.GetValueA()).To(Equal(int32(1)))
		Expect(subject.GetValueB()).To(Equal(int32(2)))
		Expect(observerA.GetValue()).To(Equal(int32(1)))
		Expect(observerB.GetValue()).To(Equal(int32(2)))
		Expect(observerBB.GetValue()).To(Equal(int32(2)))

		subject.DetachObserver(observerBB)
		subject.SetValueB(3)

		Expect(subject.GetValueA()).To(Equal(int32(1)))
		Expect(subject.GetValueB()).To(Equal(int32(3)))
		Expect(observerA.GetValue()).To(Equal(int32(1)))
		Expect(observerB.GetValue()).To(Equal(int32(3)))
		Expect(observerBB.GetValue()).To(Equal(int32(2)))
	})

	It("ignores attaching an observer twice", func() {
		counter := &countingObserver{}

		subject.AttachObserver(counter)
		subject.AttachObserver(counter)
		Expect(subject.ObserverCount()).To(Equal(1))

		subject.SetValueA(1)
		Expect(counter.calls).To(Equal(1))

		subject.DetachObserver(counter)
		subject.SetValueA(2)
		Expect(counter.calls).To(Equal(1))
	})

	It("ignores detaching an observer that is not attached", func() {
		subject.AttachObserver(observerA)

		subject.DetachObserver(observerB)
		subject.DetachObserver(observerB)
		Expect(subject.ObserverCount()).To(Equal(1))

		subject.SetValueA(7)
		Expect(observerA.GetValue()).To(Equal(int32(7)))
	})

	It("ignores nil observers", func() {
		subject.AttachObserver(nil)
		subject.DetachObserver(nil)
		Expect(subject.ObserverCount()).To(BeZero())

		Expect(func() { subject.SetValueA(1) }).ToNot(Panic())
	})

	It("does not notify a detached observer", func() {
		subject.AttachObserver(observerA)
		subject.SetValueA(5)
		subject.DetachObserver(observerA)
		subject.SetValueA(6)

		Expect(observerA.GetValue()).To(Equal(int32(5)))
		Expect(subject.GetValueA()).To(Equal(int32(6)))
	})

	It("sends one notification per setter call", func() {
		counter := &countingObserver{}
		subject.AttachObserver(counter)

		subject.SetValueA(1)
		subject.SetValueA(1)
		subject.SetValueB(1)

		Expect(counter.tags).To(Equal([]reference.Tag{
			reference.TagValueA,
			reference.TagValueA,
			reference.TagValueB,
		}))
	})

	It("sends the notification after the value is stored", func() {
		var seen int32
		subject.AttachObserver(&funcObserver{fn: func(view reference.SystemView, _ reference.Tag) {
			seen = view.GetValueB()
		}})

		subject.SetValueB(42)
		Expect(seen).To(Equal(int32(42)))
	})

	When("an observer detaches another observer during a broadcast", func() {
		It("never notifies the detached observer after it was detached", func() {
			detacher := &detachingObserver{subject: subject, target: observerA}
			subject.AttachObserver(detacher)
			subject.AttachObserver(observerA)

			subject.SetValueA(1)
			Expect(detacher.calls).To(Equal(1))
			Expect(subject.ObserverCount()).To(Equal(1))

			// observerA is notified only if it was called before the detacher.
			Expect(observerA.GetValue()).To(Or(BeZero(), Equal(int32(1))))

			subject.SetValueA(2)
			Expect(observerA.GetValue()).To(Or(BeZero(), Equal(int32(1))))
		})
	})

	When("an observer detaches itself during a broadcast", func() {
		It("is detached for the following broadcasts", func() {
			detacher := &detachingObserver{subject: subject}
			detacher.target = detacher
			subject.AttachObserver(detacher)
			subject.AttachObserver(observerA)

			subject.SetValueA(1)
			subject.SetValueA(2)

			Expect(detacher.calls).To(Equal(1))
			Expect(observerA.GetValue()).To(Equal(int32(2)))
		})
	})

	When("an observer attaches another observer during a broadcast", func() {
		It("notifies the new observer from the next broadcast on", func() {
			subject.AttachObserver(&attachingObserver{subject: subject, target: observerA})

			subject.SetValueA(1)
			Expect(observerA.GetValue()).To(BeZero())
			Expect(subject.ObserverCount()).To(Equal(2))

			subject.SetValueA(2)
			Expect(observerA.GetValue()).To(Equal(int32(2)))
		})
	})

	When("an observer changes the subject during a broadcast", func() {
		It("delivers the nested broadcast to the attached observers", func() {
			subject.AttachObserver(&forwardingObserver{subject: subject})
			subject.AttachObserver(observerB)

			subject.SetValueA(9)

			Expect(subject.GetValueB()).To(Equal(int32(9)))
			Expect(observerB.GetValue()).To(Equal(int32(9)))
		})
	})

	When("the subject is instrumented", func() {
		It("reports to the metrics collector", func() {
			collector := collectors.NewSubjectCollector(map[string]string{"variant": "reference"})
			registry := prometheus.NewPedanticRegistry()
			Expect(registry.Register(collector)).To(Succeed())

			instrumented := reference.NewSubjectSystem(observer.WithMetricsCollector(collector))
			instrumented.AttachObserver(observerA)
			instrumented.AttachObserver(observerB)
			instrumented.DetachObserver(observerB)
			instrumented.SetValueA(1)

			Expect(testutil.CollectAndCount(collector, "observer_bench_observers_attached_total")).To(Equal(1))

			count, err := testutil.GatherAndCount(registry, "observer_bench_notifications_total")
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})
})

var _ = Describe("Tag", func() {
	DescribeTable("String",
		func(tag reference.Tag, expected string) {
			Expect(tag.String()).To(Equal(expected))
		},
		Entry("ValueA", reference.TagValueA, "ValueA"),
		Entry("ValueB", reference.TagValueB, "ValueB"),
		Entry("unknown", reference.Tag(7), "Tag(7)"),
	)

	It("knows the declared tags", func() {
		Expect(reference.TagValueA.IsValid()).To(BeTrue())
		Expect(reference.TagValueB.IsValid()).To(BeTrue())
		Expect(reference.Tag(2).IsValid()).To(BeFalse())
	})
})

type countingObserver struct {
	tags  []reference.Tag
	calls int
}

func (o *countingObserver) OnNotification(_ reference.SystemView, tag reference.Tag) {
	o.calls++
	o.tags = append(o.tags, tag)
}

// funcObserver adapts a function to the Observer interface.
// A func type itself cannot be attached because it is not comparable.
type funcObserver struct {
	fn func(reference.SystemView, reference.Tag)
}

func (o *funcObserver) OnNotification(view reference.SystemView, tag reference.Tag) {
	o.fn(view, tag)
}
