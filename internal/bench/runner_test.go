package bench_test

import (
	"bytes"
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/nginx/observer-bench/internal/bench"
	"github.com/nginx/observer-bench/internal/config"
)

var _ = Describe("SelectCases", func() {
	caseNames := func(cases []bench.Case) []string {
		names := make([]string, 0, len(cases))
		for _, c := range cases {
			names = append(names, c.Name())
		}
		return names
	}

	DescribeTable("selecting the cases of variants",
		func(variants []string, expected []string) {
			cases, err := bench.SelectCases(variants)
			Expect(err).ToNot(HaveOccurred())
			Expect(caseNames(cases)).To(Equal(expected))
		},
		Entry(
			"all variants when none is given",
			nil,
			[]string{"reference/object", "value/object", "value/closure", "value/function"},
		),
		Entry("reference variant", []string{"reference"}, []string{"reference/object"}),
		Entry(
			"value variant",
			[]string{"value"},
			[]string{"value/object", "value/closure", "value/function"},
		),
		Entry(
			"variants in the given order without duplicates",
			[]string{"value", "reference", "value"},
			[]string{"value/object", "value/closure", "value/function", "reference/object"},
		),
	)

	It("rejects an unknown variant", func() {
		_, err := bench.SelectCases([]string{"reference", "pointer"})
		Expect(err).To(MatchError(ContainSubstring(`unknown variant "pointer"`)))
	})
})

var _ = Describe("Runner", func() {
	const creationCount = 10

	var cfg config.Config

	BeforeEach(func() {
		cfg = config.Config{
			Logger:        zap.New(zap.WriteTo(GinkgoWriter)),
			CreationCount: creationCount,
			BenchTime:     time.Millisecond,
		}
	})

	It("benchmarks the attach and notification operations of every case", func() {
		progress := &bytes.Buffer{}
		cfg.ShowProgress = true

		results, err := bench.NewRunner(cfg, progress).Run(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(8))

		for i, r := range results {
			Expect(r.Observers).To(Equal(creationCount))
			Expect(r.Iterations).To(BeNumerically(">", 0))
			Expect(r.NsPerOp).To(BeNumerically(">=", 0))

			if i%2 == 0 {
				Expect(r.Operation).To(Equal(bench.OperationAttach))
			} else {
				Expect(r.Operation).To(Equal(bench.OperationNotification))
			}
		}

		Expect(results[0].Case).To(Equal("reference/object"))
		Expect(results[0].Relative).To(Equal(1.0))
		Expect(results[1].Relative).To(Equal(1.0))
		Expect(results[7].Case).To(Equal("value/function"))

		Expect(progress.Len()).To(BeNumerically(">", 0))
	})

	It("does not allocate when attaching attached observers or notifying", func() {
		cfg.Variants = []string{bench.VariantReference}

		results, err := bench.NewRunner(cfg, nil).Run(context.Background())
		Expect(err).ToNot(HaveOccurred())

		for _, r := range results {
			Expect(r.AllocsPerOp).To(BeZero(), r.Case+" "+string(r.Operation))
		}
	})

	It("rejects an unknown variant", func() {
		cfg.Variants = []string{bench.VariantValue, "pointer"}

		results, err := bench.NewRunner(cfg, nil).Run(context.Background())
		Expect(err).To(MatchError(ContainSubstring(`unknown variant "pointer"`)))
		Expect(results).To(BeNil())

		_, err = bench.NewRunner(cfg, nil).Measure(context.Background())
		Expect(err).To(HaveOccurred())
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := bench.NewRunner(cfg, nil).Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(results).To(BeEmpty())
	})

	It("measures the metrics of an instrumented notification", func() {
		cfg.Variants = []string{bench.VariantReference}

		registry, err := bench.NewRunner(cfg, nil).Measure(context.Background())
		Expect(err).ToNot(HaveOccurred())

		expected := `
# HELP observer_bench_notifications_total Number of notifications delivered to observers
# TYPE observer_bench_notifications_total counter
observer_bench_notifications_total{case="reference/object",tag="ValueA"} 10
# HELP observer_bench_observers Number of observers currently attached to the subject
# TYPE observer_bench_observers gauge
observer_bench_observers{case="reference/object"} 10
`
		Expect(testutil.GatherAndCompare(
			registry,
			strings.NewReader(expected),
			"observer_bench_notifications_total",
			"observer_bench_observers",
		)).To(Succeed())
	})

	It("labels the metrics of every case", func() {
		registry, err := bench.NewRunner(cfg, nil).Measure(context.Background())
		Expect(err).ToNot(HaveOccurred())

		count, err := testutil.GatherAndCount(registry, "observer_bench_observers_attached_total")
		Expect(err).ToNot(HaveOccurred())
		Expect(count).To(Equal(4))
	})
})
