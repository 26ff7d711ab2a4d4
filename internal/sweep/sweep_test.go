package sweep

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/faultslip/internal/friction"
)

func slidingBase() friction.Params {
	p := friction.DefaultParams()
	p.MuTZero = 0.55
	return p
}

var _ = Describe("DcRange", func() {
	It("spaces values evenly from low to high inclusive", func() {
		dcs := DcRange(10, 1000, 5)
		Expect(dcs).To(Equal([]float64{10, 257.5, 505, 752.5, 1000}))
	})

	It("collapses to the low value for a single-element grid", func() {
		Expect(DcRange(10, 1000, 1)).To(Equal([]float64{10}))
		Expect(DcRange(10, 1000, 0)).To(Equal([]float64{10}))
	})
})

var _ = Describe("Sweep", func() {
	var (
		ctx context.Context
		dcs []float64
	)

	BeforeEach(func() {
		ctx = context.Background()
		dcs = DcRange(10, 1000, 5)
	})

	It("produces one run per Dc value, in input order", func() {
		runs, err := New(slidingBase(), 7).Run(ctx, dcs)
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(HaveLen(5))

		for i, r := range runs {
			Expect(r.Dc).To(Equal(dcs[i]))
			Expect(r.Seed).To(Equal(int64(7 + i)))
			Expect(r.Series).NotTo(BeNil())
			Expect(r.Series.Len()).To(Equal(friction.DefaultNumSteps))
		}
	})

	It("is reproducible for a fixed seed", func() {
		first, err := New(slidingBase(), 42).Run(ctx, dcs)
		Expect(err).NotTo(HaveOccurred())
		second, err := New(slidingBase(), 42).Run(ctx, dcs)
		Expect(err).NotTo(HaveOccurred())

		for i := range first {
			Expect(second[i].Series.AccNoise).To(Equal(first[i].Series.AccNoise))
		}
	})

	It("draws independent noise per run", func() {
		runs, err := New(slidingBase(), 1).Run(ctx, []float64{10, 10})
		Expect(err).NotTo(HaveOccurred())

		Expect(runs[0].Series.Acc).To(Equal(runs[1].Series.Acc))
		Expect(runs[0].Series.AccNoise).NotTo(Equal(runs[1].Series.AccNoise))
	})

	It("matches the sequential results when run in parallel", func() {
		seq, err := New(slidingBase(), 99).Run(ctx, dcs)
		Expect(err).NotTo(HaveOccurred())
		par, err := New(slidingBase(), 99).RunParallel(ctx, dcs)
		Expect(err).NotTo(HaveOccurred())

		for i := range seq {
			Expect(par[i].Dc).To(Equal(seq[i].Dc))
			Expect(par[i].Series.Acc).To(Equal(seq[i].Series.Acc))
			Expect(par[i].Series.AccNoise).To(Equal(seq[i].Series.AccNoise))
		}
	})

	It("reports the failing Dc when a run leaves the numerical domain", func() {
		base := friction.DefaultParams() // reference start degenerates at step 2
		_, err := New(base, 1).Run(ctx, []float64{10})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("dc=10"))
		Expect(err).To(MatchError(friction.ErrNumericalDomain))
	})

	It("stops on context cancellation", func() {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := New(slidingBase(), 1).Run(canceled, dcs)
		Expect(err).To(MatchError(context.Canceled))

		_, err = New(slidingBase(), 1).RunParallel(canceled, dcs)
		Expect(err).To(MatchError(context.Canceled))
	})
})
