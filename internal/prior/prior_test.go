package prior_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantmix/adstock/internal/prior"
)

var _ = Describe("Sampler", func() {
	It("is reproducible for a given seed", func() {
		p := prior.Beta(1, 3)

		a, err := prior.NewSampler(7).Sample(p, 20)
		Expect(err).NotTo(HaveOccurred())
		b, err := prior.NewSampler(7).Sample(p, 20)
		Expect(err).NotTo(HaveOccurred())

		Expect(a).To(Equal(b))
	})

	It("draws beta values inside the unit interval", func() {
		s := prior.NewSampler(1)
		draws, err := s.Sample(prior.Beta(1, 3), 200)
		Expect(err).NotTo(HaveOccurred())

		for _, v := range draws {
			Expect(v).To(BeNumerically(">=", 0))
			Expect(v).To(BeNumerically("<=", 1))
		}
	})

	It("draws half-normal values on the non-negative half-line", func() {
		s := prior.NewSampler(2)
		draws, err := s.Sample(prior.HalfNormal(1), 200)
		Expect(err).NotTo(HaveOccurred())

		for _, v := range draws {
			Expect(v).To(BeNumerically(">=", 0))
		}
	})

	It("rejects unknown distribution families by name", func() {
		_, err := prior.NewSampler(0).Draw(prior.Prior{Dist: "cauchy"})
		Expect(err).To(MatchError(prior.ErrUnknownDist))
		Expect(err.Error()).To(ContainSubstring("beta"))
		Expect(err.Error()).To(ContainSubstring("halfnormal"))
	})

	It("rejects missing and invalid hyperparameters", func() {
		s := prior.NewSampler(0)

		_, err := s.Draw(prior.Prior{Dist: prior.DistBeta, Kwargs: map[string]float64{"alpha": 1}})
		Expect(err).To(MatchError(prior.ErrMissingKwarg))

		_, err = s.Draw(prior.HalfNormal(-1))
		Expect(err).To(MatchError(prior.ErrBadKwarg))

		_, err = s.Draw(prior.Uniform(2, 1))
		Expect(err).To(MatchError(prior.ErrBadKwarg))
	})
})

var _ = Describe("Moments and densities", func() {
	It("computes the beta mean", func() {
		m, err := prior.Mean(prior.Beta(1, 3))
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(BeNumerically("~", 0.25, 1e-12))
	})

	It("computes the half-normal mean", func() {
		m, err := prior.Mean(prior.HalfNormal(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(BeNumerically("~", math.Sqrt(2/math.Pi), 1e-12))
	})

	It("doubles the normal density on the half-line", func() {
		lp, err := prior.LogProb(prior.HalfNormal(1), 0.5)
		Expect(err).NotTo(HaveOccurred())

		ref, err := prior.LogProb(prior.Normal(0, 1), 0.5)
		Expect(err).NotTo(HaveOccurred())

		Expect(lp).To(BeNumerically("~", math.Ln2+ref, 1e-12))
	})

	It("gives zero density below the half-line", func() {
		lp, err := prior.LogProb(prior.HalfNormal(1), -0.1)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(lp, -1)).To(BeTrue())
	})
})

var _ = Describe("Prior descriptors", func() {
	It("renders a stable string form", func() {
		Expect(prior.Beta(1, 3).String()).To(Equal("beta(alpha=1, beta=3)"))
		Expect(prior.HalfNormal(1).String()).To(Equal("halfnormal(sigma=1)"))
	})

	It("lists the supported families sorted", func() {
		families := prior.Families()
		Expect(families).To(Equal([]string{"beta", "gamma", "halfnormal", "lognormal", "normal", "uniform"}))
	})
})
