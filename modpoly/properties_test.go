package modpoly_test

import (
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"linfactor/modpoly"
)

var _ = Describe("Polynomials modulo p", func() {
	const Trials = 20

	randomDegree := func() int {
		return rng.Intn(9)
	}

	Context("when evaluating a polynomial", func() {
		DescribeTable("the value should lie in [0, p)", func(prime *big.Int) {
			for i := 0; i < Trials; i++ {
				poly := RandomPoly(randomDegree(), prime)
				x := new(big.Int).Sub(RandomResidue(prime), prime)
				v, err := modpoly.Evaluate(poly, x, prime)
				Expect(err).ToNot(HaveOccurred())
				Expect(v.Sign()).To(BeNumerically(">=", 0))
				Expect(v.Cmp(prime)).To(Equal(-1))
			}
		},
			append(PrimeEntries, CompositeEntries...)...,
		)

		DescribeTable("it should agree with term by term evaluation", func(prime *big.Int) {
			for i := 0; i < Trials; i++ {
				poly := RandomPoly(randomDegree(), prime)
				x := RandomResidue(prime)

				accum := big.NewInt(0)
				term := big.NewInt(0)
				for i, c := range poly.Coeffs {
					term.Exp(x, big.NewInt(int64(i)), prime)
					term.Mul(term, c)
					accum.Add(accum, term)
				}
				accum.Mod(accum, prime)

				v, err := modpoly.Evaluate(poly, x, prime)
				Expect(err).ToNot(HaveOccurred())
				Expect(v.Cmp(accum)).To(Equal(0))
			}
		},
			PrimeEntries...,
		)
	})

	Context("when searching for linear factors", func() {
		DescribeTable("every reported root should be a root, once, in ascending order", func(prime *big.Int) {
			for i := 0; i < Trials; i++ {
				poly := RandomPoly(randomDegree(), prime)
				factors, err := modpoly.FindLinearFactors(poly, prime)
				Expect(err).ToNot(HaveOccurred())

				reported := map[string]bool{}
				for j, f := range factors {
					v, err := modpoly.Evaluate(poly, f.Root, prime)
					Expect(err).ToNot(HaveOccurred())
					Expect(v.Sign()).To(Equal(0))
					Expect(reported[f.Root.String()]).To(BeFalse())
					reported[f.Root.String()] = true
					if j > 0 {
						Expect(factors[j-1].Root.Cmp(f.Root)).To(Equal(-1))
					}
				}

				if prime.Int64() > 300 {
					continue
				}
				for r := int64(0); r < prime.Int64(); r++ {
					v, _ := modpoly.Evaluate(poly, big.NewInt(r), prime)
					Expect(reported[big.NewInt(r).String()]).To(Equal(v.Sign() == 0))
				}
			}
		},
			append(PrimeEntries, CompositeEntries...)...,
		)

		DescribeTable("a product of chosen linear factors should have those roots", func(prime *big.Int) {
			for i := 0; i < Trials; i++ {
				poly := modpoly.FromInt64(1)
				want := map[string]bool{}
				for k := 0; k < 3; k++ {
					r := RandomResidue(prime)
					want[r.String()] = true
					f, err := modpoly.NewLinearFactor(r, prime)
					Expect(err).ToNot(HaveOccurred())
					poly, err = modpoly.Mul(poly, f.Poly, prime)
					Expect(err).ToNot(HaveOccurred())
				}
				factors, err := modpoly.FindLinearFactors(poly, prime)
				Expect(err).ToNot(HaveOccurred())
				for _, f := range factors {
					Expect(want).To(HaveKey(f.Root.String()))
				}
				Expect(factors).To(HaveLen(len(want)))
			}
		},
			PrimeEntries...,
		)
	})

	Context("when dividing by a linear factor", func() {
		DescribeTable("quotient times factor should reproduce the polynomial", func(prime *big.Int) {
			for i := 0; i < Trials; i++ {
				poly := RandomPoly(randomDegree()+1, prime)
				factors, err := modpoly.FindLinearFactors(poly, prime)
				Expect(err).ToNot(HaveOccurred())

				reduced, err := modpoly.Reduce(poly, prime)
				Expect(err).ToNot(HaveOccurred())
				for _, f := range factors {
					q, err := modpoly.DivideByLinearFactor(poly, f.Poly, prime)
					Expect(err).ToNot(HaveOccurred())
					Expect(len(q.Coeffs)).To(BeNumerically("<=", len(poly.Coeffs)-1))

					back, err := modpoly.Mul(q, f.Poly, prime)
					Expect(err).ToNot(HaveOccurred())
					Expect(back.Equal(reduced)).To(BeTrue())

					for k := 0; k < 5; k++ {
						x := RandomResidue(prime)
						qv, _ := modpoly.Evaluate(q, x, prime)
						pv, _ := modpoly.Evaluate(poly, x, prime)
						lhs := new(big.Int).Sub(x, f.Root)
						lhs.Mul(lhs, qv)
						lhs.Mod(lhs, prime)
						Expect(lhs.Cmp(pv)).To(Equal(0))
					}
				}
			}
		},
			PrimeEntries...,
		)

		DescribeTable("the quotient should have exactly one coefficient fewer", func(prime *big.Int) {
			for i := 0; i < Trials; i++ {
				degree := randomDegree() + 1
				coeffs := make([]*big.Int, degree+1)
				for k := range coeffs {
					coeffs[k] = RandomResidue(prime)
				}
				for coeffs[degree].Sign() == 0 {
					coeffs[degree] = RandomResidue(prime)
				}
				poly := modpoly.NewPoly(coeffs...)
				f, err := modpoly.NewLinearFactor(RandomResidue(prime), prime)
				Expect(err).ToNot(HaveOccurred())

				q, err := modpoly.DivideByLinearFactor(poly, f.Poly, prime)
				Expect(err).ToNot(HaveOccurred())
				Expect(q.Coeffs).To(HaveLen(degree))
			}
		},
			PrimeEntries...,
		)
	})
})
