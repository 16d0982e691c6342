package trace_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravtrail/internal/trace"
)

var _ = Describe("Ring", func() {
	var r *trace.Ring

	BeforeEach(func() {
		r = trace.NewRing(trace.DefaultCapacity)
	})

	It("starts empty", func() {
		Expect(r.Len()).To(Equal(0))
		Expect(r.Cap()).To(Equal(100))
		_, ok := r.Last()
		Expect(ok).To(BeFalse())
		Expect(r.Points()).To(BeEmpty())
	})

	It("keeps points in insertion order below capacity", func() {
		for i := 0; i < 10; i++ {
			r.Push(trace.Point{float64(i), float64(-i)})
		}
		Expect(r.Len()).To(Equal(10))
		Expect(r.At(0)).To(Equal(trace.Point{0, 0}))
		last, ok := r.Last()
		Expect(ok).To(BeTrue())
		Expect(last).To(Equal(trace.Point{9, -9}))
	})

	It("holds exactly the last 100 points after 100 pushes", func() {
		for i := 0; i < 100; i++ {
			r.Push(trace.Point{float64(i), 0})
		}
		pts := r.Points()
		Expect(pts).To(HaveLen(100))
		for i, p := range pts {
			Expect(p.X()).To(Equal(float64(i)))
		}
	})

	It("never grows past capacity and evicts the oldest first", func() {
		for i := 0; i < 1000; i++ {
			r.Push(trace.Point{float64(i), 0})
			Expect(r.Len()).To(BeNumerically("<=", 100))
		}
		pts := r.Points()
		Expect(pts).To(HaveLen(100))
		Expect(pts[0].X()).To(Equal(900.0))
		Expect(pts[99].X()).To(Equal(999.0))
	})

	It("visits points oldest first with Each", func() {
		for i := 0; i < 105; i++ {
			r.Push(trace.Point{float64(i), 0})
		}
		var seen []float64
		r.Each(func(_ int, p trace.Point) { seen = append(seen, p.X()) })
		Expect(seen).To(HaveLen(100))
		Expect(seen[0]).To(Equal(5.0))
	})

	It("returns an independent copy from Points", func() {
		r.Push(trace.Point{1, 1})
		pts := r.Points()
		pts[0] = trace.Point{42, 42}
		Expect(r.At(0)).To(Equal(trace.Point{1, 1}))
	})

	It("clamps a non-positive capacity to one", func() {
		small := trace.NewRing(0)
		small.Push(trace.Point{1, 1})
		small.Push(trace.Point{2, 2})
		Expect(small.Points()).To(Equal([]trace.Point{{2, 2}}))
	})

	It("empties on Reset", func() {
		r.Push(trace.Point{1, 1})
		r.Reset()
		Expect(r.Len()).To(Equal(0))
	})
})
