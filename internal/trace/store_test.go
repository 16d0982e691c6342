package trace_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravtrail/internal/trace"
)

var _ = Describe("Store", func() {
	var (
		dir   string
		store *trace.Store
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		store = trace.NewStore(filepath.Join(dir, "traces.json"))
	})

	It("round-trips saved traces", func() {
		snap := trace.Snapshot{
			{{1.5, 2.25}, {3.125, 4.0}},
			{{960.1, 540.7}},
			{},
		}
		Expect(store.Save(snap)).To(Succeed())

		loaded, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(HaveLen(3))
		for i := range snap {
			Expect(loaded[i]).To(HaveLen(len(snap[i])))
			for j := range snap[i] {
				Expect(loaded[i][j].X()).To(BeNumerically("~", snap[i][j].X(), 1e-9))
				Expect(loaded[i][j].Y()).To(BeNumerically("~", snap[i][j].Y(), 1e-9))
			}
		}
	})

	It("writes a flat list of coordinate pairs", func() {
		Expect(store.Save(trace.Snapshot{{{1, 2}}})).To(Succeed())
		data, err := os.ReadFile(store.Path())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("[[[1,2]]]"))
	})

	It("overwrites a previous file", func() {
		Expect(store.Save(trace.Snapshot{{{1, 1}}, {{2, 2}}})).To(Succeed())
		Expect(store.Save(trace.Snapshot{{{3, 3}}})).To(Succeed())

		loaded, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(trace.Snapshot{{{3, 3}}}))
	})

	It("loads an empty snapshot when the file is missing", func() {
		loaded, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).NotTo(BeNil())
		Expect(loaded).To(BeEmpty())
	})

	It("reports corrupt files and falls back to empty", func() {
		Expect(os.WriteFile(store.Path(), []byte("{not json"), 0644)).To(Succeed())
		loaded, err := store.Load()
		Expect(err).To(MatchError(trace.ErrCorrupt))
		Expect(loaded).To(BeEmpty())
	})

	It("surfaces write failures", func() {
		blocker := filepath.Join(dir, "file")
		Expect(os.WriteFile(blocker, []byte("x"), 0644)).To(Succeed())
		bad := trace.NewStore(filepath.Join(blocker, "traces.json"))
		Expect(bad.Save(trace.Snapshot{})).NotTo(Succeed())
	})

	It("defaults the path", func() {
		Expect(trace.NewStore("").Path()).To(Equal(trace.DefaultFile))
	})
})

var _ = Describe("Snapshot", func() {
	It("freezes rings oldest first", func() {
		a := trace.NewRing(2)
		a.Push(trace.Point{1, 1})
		a.Push(trace.Point{2, 2})
		a.Push(trace.Point{3, 3})
		b := trace.NewRing(2)

		snap := trace.Freeze([]*trace.Ring{a, b})
		Expect(snap).To(Equal(trace.Snapshot{{{2, 2}, {3, 3}}, {}}))
		Expect(snap.Points()).To(Equal(2))
	})

	It("computes bounds across all traces", func() {
		snap := trace.Snapshot{{{1, 5}, {3, -2}}, {{-4, 0}}}
		minX, minY, maxX, maxY, ok := snap.Bounds()
		Expect(ok).To(BeTrue())
		Expect([]float64{minX, minY, maxX, maxY}).To(Equal([]float64{-4, -2, 3, 5}))

		_, _, _, _, ok = trace.Snapshot{{}}.Bounds()
		Expect(ok).To(BeFalse())
	})
})
