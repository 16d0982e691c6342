package trace

// DefaultCapacity is the number of positions kept per body.
const DefaultCapacity = 100

// Point is an (x, y) pair. It encodes as a two-element JSON array.
type Point [2]float64

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

// Ring is a fixed-capacity FIFO of points. When full, Push overwrites the
// oldest entry.
type Ring struct {
	buf   []Point
	head  int
	count int
}

func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]Point, capacity)}
}

// Push appends p, evicting the oldest point if the ring is full.
func (r *Ring) Push(p Point) {
	idx := (r.head + r.count) % len(r.buf)
	r.buf[idx] = p
	if r.count < len(r.buf) {
		r.count++
		return
	}
	r.head = (r.head + 1) % len(r.buf)
}

func (r *Ring) Len() int { return r.count }
func (r *Ring) Cap() int { return len(r.buf) }

// At returns the i-th point in chronological order, 0 being the oldest.
func (r *Ring) At(i int) Point {
	return r.buf[(r.head+i)%len(r.buf)]
}

// Last returns the most recent point and false if the ring is empty.
func (r *Ring) Last() (Point, bool) {
	if r.count == 0 {
		return Point{}, false
	}
	return r.At(r.count - 1), true
}

// Points returns a copy of the contents, oldest first.
func (r *Ring) Points() []Point {
	out := make([]Point, r.count)
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// Each calls fn for every point, oldest first, without allocating.
func (r *Ring) Each(fn func(i int, p Point)) {
	for i := 0; i < r.count; i++ {
		fn(i, r.At(i))
	}
}

func (r *Ring) Reset() {
	r.head = 0
	r.count = 0
}
