package tessellate

import (
	"math"
	"sort"

	"github.com/gogpu/textmesh/geom"
)

// Earcut is an ear-clipping triangulator. Holes are merged into the outer
// ring through bridge edges before clipping, and self-touching or slightly
// broken rings are recovered by local intersection curing and polygon
// splitting.
type Earcut struct{}

// vertex is a node of the circular doubly linked ring being clipped.
type vertex struct {
	i          uint32
	x, y       float64
	prev, next *vertex
	steiner    bool
}

// Triangulate implements Triangulator.
func (Earcut) Triangulate(p Polygon) ([]uint32, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	outer := ring(p.Outer, 0, true)
	if outer == nil || outer.next == outer.prev {
		return nil, nil
	}

	if len(p.Holes) > 0 {
		outer = eliminateHoles(p, outer)
	}

	var tris []uint32
	clip(outer, &tris, 0)
	return tris, nil
}

// ring builds a circular list from c with indices starting at base.
// The list is wound counter-clockwise when ccw is true.
func ring(c geom.Contour, base uint32, ccw bool) *vertex {
	var last *vertex
	if ccw == (c.SignedArea() > 0) {
		for i, pt := range c {
			last = insertVertex(base+uint32(i), pt, last)
		}
	} else {
		for i := len(c) - 1; i >= 0; i-- {
			last = insertVertex(base+uint32(i), c[i], last)
		}
	}
	if last != nil && equals(last, last.next) {
		removeVertex(last)
		last = last.next
	}
	return last
}

// clip walks the ring cutting ears. When a full lap finds none, it retries
// after filtering collinear points, then after curing local
// self-intersections, and finally by splitting the ring in two.
func clip(ear *vertex, tris *[]uint32, pass int) {
	if ear == nil {
		return
	}
	stop := ear
	for ear.prev != ear.next {
		prev, next := ear.prev, ear.next
		if isEar(ear) {
			*tris = append(*tris, prev.i, ear.i, next.i)
			removeVertex(ear)
			ear = next.next
			stop = next.next
			continue
		}
		ear = next
		if ear == stop {
			switch pass {
			case 0:
				clip(filterPoints(ear, nil), tris, 1)
			case 1:
				ear = cureLocalIntersections(filterPoints(ear, nil), tris)
				clip(ear, tris, 2)
			case 2:
				splitClip(ear, tris)
			}
			return
		}
	}
}

func isEar(ear *vertex) bool {
	a, b, c := ear.prev, ear, ear.next
	if area(a, b, c) >= 0 {
		return false // reflex
	}
	for p := c.next; p != a; p = p.next {
		if pointInTriangleExceptFirst(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) &&
			area(p.prev, p, p.next) >= 0 {
			return false
		}
	}
	return true
}

// filterPoints removes duplicate and collinear points between start and end.
func filterPoints(start, end *vertex) *vertex {
	if start == nil {
		return start
	}
	if end == nil {
		end = start
	}
	p := start
	for {
		again := false
		if !p.steiner && (equals(p, p.next) || area(p.prev, p, p.next) == 0) {
			removeVertex(p)
			p = p.prev
			end = p
			if p == p.next {
				break
			}
			again = true
		} else {
			p = p.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

func cureLocalIntersections(start *vertex, tris *[]uint32) *vertex {
	p := start
	for {
		a, b := p.prev, p.next.next
		if !equals(a, b) && intersects(a, p, p.next, b) && locallyInside(a, b) && locallyInside(b, a) {
			*tris = append(*tris, a.i, p.i, b.i)
			removeVertex(p)
			removeVertex(p.next)
			p = b
			start = b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

// splitClip looks for a valid diagonal, splits the ring along it and clips
// both halves independently.
func splitClip(start *vertex, tris *[]uint32) {
	a := start
	for {
		for b := a.next.next; b != a.prev; b = b.next {
			if a.i != b.i && isValidDiagonal(a, b) {
				c := splitPolygon(a, b)
				a = filterPoints(a, a.next)
				c = filterPoints(c, c.next)
				clip(a, tris, 0)
				clip(c, tris, 0)
				return
			}
		}
		a = a.next
		if a == start {
			return
		}
	}
}

// eliminateHoles links every hole into the outer ring, leftmost hole first.
func eliminateHoles(p Polygon, outer *vertex) *vertex {
	base := uint32(len(p.Outer))
	queue := make([]*vertex, 0, len(p.Holes))
	for _, h := range p.Holes {
		list := ring(h, base, false)
		base += uint32(len(h))
		if list == nil {
			continue
		}
		if list == list.next {
			list.steiner = true
		}
		queue = append(queue, leftmost(list))
	}
	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].x != queue[j].x {
			return queue[i].x < queue[j].x
		}
		return queue[i].y < queue[j].y
	})
	for _, h := range queue {
		outer = eliminateHole(h, outer)
	}
	return outer
}

func eliminateHole(hole, outer *vertex) *vertex {
	bridge := findHoleBridge(hole, outer)
	if bridge == nil {
		return outer
	}
	reverse := splitPolygon(bridge, hole)
	filterPoints(reverse, reverse.next)
	return filterPoints(bridge, bridge.next)
}

// findHoleBridge finds an outer ring vertex visible from the hole's
// leftmost point.
func findHoleBridge(hole, outer *vertex) *vertex {
	hx, hy := hole.x, hole.y
	qx := math.Inf(-1)
	var m *vertex

	p := outer
	for {
		if hy <= p.y && hy >= p.next.y && p.next.y != p.y {
			x := p.x + (hy-p.y)*(p.next.x-p.x)/(p.next.y-p.y)
			if x <= hx && x > qx {
				qx = x
				m = p.next
				if p.x < p.next.x {
					m = p
				}
				if x == hx {
					return m
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}
	if m == nil {
		return nil
	}

	// Among points inside the triangle (hole, segment hit, m), take the one
	// with the smallest angle to the ray so the bridge does not cross edges.
	stop := m
	mx, my := m.x, m.y
	tanMin := math.Inf(1)
	p = m
	for {
		if hx >= p.x && p.x >= mx && hx != p.x {
			ax, cx := qx, hx
			if hy < my {
				ax, cx = hx, qx
			}
			if pointInTriangle(ax, hy, mx, my, cx, hy, p.x, p.y) {
				tan := math.Abs(hy-p.y) / (hx - p.x)
				if locallyInside(p, hole) &&
					(tan < tanMin || (tan == tanMin && (p.x > m.x || (p.x == m.x && sectorContainsSector(m, p))))) {
					m = p
					tanMin = tan
				}
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

func sectorContainsSector(m, p *vertex) bool {
	return area(m.prev, m, p.prev) < 0 && area(p.next, m, m.next) < 0
}

func leftmost(start *vertex) *vertex {
	p, left := start, start
	for {
		if p.x < left.x || (p.x == left.x && p.y < left.y) {
			left = p
		}
		p = p.next
		if p == start {
			return left
		}
	}
}

func isValidDiagonal(a, b *vertex) bool {
	if a.next.i == b.i || a.prev.i == b.i || intersectsPolygon(a, b) {
		return false
	}
	if locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) &&
		(area(a.prev, a, b.prev) != 0 || area(a, b.prev, b) != 0) {
		return true
	}
	return equals(a, b) && area(a.prev, a, a.next) > 0 && area(b.prev, b, b.next) > 0
}

// area returns twice the signed area of triangle pqr, negative when the
// turn p->q->r is counter-clockwise.
func area(p, q, r *vertex) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

func equals(a, b *vertex) bool {
	return a.x == b.x && a.y == b.y
}

func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

func pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return !(ax == px && ay == py) && pointInTriangle(ax, ay, bx, by, cx, cy, px, py)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func onSegment(p, q, r *vertex) bool {
	return q.x <= math.Max(p.x, r.x) && q.x >= math.Min(p.x, r.x) &&
		q.y <= math.Max(p.y, r.y) && q.y >= math.Min(p.y, r.y)
}

func intersects(p1, q1, p2, q2 *vertex) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}
	// collinear cases
	return (o1 == 0 && onSegment(p1, p2, q1)) ||
		(o2 == 0 && onSegment(p1, q2, q1)) ||
		(o3 == 0 && onSegment(p2, p1, q2)) ||
		(o4 == 0 && onSegment(p2, q1, q2))
}

func intersectsPolygon(a, b *vertex) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i && intersects(p, p.next, a, b) {
			return true
		}
		p = p.next
		if p == a {
			return false
		}
	}
}

func locallyInside(a, b *vertex) bool {
	if area(a.prev, a, a.next) < 0 {
		return area(a, b, a.next) >= 0 && area(a, a.prev, b) >= 0
	}
	return area(a, b, a.prev) < 0 || area(a, a.next, b) < 0
}

func middleInside(a, b *vertex) bool {
	p := a
	inside := false
	px, py := (a.x+b.x)/2, (a.y+b.y)/2
	for {
		if (p.y > py) != (p.next.y > py) && p.next.y != p.y &&
			px < (p.next.x-p.x)*(py-p.y)/(p.next.y-p.y)+p.x {
			inside = !inside
		}
		p = p.next
		if p == a {
			return inside
		}
	}
}

// splitPolygon links a to b with a bridge, duplicating both endpoints so the
// ring stays a single loop. It returns the duplicate of b.
func splitPolygon(a, b *vertex) *vertex {
	a2 := &vertex{i: a.i, x: a.x, y: a.y}
	b2 := &vertex{i: b.i, x: b.x, y: b.y}
	an, bp := a.next, b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp

	return b2
}

func insertVertex(i uint32, pt geom.Point, last *vertex) *vertex {
	p := &vertex{i: i, x: pt.X, y: pt.Y}
	if last == nil {
		p.prev = p
		p.next = p
	} else {
		p.next = last.next
		p.prev = last
		last.next.prev = p
		last.next = p
	}
	return p
}

func removeVertex(p *vertex) {
	p.next.prev = p.prev
	p.prev.next = p.next
}
