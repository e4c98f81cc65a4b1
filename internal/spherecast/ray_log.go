package spherecast

import (
	"fmt"
	"sync/atomic"
)

type Category uint8

const (
	Hit    Category = iota // at least one root in front of the origin
	Miss                   // negative discriminant
	Behind                 // sphere intersected only behind the origin
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Behind:
		return "behind"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Classify casts r against s and reports the outcome.
func Classify(s Sphere, r Ray) Category {
	in, ok := s.Intersect(r)
	switch {
	case !ok:
		return Miss
	case in.Hit():
		return Hit
	default:
		return Behind
	}
}

// Stats counts ray outcomes; safe for concurrent use.
type Stats struct {
	counts [3]atomic.Int64
}

func (s *Stats) add(c Category)         { s.counts[c].Add(1) }
func (s *Stats) Count(c Category) int64 { return s.counts[c].Load() }
func (s *Stats) Total() int64           { return s.Count(Hit) + s.Count(Miss) + s.Count(Behind) }
func (s *Stats) String() string {
	return fmt.Sprintf("hit=%d miss=%d behind=%d", s.Count(Hit), s.Count(Miss), s.Count(Behind))
}
