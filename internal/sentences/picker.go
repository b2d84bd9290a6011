package sentences

import (
	"math/rand"
	"time"
)

// Picker selects random sentences for rounds.
type Picker struct {
	rnd  *rand.Rand
	last int
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker() *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(time.Now().UnixNano())), last: -1}
}

// Pick selects a sentence uniformly, avoiding an immediate repeat when the
// list has more than one entry.
func (p *Picker) Pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	if len(list) == 1 {
		p.last = 0
		return list[0]
	}
	idx := p.rnd.Intn(len(list))
	for idx == p.last {
		idx = p.rnd.Intn(len(list))
	}
	p.last = idx
	return list[idx]
}
