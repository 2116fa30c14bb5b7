package corpus

// Cycler rejects a value already accepted in the current cycle. A cycle
// closes after every alphabet value has been accepted once.
type Cycler struct {
	size  int
	used  [256]bool
	count int
}

func NewCycler(a *Alphabet) *Cycler {
	return &Cycler{size: a.Len()}
}

func (c *Cycler) Accept(b byte) bool {
	if c.used[b] {
		return false
	}
	c.used[b] = true
	c.count++
	if c.count == c.size {
		c.Reset()
	}
	return true
}

func (c *Cycler) Reset() {
	c.used = [256]bool{}
	c.count = 0
}

// Pending reports how many values were accepted in the open cycle.
func (c *Cycler) Pending() int {
	return c.count
}
