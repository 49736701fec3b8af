package rrule

// headSlot caches one sub-iterator's pending value so the compound
// iterator can peek it repeatedly across the merge steps below
// without re-consuming it from the underlying iterator.
type headSlot struct {
	val    DateValue
	has    bool
	filled bool
}

// compoundIterator streams the union of included iterators minus the
// excluded ones, in strictly ascending order.
type compoundIterator struct {
	included []RecurrenceIterator
	excluded []RecurrenceIterator
	incHeads []headSlot
	excHeads []headSlot
	nextVal  *DateValue
	done     bool
}

// NewCompoundIterator builds the merge of included minus excluded.
func NewCompoundIterator(included, excluded []RecurrenceIterator) RecurrenceIterator {
	return &compoundIterator{
		included: included,
		excluded: excluded,
		incHeads: make([]headSlot, len(included)),
		excHeads: make([]headSlot, len(excluded)),
	}
}

// Join returns the union of a and b as a single RecurrenceIterator.
func Join(a RecurrenceIterator, b ...RecurrenceIterator) RecurrenceIterator {
	all := append([]RecurrenceIterator{a}, b...)
	return NewCompoundIterator(all, nil)
}

// Except returns included with everything excluded removes.
func Except(included, excluded RecurrenceIterator) RecurrenceIterator {
	return NewCompoundIterator([]RecurrenceIterator{included}, []RecurrenceIterator{excluded})
}

func (c *compoundIterator) incAt(i int) (DateValue, bool) {
	s := &c.incHeads[i]
	if !s.filled {
		s.val, s.has = c.included[i].Next()
		s.filled = true
	}
	return s.val, s.has
}

func (c *compoundIterator) consumeInc(i int) { c.incHeads[i] = headSlot{} }

func (c *compoundIterator) excAt(i int) (DateValue, bool) {
	s := &c.excHeads[i]
	if !s.filled {
		s.val, s.has = c.excluded[i].Next()
		s.filled = true
	}
	return s.val, s.has
}

func (c *compoundIterator) consumeExc(i int) { c.excHeads[i] = headSlot{} }

func (c *compoundIterator) computeNext() {
	if c.done || c.nextVal != nil {
		return
	}
	for {
		// 1. minimum head across included.
		minIdx := -1
		var h DateValue
		for i := range c.included {
			v, ok := c.incAt(i)
			if !ok {
				continue
			}
			if minIdx == -1 || v.Before(h) {
				minIdx, h = i, v
			}
		}
		if minIdx == -1 {
			c.done = true
			return
		}

		// 2. drop duplicates: advance every included iterator at h.
		for i := range c.included {
			if v, ok := c.incAt(i); ok && v.Equal(h) {
				c.consumeInc(i)
			}
		}

		// 3. advance excluded iterators strictly behind h.
		for i := range c.excluded {
			for {
				v, ok := c.excAt(i)
				if !ok || !v.Before(h) {
					break
				}
				c.consumeExc(i)
			}
		}

		// 4. if h is excluded, discard and retry.
		excludedHere := false
		for i := range c.excluded {
			if v, ok := c.excAt(i); ok && v.Equal(h) {
				excludedHere = true
			}
		}
		if excludedHere {
			continue
		}

		// 5. emit h.
		val := h
		c.nextVal = &val
		return
	}
}

func (c *compoundIterator) HasNext() bool {
	c.computeNext()
	return c.nextVal != nil
}

func (c *compoundIterator) Next() (DateValue, bool) {
	if !c.HasNext() {
		return DateValue{}, false
	}
	d := *c.nextVal
	c.nextVal = nil
	return d, true
}

// AdvanceTo propagates to every iterator in the included and excluded
// sets,.6, then invalidates cached heads so the next
// pull re-reads them.
func (c *compoundIterator) AdvanceTo(t DateValue) {
	for i := range c.included {
		c.included[i].AdvanceTo(t)
		c.incHeads[i] = headSlot{}
	}
	for i := range c.excluded {
		c.excluded[i].AdvanceTo(t)
		c.excHeads[i] = headSlot{}
	}
	c.nextVal = nil
	c.done = false
}
