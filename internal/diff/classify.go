package diff

// classifier assigns dense ids to line contents in first-seen order. A classifier lives for a single DiffLines call.
type classifier struct {
	nextID    uint64
	uniqueIDs map[string]uint64
}

func newClassifier() *classifier {
	return &classifier{uniqueIDs: make(map[string]uint64)}
}

// classify returns the id for record, assigning the next id if record has not been seen.
func (c *classifier) classify(record string) uint64 {
	if id, ok := c.uniqueIDs[record]; ok {
		return id
	}
	id := c.nextID
	c.nextID++
	c.uniqueIDs[record] = id
	return id
}

// classifyAll returns the ids for records.
func (c *classifier) classifyAll(records []string) []uint64 {
	ids := make([]uint64, len(records))
	for i, r := range records {
		ids[i] = c.classify(r)
	}
	return ids
}
