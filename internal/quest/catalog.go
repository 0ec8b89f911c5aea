package quest

import "fmt"

// optionCount is fixed by the content format: every riddle offers four choices.
const optionCount = 4

// Catalog is the static ordered riddle set of the linear variant.
type Catalog struct {
	riddles []Riddle
}

// NewCatalog validates the riddle definitions and returns a catalog.
// A malformed riddle is a content bug, rejected here rather than at play
// time.
func NewCatalog(riddles []Riddle) (*Catalog, error) {
	if len(riddles) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one riddle")
	}
	seen := make(map[int]bool, len(riddles))
	for _, r := range riddles {
		if err := validateRiddle(r); err != nil {
			return nil, err
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("riddle %d: duplicate id", r.ID)
		}
		seen[r.ID] = true
	}
	return &Catalog{riddles: riddles}, nil
}

func validateRiddle(r Riddle) error {
	if len(r.Options) != optionCount {
		return fmt.Errorf("riddle %d: expected %d options, got %d", r.ID, optionCount, len(r.Options))
	}
	if r.CorrectAnswer < 0 || r.CorrectAnswer >= len(r.Options) {
		return fmt.Errorf("riddle %d: correct answer index %d out of range", r.ID, r.CorrectAnswer)
	}
	if r.Points <= 0 {
		return fmt.Errorf("riddle %d: points must be positive, got %d", r.ID, r.Points)
	}
	return nil
}

// Len reports the number of riddles.
func (c *Catalog) Len() int { return len(c.riddles) }

// Riddle returns the riddle at position i in play order.
func (c *Catalog) Riddle(i int) Riddle { return c.riddles[i] }

// Riddles returns the full catalog in play order.
func (c *Catalog) Riddles() []Riddle { return c.riddles }
