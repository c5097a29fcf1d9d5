package reviews

import "time"

// Board keeps reviews submitted in this session, per product id. Submitted
// reviews are shown after the fetched ones. Not safe for concurrent use.
type Board struct {
	now       func() time.Time
	submitted map[string][]Review
}

func NewBoard() *Board {
	return &Board{now: time.Now, submitted: map[string][]Review{}}
}

// Submit validates sub and records it for productID.
func (b *Board) Submit(productID string, sub Submission) (Review, error) {
	review, err := New(sub, b.now())
	if err != nil {
		return Review{}, err
	}
	b.submitted[productID] = append(b.submitted[productID], review)
	return review, nil
}

// Submitted returns a copy of the reviews submitted for productID.
func (b *Board) Submitted(productID string) []Review {
	src := b.submitted[productID]
	out := make([]Review, len(src))
	copy(out, src)
	return out
}

// Merge appends the submitted reviews for productID to fetched.
func (b *Board) Merge(productID string, fetched []Review) []Review {
	submitted := b.submitted[productID]
	out := make([]Review, 0, len(fetched)+len(submitted))
	out = append(out, fetched...)
	return append(out, submitted...)
}
