package entity

import "errors"

// ErrAlreadyMember is returned by Members.Add when the id is already present.
var ErrAlreadyMember = errors.New("already a member")

// Members is a membership-style id set embedded in its owning entity
// (event attendees, club members). Insertion order is preserved.
type Members []int64

func (m Members) Contains(id int64) bool {
	for _, v := range m {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id unless it is already present.
func (m *Members) Add(id int64) error {
	if m.Contains(id) {
		return ErrAlreadyMember
	}
	*m = append(*m, id)
	return nil
}

func (m Members) Clone() Members {
	out := make(Members, len(m))
	copy(out, m)
	return out
}
