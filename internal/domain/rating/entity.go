package rating

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	id        uuid.UUID
	userID    uuid.UUID
	venueID   uuid.UUID
	score     Score
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewRating(userID, venueID uuid.UUID, score int, comment string, now time.Time) (*Rating, error) {
	s, err := NewScore(score)
	if err != nil {
		return nil, err
	}
	c, err := NewComment(comment)
	if err != nil {
		return nil, err
	}

	return &Rating{
		id:        uuid.New(),
		userID:    userID,
		venueID:   venueID,
		score:     s,
		comment:   c,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRating(id, userID, venueID uuid.UUID, score int, comment string, createdAt, updatedAt time.Time) *Rating {
	return &Rating{
		id:        id,
		userID:    userID,
		venueID:   venueID,
		score:     Score{value: score},
		comment:   Comment{text: comment},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) UserID() uuid.UUID    { return r.userID }
func (r *Rating) VenueID() uuid.UUID   { return r.venueID }
func (r *Rating) Score() Score         { return r.score }
func (r *Rating) Comment() Comment     { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
func (r *Rating) UpdatedAt() time.Time { return r.updatedAt }

// IsOwnedBy is the only ownership check; callers report a foreign rating as not found.
func (r *Rating) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Update applies the non-nil fields. Nothing changes when validation fails.
func (r *Rating) Update(score *int, comment *string, now time.Time) error {
	s := r.score
	if score != nil {
		v, err := NewScore(*score)
		if err != nil {
			return err
		}
		s = v
	}

	c := r.comment
	if comment != nil {
		v, err := NewComment(*comment)
		if err != nil {
			return err
		}
		c = v
	}

	r.score = s
	r.comment = c
	r.updatedAt = now
	return nil
}
