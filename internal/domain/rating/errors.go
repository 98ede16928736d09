package rating

import "court-reservation/internal/pkg/errs"

var (
	ErrInvalidScore      = errs.NewKind(errs.KindInvalidScore, "score must be an integer between 1 and 5")
	ErrCommentTooLong    = errs.NewKind(errs.KindInvalidComment, "comment exceeds maximum length")
	ErrRatingNotFound    = errs.NewKind(errs.KindNotFoundRating, "rating not found")
	ErrAlreadyRated      = errs.NewKind(errs.KindConflictAlreadyRated, "user has already rated this venue")
	ErrNoEligibleBooking = errs.NewKind(errs.KindForbiddenNoEligibleBooking, "a past confirmed or completed booking at this venue is required to rate it")
)
