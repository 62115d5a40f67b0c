package document

// Helpers for populating optional pointer-typed fields. Optional scalars
// are pointers so that an absent value is omitted from serialization
// while an explicit zero survives the round trip.

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
