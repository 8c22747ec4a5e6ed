package pgconv

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsecondsPerMinute = int64(time.Minute / time.Microsecond)

// DateToPgtype keeps only the calendar part of t.
func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

// DateFromPgtype returns the zero time for NULL.
func DateFromPgtype(pd pgtype.Date) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	return pd.Time
}

func MinutesToPgtypeTime(minutes int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(minutes) * microsecondsPerMinute, Valid: true}
}

// MinutesFromPgtypeTime truncates seconds. NULL reads as midnight.
func MinutesFromPgtypeTime(pt pgtype.Time) int {
	if !pt.Valid {
		return 0
	}
	return int(pt.Microseconds / microsecondsPerMinute)
}

// OptionalStringToPgtype stores the empty string as NULL.
func OptionalStringToPgtype(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}
