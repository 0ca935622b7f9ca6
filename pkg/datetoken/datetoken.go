// Package datetoken converts calendar dates to and from the month-day-year
// tokens used to name journal entry files.
package datetoken

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrDecode is matched by every error returned from Decode.
var ErrDecode = errors.New("datetoken: malformed date token")

// DecodeError reports a token that does not name a calendar date.
type DecodeError struct {
	Token  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("datetoken: %q: %s", e.Token, e.Reason)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Token is a "<month>-<day>-<year>" date, month 1-based, no padding.
type Token string

// Encode renders the local calendar date of t as a Token.
func Encode(t time.Time) Token {
	y, m, d := t.Date()
	return Token(fmt.Sprintf("%d-%d-%d", int(m), d, y))
}

func (t Token) String() string {
	return string(t)
}

// Date decodes the token. See Decode.
func (t Token) Date() (time.Time, error) {
	return Decode(string(t))
}

// Decode parses a token, optionally followed by a file extension
// ("12-28-2023.md"), into midnight UTC of that calendar date.
func Decode(s string) (time.Time, error) {
	fields := strings.SplitN(s, "-", 3)
	if len(fields) < 3 {
		return time.Time{}, &DecodeError{Token: s, Reason: "want month-day-year"}
	}
	year := fields[2]
	if i := strings.IndexByte(year, '.'); i >= 0 {
		year = year[:i]
	}

	var nums [3]int
	for i, f := range []string{fields[0], fields[1], year} {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return time.Time{}, &DecodeError{Token: s, Reason: fmt.Sprintf("%q is not a number", f)}
		}
		nums[i] = int(n)
	}
	month, day, y := nums[0], nums[1], nums[2]

	if month < 1 || month > 12 {
		return time.Time{}, &DecodeError{Token: s, Reason: fmt.Sprintf("month %d out of range", month)}
	}
	date := time.Date(y, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (April 31 becomes May 1).
	if date.Year() != y || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, &DecodeError{Token: s, Reason: fmt.Sprintf("no day %d in %s %d", day, time.Month(month), y)}
	}
	return date, nil
}

// Compare orders two tokens chronologically, returning -1, 0 or +1.
// A token that fails to decode sorts before every valid one; two
// malformed tokens compare equal.
func Compare(a, b string) int {
	da, errA := Decode(a)
	db, errB := Decode(b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	default:
		return 0
	}
}
