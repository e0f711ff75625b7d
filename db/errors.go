package db

import "errors"

// ErrInvalidDate is returned by ParseDate when its argument is not a
// YYYY-MM-DD date.
var ErrInvalidDate = errors.New("db: invalid date")
