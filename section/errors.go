package section

import "errors"

// ErrShortBuffer is returned when a fixed-record Parse function is given
// fewer bytes than the record's serialized size.
var ErrShortBuffer = errors.New("section: short buffer")
