package eventID

import (
	"github.com/samborkent/uuidv7"
)

// New returns a fresh match event ID. Version 7 UUIDs start with a
// millisecond timestamp, so IDs created later sort after earlier ones.
func New() string {
	return uuidv7.New().String()
}
