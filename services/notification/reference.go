package notification

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingReference generates a reference of the form
// BOOK-<epoch millis>-<5 random base36 chars, uppercased>.
func NewBookingReference() string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return fmt.Sprintf("BOOK-%d-%s", time.Now().UnixMilli(), suffix)
}
