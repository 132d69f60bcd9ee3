package identity

import (
	"time"
)

// Store is the persistence capability behind visitor identity and the
// cart snapshot. In a browser this would be cookies; server-side hosts
// back it with whatever session storage they already have. Values
// expire after their ttl and read back as absent.
//
// Implementations are not expected to report failures: a value that
// could not be written simply never reads back.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
	Delete(key string)
}
