// file: internals/helpers/reference.go
package helper

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReferenceNumber builds a human-readable reservation reference:
// prefix + compact timestamp + 4 random digits, e.g. REF202608311405220474.
func GenerateReferenceNumber(prefix string) string {
	if prefix == "" {
		prefix = "REF"
	}
	return fmt.Sprintf("%s%s%04d",
		prefix,
		time.Now().UTC().Format("20060102150405"),
		rand.Intn(10000),
	)
}
