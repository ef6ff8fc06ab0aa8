package repository

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateQuotationRef produces a human-readable reference for an exported
// quotation, e.g. "QT-KR48213". References are not persisted; each export
// gets a fresh one.
func GenerateQuotationRef() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	prefix := string(letters[rng.Intn(len(letters))]) + string(letters[rng.Intn(len(letters))])
	number := rng.Intn(90000) + 10000

	return fmt.Sprintf("QT-%s%d", prefix, number)
}
