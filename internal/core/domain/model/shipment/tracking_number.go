package shipment

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
)

const (
	// trackingNumberPrefix makes tracking numbers recognizable at a glance.
	trackingNumberPrefix = "TRK-"

	// trackingNumberAlphabet is the character set for the generated suffix.
	// Upper-case letters and digits keep the number human-typeable.
	trackingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// trackingNumberSuffixLength gives 36^8 (~2.8 trillion) possible suffixes.
	trackingNumberSuffixLength = 8

	// minTrackingNumberLength is the shortest lookup input accepted after
	// normalization.
	minTrackingNumberLength = 5
)

// ErrTrackingNumberIsNotConstructed indicates that a TrackingNumber was not
// created through GenerateTrackingNumber or TrackingNumberFromInput.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via GenerateTrackingNumber or TrackingNumberFromInput",
)

// TrackingNumber is the public, human-enterable identifier of a shipment,
// independent of the internal storage id.
//
// Generation draws the suffix from a cryptographic entropy source and
// performs no storage lookup: collision probability is accepted as
// negligible, and the real uniqueness guarantee is the unique index on the
// shipments table, which turns the astronomically unlikely collision into a
// conflict error at creation time. This keeps shipment creation a single
// write.
//
// Lookup input is normalized (trimmed, upper-cased) so recipients can type
// " trk-ab12cd34 " and still find their shipment.
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a fresh tracking number of the form
// TRK- followed by eight characters from [A-Z0-9].
func GenerateTrackingNumber() (TrackingNumber, error) {
	suffix := make([]byte, trackingNumberSuffixLength)
	alphabetSize := big.NewInt(int64(len(trackingNumberAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return TrackingNumber{}, fmt.Errorf("reading entropy for tracking number: %w", err)
		}
		suffix[i] = trackingNumberAlphabet[n.Int64()]
	}

	return TrackingNumber{value: trackingNumberPrefix + string(suffix)}, nil
}

// TrackingNumberFromInput normalizes raw caller input into a TrackingNumber.
// Normalization trims surrounding whitespace and upper-cases the rest, making
// lookups case- and whitespace-insensitive. Input shorter than five
// characters after normalization is rejected with a validation error.
func TrackingNumberFromInput(raw string) (TrackingNumber, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if len(normalized) < minTrackingNumberLength {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q is shorter than %d characters", normalized, minTrackingNumberLength),
		)
	}

	return TrackingNumber{value: normalized}, nil
}

// String returns the normalized tracking number, e.g. "TRK-AB12CD34".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks if the TrackingNumber was properly constructed.
// Returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
