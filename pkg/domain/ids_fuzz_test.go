package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseTrackingID checks that parsing client-supplied tracking ids never
// panics and that accepted ids round-trip unchanged.
func FuzzParseTrackingID(f *testing.F) {
	f.Add("")
	f.Add("DEMO001")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("'; DROP TABLE deliveries;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("TRK\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseTrackingID(input)
		if err != nil {
			return
		}

		roundTrip, err := ParseTrackingID(id.String())
		if err != nil {
			t.Errorf("accepted id failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Error("round-trip changed id value")
		}
		if !utf8.ValidString(string(id)) {
			t.Error("non-UTF8 input was accepted")
		}
		if utf8.RuneCountInString(string(id)) > MaxTrackingIDLength {
			t.Error("overlong id was accepted")
		}
	})
}
