package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Amount is a whole-Rupiah value. The backend sends prices either as numbers
// or as decimal strings ("15000.00"), both are accepted.
type Amount int64

func (a *Amount) UnmarshalJSON(b []byte) error {
	f, err := decodeFlexFloat(b)
	if err != nil {
		return err
	}
	*a = Amount(math.Round(f))
	return nil
}

// Km is a distance in kilometres with the same lenient decoding as Amount.
type Km float64

func (k *Km) UnmarshalJSON(b []byte) error {
	f, err := decodeFlexFloat(b)
	if err != nil {
		return err
	}
	*k = Km(f)
	return nil
}

func (k Km) String() string {
	return strconv.FormatFloat(float64(k), 'f', -1, 64)
}

func decodeFlexFloat(b []byte) (float64, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0, nil
	}
	s := strings.Trim(string(b), `"`)
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return cast.ToFloat64E(strings.TrimSpace(s))
}
