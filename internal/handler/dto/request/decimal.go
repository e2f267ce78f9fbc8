package request

import (
	"bytes"
	"encoding/json"
)

// Decimal keeps a price as text. Clients may send it as a JSON number or a string.
type Decimal string

type DecimalError struct{}

func (e *DecimalError) Error() string { return "A valid number is required." }

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return &DecimalError{}
		}
		*d = Decimal(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return &DecimalError{}
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) String() string {
	return string(d)
}
