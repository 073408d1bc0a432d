package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Price is a menu price as the upstream transports it: usually a JSON
// string, occasionally a bare number. It keeps the text form so values
// round-trip unchanged through edit and save.
type Price string

func (p Price) Empty() bool { return strings.TrimSpace(string(p)) == "" }

// Amount parses the price as a decimal.
func (p Price) Amount() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
}

func (p Price) String() string { return string(p) }

func (p *Price) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Price(strings.TrimSpace(s))
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = Price(strconv.FormatFloat(n, 'f', 2, 64))
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}
