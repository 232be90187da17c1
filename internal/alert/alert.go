// Package alert queues flash messages from one request for display on the
// next one.
package alert

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TempKey is the store key under which pending alerts are kept.
const TempKey = "AlertTempKey"

// ErrUnknownStyle is returned when a style name is not recognised.
var ErrUnknownStyle = errors.New("unknown alert style")

// Style selects the banner colour of an alert.
type Style int

const (
	StylePrimary Style = iota
	StyleSecondary
	StyleSuccess
	StyleDanger
	StyleWarning
	StyleInfo
	StyleLight
	StyleDark
)

var styleNames = [...]string{
	StylePrimary:   "primary",
	StyleSecondary: "secondary",
	StyleSuccess:   "success",
	StyleDanger:    "danger",
	StyleWarning:   "warning",
	StyleInfo:      "info",
	StyleLight:     "light",
	StyleDark:      "dark",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// Class returns the banner CSS class, e.g. "alert-danger".
func (s Style) Class() string {
	return "alert-" + s.String()
}

// ParseStyle maps a style name to its Style.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return StylePrimary, fmt.Errorf("%w %q", ErrUnknownStyle, name)
}

func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Style) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseStyle(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Alert is a single flash message.
type Alert struct {
	Style       Style  `json:"style"`
	Heading     string `json:"heading,omitempty"`
	Message     string `json:"message"`
	Dismissable bool   `json:"dismissable"`
}
