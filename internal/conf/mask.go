package conf

import (
	"fmt"
	"strconv"
	"strings"
)

// Mask is a byte mask written in octal (0377, o377, 0o377), hex (0xff)
// or decimal (255).
type Mask uint8

func ParseMask(s string) (Mask, error) {
	s = strings.TrimSpace(s)
	var (
		v   uint64
		err error
	)
	switch {
	case s == "":
		err = fmt.Errorf("empty")
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		v, err = strconv.ParseUint(s[2:], 8, 32)
	case s[0] == 'o':
		v, err = strconv.ParseUint(s[1:], 8, 32)
	case s[0] == '0':
		v, err = strconv.ParseUint(s, 8, 32)
	default:
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil || v > 0xFF {
		return 0, fmt.Errorf("value (%s) is not an integer in the range of 0 to 255 (0377)", s)
	}
	return Mask(v), nil
}

// ParseUint32 parses a decimal option value.
func ParseUint32(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("value (%s) is not an integer in the range of 0 to %d", s, uint32(0xFFFFFFFF))
	}
	return uint32(v), nil
}

func (m *Mask) UnmarshalText(b []byte) error {
	v, err := ParseMask(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// UnmarshalYAML keeps octal spellings intact; a plain YAML integer would
// read 0377 as decimal 377.
func (m *Mask) UnmarshalYAML(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"'`)
	return m.UnmarshalText([]byte(s))
}

// UnmarshalTOML accepts TOML integers (0o377, 0xff, 255) and strings ("0377").
func (m *Mask) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		if t < 0 || t > 0xFF {
			return fmt.Errorf("value (%d) is not an integer in the range of 0 to 255 (0377)", t)
		}
		*m = Mask(t)
		return nil
	case string:
		return m.UnmarshalText([]byte(t))
	}
	return fmt.Errorf("mask must be an integer or a string, got %T", v)
}

// String, Set and Type make *Mask a pflag.Value.
func (m *Mask) String() string {
	if m == nil {
		return "0377"
	}
	return fmt.Sprintf("0%o", uint8(*m))
}

func (m *Mask) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

func (m *Mask) Type() string {
	return "mask"
}
