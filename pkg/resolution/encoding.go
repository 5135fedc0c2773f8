package resolution

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler. Unknown identifiers are
// rejected so a bad value is never written to a project file.
func (p Preset) MarshalText() ([]byte, error) {
	if !p.Known() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Preset) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Scan implements sql.Scanner. A NULL column leaves p empty.
func (p *Preset) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = ""
		return nil
	case string:
		return p.UnmarshalText([]byte(v))
	case []byte:
		return p.UnmarshalText(v)
	default:
		return fmt.Errorf("failed to scan Preset: expected string or []byte, got %T", value)
	}
}

// Value implements driver.Valuer. The empty preset is stored as NULL.
func (p Preset) Value() (driver.Value, error) {
	if p == "" {
		return nil, nil
	}
	b, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
