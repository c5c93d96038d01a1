package models

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another document. The API returns references either
// as a bare identifier or as a populated object; both decode into Ref.
// A Ref is always encoded back as its bare identifier.
type Ref struct {
	ID   string
	Name string
}

// RefTo returns a Ref pointing at id.
func RefTo(id string) Ref {
	return Ref{ID: id}
}

// IsZero reports whether the reference is unset. Used by omitzero.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}

	var populated struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &populated); err != nil {
		return err
	}
	*r = Ref{ID: populated.ID, Name: populated.Name}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// String returns the name when the reference was populated, the identifier
// otherwise.
func (r Ref) String() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}
