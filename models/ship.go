package models

import "time"

// ShipType classifies a vessel.
type ShipType string

const (
	ShipCargo     ShipType = "cargo"
	ShipContainer ShipType = "container"
	ShipTanker    ShipType = "tanker"
	ShipPassenger ShipType = "passenger"
	ShipFishing   ShipType = "fishing"
	ShipOther     ShipType = "other"
)

// Ship is a vessel registered with the port.
type Ship struct {
	// ID is the server-assigned document identifier.
	ID string `json:"_id,omitempty"`

	Name string `json:"name"`

	// IMONumber is the seven-digit IMO ship identification number.
	IMONumber string `json:"imoNumber,omitempty"`

	Type ShipType `json:"type,omitempty"`

	// Flag is the country of registration.
	Flag string `json:"flag,omitempty"`

	// Length is the overall length in meters.
	Length float64 `json:"length,omitempty"`

	// Draft is the maximum draft in meters.
	Draft float64 `json:"draft,omitempty"`

	// Owner references the user that registered the ship.
	Owner Ref `json:"owner,omitzero"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ShipSearch holds the criteria accepted by the ship search endpoint.
// Empty fields are not sent.
type ShipSearch struct {
	Query string
	Type  ShipType
	Flag  string
}

// Params returns the search criteria as query parameters.
func (s ShipSearch) Params() map[string]string {
	params := make(map[string]string, 3)
	if s.Query != "" {
		params["q"] = s.Query
	}
	if s.Type != "" {
		params["type"] = string(s.Type)
	}
	if s.Flag != "" {
		params["flag"] = s.Flag
	}
	return params
}
