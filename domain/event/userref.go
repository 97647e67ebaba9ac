package event

import "encoding/json"

// UserRef is a sender/user reference as it appears on the wire: either a
// bare id string or an embedded user object. It unmarshals to the single
// canonical identifier so no downstream code branches on shape.
type UserRef string

func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = UserRef(id)
		return nil
	}
	var embedded struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &embedded); err != nil {
		return err
	}
	*r = UserRef(embedded.ID)
	return nil
}

func (r UserRef) String() string {
	return string(r)
}
