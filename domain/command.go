package domain

// SendRequest is the payload of a send call to the REST collaborator.
type SendRequest struct {
	RecipientID string      `json:"recipientId" validate:"required"`
	Text        string      `json:"text"`
	Type        MessageType `json:"type" validate:"required"`
	Media       *Media      `json:"media,omitempty"`
}

// UploadResult is the descriptor returned by the media upload endpoint,
// passed verbatim into the follow-up send.
type UploadResult struct {
	URL      string      `json:"url"`
	MimeType string      `json:"mimeType"`
	Size     int64       `json:"size"`
	Type     MessageType `json:"type"`
}

func (u UploadResult) AsMedia() *Media {
	return &Media{URL: u.URL, MimeType: u.MimeType, Size: u.Size}
}

// ProfileUpdate patches the caller's own profile. Nil fields are untouched.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	About *string `json:"about,omitempty" validate:"omitempty,max=139"`
	Theme *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
}
