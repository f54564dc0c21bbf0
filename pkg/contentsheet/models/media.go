package models

// MediaEntry is an attachment from the remote media catalog.
type MediaEntry struct {
	Question              string  `json:"question"`
	AttachmentMediaObject any     `json:"attachment_media_object"`
	AttachmentMediaType   *string `json:"attachment_media_type"`
	AttachmentMimeType    *string `json:"attachment_mime_type"`
	AttachmentURI         *string `json:"attachment_uri"`
}

// MediaCatalog maps language-stripped question ids to media entries.
type MediaCatalog map[string]MediaEntry
