package models

// SchemaVersion is the import bundle schema version.
const SchemaVersion = "0.1"

// AutomatorVersion is the automator config version.
const AutomatorVersion = "0.2.0"

// Bundle is one JSON import document for a destination number.
type Bundle struct {
	Data          []ContentRecord `json:"data"`
	SchemaVersion string          `json:"schema_version"`
}

// ContentRecord is a single exported question and answer.
type ContentRecord struct {
	Answer                string      `json:"answer"`
	AttachmentMediaObject any         `json:"attachment_media_object"`
	AttachmentMediaType   *string     `json:"attachment_media_type"`
	AttachmentMimeType    *string     `json:"attachment_mime_type"`
	AttachmentURI         *string     `json:"attachment_uri"`
	Automators            []Automator `json:"automators"`
	IsDeleted             bool        `json:"is_deleted"`
	Language              string      `json:"language"`
	Question              string      `json:"question"`
}

// Automator is a platform automation rule.
type Automator struct {
	Config    AutomatorConfig `json:"config"`
	Enabled   bool            `json:"enabled"`
	IsDeleted bool            `json:"is_deleted"`
	Name      string          `json:"name"`
}

// AutomatorConfig wraps the automation data with its version.
type AutomatorConfig struct {
	Data    AutomatorData `json:"data"`
	Version string        `json:"version"`
}

// AutomatorData lists the actions run when the triggers match.
type AutomatorData struct {
	Actions  []Action  `json:"actions"`
	Operator string    `json:"operator"`
	Triggers []Trigger `json:"triggers"`
}

// Action types.
const (
	ActionReply         = "reply"
	ActionUpdateContact = "update_contact"
)

// Action is an automator action.
type Action struct {
	ActionParams *ContactUpdate `json:"action_params,omitempty"`
	ActionType   string         `json:"action_type"`
}

// ContactUpdate sets a contact field.
type ContactUpdate struct {
	ContactFieldName  string `json:"contact_field_name"`
	ContactFieldValue string `json:"contact_field_value"`
}

// Trigger types.
const (
	TriggerMessageInbound         = "message_inbound"
	TriggerMessageInboundCatchAll = "message_inbound_catch_all"
)

// Trigger is an automator trigger. TriggerParams is one of
// ContactFieldMatch, ExactMatch or ExactMatches.
type Trigger struct {
	TriggerParams any    `json:"trigger_params"`
	TriggerType   string `json:"trigger_type"`
}

// ContactFieldMatch matches on a contact field. A nil value matches contacts without the field.
type ContactFieldMatch struct {
	ContactFieldMatch string  `json:"contact_field_match"`
	ContactFieldName  string  `json:"contact_field_name"`
	ContactFieldValue *string `json:"contact_field_value"`
}

// ExactMatch matches inbound text against a single keyword.
type ExactMatch struct {
	ExactMatch string `json:"exact_match"`
}

// ExactMatches matches inbound text against any of several keywords.
type ExactMatches struct {
	ExactMatches []string `json:"exact_matches"`
}

// ExportStats summarizes an export run.
type ExportStats struct {
	Destinations int
	Languages    int
	Sheets       int
	Content      int
	Automators   int
}
