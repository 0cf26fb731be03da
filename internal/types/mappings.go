package types

// ControlRefs groups the control identifiers a mapping points at,
// split by framework.
type ControlRefs struct {
	SP80053  []string `json:"sp_800_53"`
	SP800171 []string `json:"sp_800_171"`
	SSDF     []string `json:"ssdf"`
}

// ControlMapping links one section of filtered content to NIST
// controls and an actionable requirement.
type ControlMapping struct {
	Section           string      `json:"section"`
	SourcePublication string      `json:"source_publication"`
	PublicationID     string      `json:"publication_id"`
	Controls          ControlRefs `json:"controls"`
	Priority          string      `json:"priority"`
	Action            string      `json:"action"`
}

// ControlMappings is the model's full mapping output after schema
// validation and reference filtering.
type ControlMappings struct {
	Mappings []ControlMapping `json:"mappings"`
}
