package model

// Bundle is the composed recommendation response. It is recomputed per
// request and never persisted; repeated calls with unchanged inputs return
// the same bundle.
type Bundle struct {
	RecommendedStream Stream          `json:"recommendedStream,omitempty"`
	ClassLevel        string          `json:"classLevel,omitempty"`
	Courses           []Course        `json:"courses"`
	Colleges          []College       `json:"colleges"`
	Events            []TimelineEvent `json:"events"`
	Careers           []string        `json:"careers"`
	Message           string          `json:"message,omitempty"`
}
