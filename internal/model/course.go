package model

// Course is a course document from the courses collection.
type Course struct {
	ID            string   `json:"id,omitempty" bson:"_id,omitempty"`
	Course        string   `json:"course" bson:"course"`
	Careers       []string `json:"careers" bson:"careers"`
	HigherStudies []string `json:"higherStudies" bson:"higherStudies"`
}
