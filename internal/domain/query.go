package domain

// Query is a resolution request. All fields are optional; an empty query
// is a legal no-match rather than an error.
type Query struct {
	ISSN  string `json:"issn,omitempty"`
	EISSN string `json:"eissn,omitempty"`
	Name  string `json:"name,omitempty"`
}

// IsEmpty reports whether the query carries no usable field.
func (q Query) IsEmpty() bool {
	return q.ISSN == "" && q.EISSN == "" && q.Name == ""
}
