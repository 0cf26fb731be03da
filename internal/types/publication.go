package types

// Publication is one trusted catalog entry for a NIST publication.
// Records are loaded once at process start and shared read-only.
type Publication struct {
	ID      string `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	URL     string `json:"url" validate:"required,url"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Version string `json:"version" validate:"required"`
	Errata  string `json:"errata,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status  string `json:"status,omitempty"`

	// Content holds the extracted publication text after the fetch
	// step; empty until the pipeline populates it.
	Content string `json:"content,omitempty"`
}

// IsDraft reports whether the publication is still in draft status.
func (p *Publication) IsDraft() bool {
	return p.Status == "Draft"
}
