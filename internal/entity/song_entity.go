package entity

// Song is one immutable catalog record, loaded once at process start.
// Matching attributes carry a case-normalized tag vocabulary; the remaining
// fields are presentation-only and never reach the model.
type Song struct {
	Id              string   `json:"id"`
	Artist          string   `json:"artist"`
	SongTitle       string   `json:"songTitle"`
	Album           string   `json:"album,omitempty"`
	Year            int      `json:"year,omitempty"`
	CoverURL        string   `json:"coverUrl,omitempty"`
	PreviewURL      string   `json:"previewUrl,omitempty"`
	Mood            []string `json:"mood"`
	TimeOfDay       []string `json:"timeOfDay"`
	Weather         []string `json:"weather"`
	Season          []string `json:"season"`
	Activity        []string `json:"activity"`
	Energy          string   `json:"energy"`
	Occasions       []string `json:"occasions"`
	EmotionalImpact string   `json:"emotionalImpact"`
}
