package domain

// MoodAssessment is the questionnaire payload sent by the client.
// Only Mood is required; the remaining fields are free-form context
// passed through to the model.
type MoodAssessment struct {
	Mood        string `json:"mood" validate:"required"`
	Day         string `json:"day"`
	Energy      string `json:"energy"`
	Story       string `json:"story"`
	Preferences string `json:"preferences"`
	Activity    string `json:"activity"`
}
