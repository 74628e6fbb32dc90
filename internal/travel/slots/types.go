package slots

// Delta is one extraction pass over the recent conversation.
// Empty strings and zero numbers mean the model reported null.
type Delta struct {
	Destination        string          `json:"destination"`
	Dates              string          `json:"dates"`
	DurationDays       int             `json:"durationDays"`
	DateValidation     *DateValidation `json:"dateValidation,omitempty"`
	Preferences        []string        `json:"preferences"`
	Accommodation      string          `json:"accommodation"`
	Transportation     string          `json:"transportation"`
	SpecialRequests    string          `json:"specialRequests"`
	CurrentTopic       string          `json:"currentTopic"`
	RelatedToPrevious  bool            `json:"relatedToPrevious"`
	UserInterests      []string        `json:"userInterests"`
	RequiredInfo       []string        `json:"requiredInfo"`
	SuggestedQuestions []string        `json:"suggestedQuestions"`
	Recommendations    []string        `json:"recommendations"`
}

// DateValidation is the model's (or the local validator's) verdict on Dates.
type DateValidation struct {
	IsValid   bool   `json:"isValid"`
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// Completeness reports which trip facts are known.
type Completeness struct {
	Destination bool
	Dates       bool
	Preferences bool
}

// All reports whether destination, dates and preferences are all known.
func (c Completeness) All() bool {
	return c.Destination && c.Dates && c.Preferences
}
