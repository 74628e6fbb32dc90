package extractor

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// rawDelta accepts the flat document and the older nested
// core_info/context/next_steps layout.
type rawDelta struct {
	Destination        *string            `json:"destination"`
	Dates              *string            `json:"dates"`
	DurationDays       flexInt            `json:"durationDays"`
	DateValidation     *rawDateValidation `json:"dateValidation"`
	Preferences        []string           `json:"preferences"`
	CurrentTopic       *string            `json:"currentTopic"`
	RelatedToPrevious  bool               `json:"relatedToPrevious"`
	UserInterests      []string           `json:"userInterests"`
	RequiredInfo       []string           `json:"requiredInfo"`
	SuggestedQuestions []string           `json:"suggestedQuestions"`
	Recommendations    []string           `json:"recommendations"`

	CoreInfo *struct {
		Destination    *string            `json:"destination"`
		Dates          *string            `json:"dates"`
		Duration       flexInt            `json:"duration"`
		DateValidation *rawDateValidation `json:"date_validation"`
		Preferences    []string           `json:"preferences"`
	} `json:"core_info"`
	Context *struct {
		CurrentTopic      *string  `json:"current_topic"`
		RelatedToPrevious bool     `json:"related_to_previous"`
		UserInterests     []string `json:"user_interests"`
	} `json:"context"`
	NextSteps *struct {
		RequiredInfo       []string `json:"required_info"`
		SuggestedQuestions []string `json:"suggested_questions"`
		Recommendations    []string `json:"recommendations"`
	} `json:"next_steps"`
}

type rawDateValidation struct {
	IsValid   *bool   `json:"isValid"`
	IsValid2  *bool   `json:"is_valid"`
	Original  *string `json:"original"`
	Corrected *string `json:"corrected"`
}

// flexInt decodes numbers, numeric strings ("2", "2박") and null.
type flexInt int

var digitsRe = regexp.MustCompile(`\d+`)

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexInt(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if m := digitsRe.FindString(str); m != "" {
		v, _ := strconv.Atoi(m)
		*f = flexInt(v)
		return nil
	}
	*f = 0
	return nil
}
