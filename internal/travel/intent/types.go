package intent

// Label is the classified purpose of the latest user turn.
type Label string

const (
	LabelPlanCreate     Label = "plan_create"
	LabelPlanModify     Label = "plan_modify"
	LabelPlanQuestion   Label = "plan_question"
	LabelCalendarCreate Label = "calendar_create"
	LabelCalendarView   Label = "calendar_view"
	LabelCalendarModify Label = "calendar_modify"
	LabelCalendarDelete Label = "calendar_delete"
	LabelAffirmative    Label = "affirmative"
	LabelNegative       Label = "negative"
	LabelGeneral        Label = "general"
)

// Result is the classifier output.
type Result struct {
	Label                   Label    `json:"primary_intent"`
	Confidence              float64  `json:"confidence"` // 0..1
	Keywords                []string `json:"keywords_detected"`
	RequiresPlan            bool     `json:"requires_plan"`
	IsAffirmativeToPrevious bool     `json:"is_affirmative_to_previous"`
	Reasoning               string   `json:"context_analysis"`
}

// rawResult tolerates free-form labels and 0-100 confidences.
type rawResult struct {
	PrimaryIntent           string   `json:"primary_intent"`
	Confidence              float64  `json:"confidence"`
	KeywordsDetected        []string `json:"keywords_detected"`
	RequiresPlan            bool     `json:"requires_plan"`
	IsAffirmativeToPrevious bool     `json:"is_affirmative_to_previous"`
	ContextAnalysis         string   `json:"context_analysis"`
}
