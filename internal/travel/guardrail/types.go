package guardrail

// Category names a kind of violation.
type Category string

const (
	CategoryProfanity       Category = "profanity"
	CategoryInappropriate   Category = "inappropriate_content"
	CategoryPromptInjection Category = "prompt_injection"
	CategoryPersonalInfo    Category = "personal_info_request"
	CategoryIllegalActivity Category = "illegal_activity"
	CategoryOffTopic        Category = "off_topic"
)

// Stage tells which check produced a verdict.
type Stage string

const (
	StageLexical  Stage = "lexical"
	StageSemantic Stage = "semantic"
)

// Result is the verdict for one user message.
type Result struct {
	Safe       bool
	Category   Category
	Stage      Stage
	Confidence float64
	Reason     string
	Message    string // canned reply when not Safe
}

type semanticVerdict struct {
	IsViolation   bool     `json:"is_violation"`
	ViolationType Category `json:"violation_type"`
	Confidence    float64  `json:"confidence"`
	Reason        string   `json:"reason"`
}
