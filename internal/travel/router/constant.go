package router

// DefaultThreshold is the inclusive confidence at which the classifier's
// label is trusted over heuristics.
const DefaultThreshold = 0.7

var (
	planKeywords    = []string{"계획", "일정", "스케줄", "플랜", "짜줘"}
	asIsKeywords    = []string{"그대로", "이대로"}
	proceedKeywords = []string{"계획", "진행", "시작"}

	calendarTriggers = []string{"캘린더", "등록"}
	refineTriggers   = []string{"수정", "변경"}
	planTriggers     = []string{"계획", "일정"}
)

// System notes injected into the conversation for reply phrasing.
const (
	NoteNoPlanForCalendar = "아직 여행 계획이 없어 캘린더 등록 전에 먼저 여행 계획을 생성합니다."
	NoteNoPlanForRefine   = "수정할 여행 계획이 없어 새 여행 계획을 생성합니다."
)

// MessageRouterFailure is shown when routing itself fails.
const MessageRouterFailure = "죄송합니다. 요청을 처리하는 중 문제가 발생했습니다. 잠시 후 다시 시도해주세요."

// Decision reasons, used in logs and tests.
const (
	ReasonGuardrail    = "guardrail"
	ReasonIntent       = "intent"
	ReasonAffirmative  = "affirmative"
	ReasonKeyword      = "keyword"
	ReasonCompleteness = "completeness"
	ReasonPanic        = "panic"
)
