package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.travel.intent.Classify"
)

// Classifier prompts
const (
	PromptClassify = `사용자의 메시지에서 의도를 분석해주세요. 현재 여행 계획 에이전트와 대화 중입니다.
여행 계획이 %s.

다음 중 가장 일치하는 의도 하나를 고르고 신뢰도(0.0~1.0)를 함께 응답하세요:
- plan_create: 새로운 여행 계획을 만들어달라는 요청
- plan_modify: 생성된 계획의 일부를 변경해달라는 요청
- plan_question: 여행 계획의 특정 부분에 대한 질문
- calendar_create: 여행 계획을 Google Calendar에 등록해달라는 요청
- calendar_view: 캘린더에 등록된 여행 일정을 보여달라는 요청
- calendar_modify: 캘린더에 등록된 일정을 수정해달라는 요청
- calendar_delete: 캘린더에 등록된 일정을 삭제해달라는 요청
- affirmative: 직전 제안에 대한 긍정 응답 (예: "네", "좋아요", "그래요")
- negative: 직전 제안에 대한 부정 응답 (예: "아니요", "싫어요")
- general: 특별한 의도가 없는 일반 대화

JSON 형식으로만 응답하세요:
{
  "primary_intent": "위 목록의 값",
  "confidence": 0.0,
  "keywords_detected": ["키워드"],
  "requires_plan": false,
  "context_analysis": "간단한 문맥 분석",
  "is_affirmative_to_previous": false
}`

	PlanStatusExists  = "이미 생성되었습니다"
	PlanStatusMissing = "아직 생성되지 않았습니다"

	PromptPreviousAssistant = "직전 AI 메시지: %s\n"
	PromptUserMessage       = "분석할 사용자 메시지: %s"
)

// Fallback when the classifier output cannot be used.
const (
	FallbackLabel      = LabelGeneral
	FallbackConfidence = 0.5

	ReasonParsingError  = "분석 실패"
	ReasonEmptyResponse = "빈 응답"
	ReasonLLMError      = "분류기 호출 실패"
)

// aliases maps descriptive labels, including the Korean ones older prompts
// produced, to canonical labels. Order matters for substring matching.
var aliases = []struct {
	alias string
	label Label
}{
	{"여행 계획 생성 요청", LabelPlanCreate},
	{"계획 생성 요청", LabelPlanCreate},
	{"계획 수정 요청", LabelPlanModify},
	{"계획 세부정보 문의", LabelPlanQuestion},
	{"캘린더 등록 요청", LabelCalendarCreate},
	{"캘린더 조회 요청", LabelCalendarView},
	{"캘린더 수정 요청", LabelCalendarModify},
	{"캘린더 삭제 요청", LabelCalendarDelete},
	{"긍정 응답", LabelAffirmative},
	{"부정 응답", LabelNegative},
	{"일반 대화", LabelGeneral},
	{"plan create", LabelPlanCreate},
	{"plan modify", LabelPlanModify},
	{"plan question", LabelPlanQuestion},
	{"calendar create", LabelCalendarCreate},
	{"calendar view", LabelCalendarView},
	{"calendar modify", LabelCalendarModify},
	{"calendar delete", LabelCalendarDelete},
}
