package usecase

// Log prefixes
const (
	LogPrefixProcessTurn   = "internal.travel.usecase.ProcessTurn"
	LogPrefixCreateSession = "internal.travel.usecase.CreateSession"
	LogPrefixNode          = "internal.travel.usecase.runNode"
	LogPrefixPreferences   = "internal.travel.usecase.analyzePreferences"
)

const (
	// DefaultWindow is how many recent turns reply phrasing sees.
	DefaultWindow = 10

	// PreferenceConfidence is the minimum confidence for an inferred preference.
	PreferenceConfidence = 0.7
)

// reasonResume marks a turn handed straight to an active calendar flow.
const reasonResume = "resume"

// Turn outcomes recorded in metrics.
const (
	outcomeOK      = "ok"
	outcomeBlocked = "blocked"
	outcomeError   = "error"
)

// PromptPersona opens every reply instruction.
const PromptPersona = `여행 계획을 도와드리는 AI 어시스턴트입니다.
자연스러운 대화를 통해 맞춤형 여행 계획을 만들어드리겠습니다.

제가 도와드릴 수 있는 것들:
1. 여행지 추천
2. 일정 계획
3. 예산 관리
4. 맛집/관광지 추천
5. 교통편 안내`

// PromptNextQuestion asks for one missing fact. Arg: the pending question.
const PromptNextQuestion = `현재까지 파악된 정보를 바탕으로 자연스럽게 대화를 이어가주세요.

다음 정보가 필요합니다: %s

대화 스타일:
1. 친근하고 자연스러운 어조 유지
2. 이전 대화 내용을 참고하여 맥락 유지
3. 열린 질문으로 시작하여 사용자의 선호도를 자세히 파악
4. 적절한 예시나 추천사항 포함
5. 한 번에 너무 많은 것을 물어보지 않기
6. 이미 알고 있는 정보는 다시 물어보지 않기`

// PromptContinue is used when nothing is pending.
const PromptContinue = `사용자의 마지막 메시지에 자연스럽게 답변해주세요.
이미 알고 있는 정보는 다시 물어보지 말고, 필요하면 여행 계획을 세워드릴지 제안해주세요.`

// PromptRecommend suggests places for known preferences. Arg: preferences.
const PromptRecommend = `지금까지 파악된 선호도는 다음과 같습니다:
%s

이러한 선호도를 고려하여 구체적인 여행지나 관련 장소를 추천해주세요.
이미 특정 지역이 언급되었다면, 그 지역 내에서 적합한 장소들을 추천해주세요.

추천 시 고려사항:
1. 선호도와 일치하는 장소 우선
2. 계절/날씨 고려
3. 이동 편의성
4. 주변 관광지와의 연계성
5. 현지 특색`

// PromptAskDestination opens the destination question.
const PromptAskDestination = `어떤 여행을 원하시는지 자연스럽게 물어보세요.
예시:
1. 특정 여행지를 언급했다면 확인
2. 선호하는 여행 스타일이나 원하는 경험 파악
3. 여행지 추천이 필요하다면 몇 가지 옵션 제시

대화 가이드:
1. 열린 질문으로 시작
2. 구체적인 예시 포함
3. 단계적으로 선호도 파악
4. 맥락 유지`

// PromptCollectDetails asks for missing details. Arg: comma-joined items.
const PromptCollectDetails = `자연스러운 대화로 다음 정보를 물어보세요:
- %s
한 번에 너무 많은 것을 물어보지 말고, 대화를 이어나가듯이 질문해주세요.`

// PromptPreferences infers preferences from the conversation.
const PromptPreferences = `사용자의 메시지에서 여행 선호도를 분석해주세요.

분석해야 할 카테고리:
1. 동반자 유형 (예: 가족여행, 커플여행, 친구들과 여행 등)
2. 선호하는 활동 (예: 관광, 휴식, 체험, 쇼핑 등)
3. 선호하는 장소 (예: 자연/아웃도어, 도시, 문화유적, 해변 등)
4. 식사 선호도 (예: 현지식, 맛집탐방, 카페 등)
5. 숙박 선호도 (예: 호텔, 리조트, 게스트하우스 등)
6. 이동수단 (예: 대중교통, 렌터카, 도보 등)
7. 여행 스타일 (예: 여유로운, 활동적인, 계획적인, 즉흥적인 등)

응답 형식:
{
  "preferences": [
    {"category": "카테고리명", "value": "선호도", "confidence": 0.0, "evidence": "근거가 되는 사용자 발화"}
  ]
}

주의사항:
1. 명확한 근거가 있는 선호도만 포함
2. 추측이나 가정은 하지 않음
3. 신뢰도는 문맥과 표현의 명확성을 기준으로 판단`

const (
	missingDates       = "여행 기간"
	missingPreferences = "선호하는 활동"
)

// User-facing messages.
const (
	msgPlanFollowUp        = "\n\n---\n\n이 계획을 캘린더에 등록해드릴까요? 수정하고 싶은 부분이 있으면 말씀해주세요."
	msgPlanFailure         = "죄송합니다. 여행 계획을 생성하는 중 문제가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgRegisterNoPlan      = "등록할 여행 계획이 없습니다. 먼저 여행 계획을 생성해주세요."
	msgRegisterSuccess     = "✅ 여행 일정이 Google Calendar에 등록되었습니다."
	msgRegisterLinkFmt     = "\n\n🔗 [Calendar에서 보기](%s)"
	msgRegisterFailureFmt  = "❌ 이벤트 생성 중 오류 발생: %v"
	msgCalendarUnavailable = "Google Calendar 서비스 연결에 실패했습니다."
	msgViewFailureFmt      = "죄송합니다. Calendar 조회 중 문제가 발생했습니다.\n\n오류 내용: %v\n\nCalendar 연결을 확인하거나 다시 시도해주세요."
	msgNodeFailure         = "죄송합니다. 요청을 처리하는 중 문제가 발생했습니다. 잠시 후 다시 시도해주세요."
)
