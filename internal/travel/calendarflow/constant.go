package calendarflow

import "time"

// Log prefixes
const (
	LogPrefixStep = "internal.travel.calendarflow.Step"
	LogPrefixView = "internal.travel.calendarflow.View"
	LogPrefixDiff = "internal.travel.calendarflow.extractDiff"
)

const (
	// UpcomingWindow is how far ahead an "upcoming" lookup reaches.
	UpcomingWindow = 30 * 24 * time.Hour

	// LookbackWindow bounds keyword lookups into the past.
	LookbackWindow = 365 * 24 * time.Hour

	// SearchLimit caps one calendar lookup.
	SearchLimit = 50

	// DescriptionPreviewRunes bounds descriptions in event listings.
	DescriptionPreviewRunes = 200

	defaultQuery = "여행"
)

var (
	upcomingKeywords = []string{"다가오는", "앞으로", "예정", "예정된"}
	travelKeywords   = []string{"여행", "휴가", "관광", "트립", "trip", "travel", "vacation"}

	confirmKeywords = []string{"네", "예", "삭제", "확인", "맞습니다", "그래요", "맞아요", "삭제해줘", "지워줘"}
	cancelKeywords  = []string{"아니요", "취소", "안 해요", "그만", "아니"}
)

// Diff fields the modification extractor may return.
const (
	FieldSummary     = "summary"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldLocation    = "location"
	FieldDescription = "description"
)

var diffFields = []string{FieldSummary, FieldStartDate, FieldEndDate, FieldLocation, FieldDescription}

// Labels for the kind of lookup performed.
const (
	LabelUpcoming       = "다가오는 여행 일정"
	LabelAll            = "전체 여행 일정"
	labelDestinationFmt = "%s 관련 여행 일정"
)

// User-facing messages.
const (
	msgNoEventsFmt        = "%s할 여행 일정이 없습니다. 먼저 여행 일정을 조회해주세요."
	msgErrorFmt           = "캘린더 %s 중 오류 발생: %v"
	msgUnavailable        = "Google Calendar 서비스 연결에 실패했습니다."
	msgSelectFmt          = "%s할 일정을 선택해주세요:\n\n%s\n\n번호를 말씀해주세요 (예: \"1번\", \"첫번째\")"
	msgSelectCancelledFmt = "일정 %s 요청이 취소되었습니다."
	msgInvalidSelection   = "올바른 번호를 선택해주세요. (예: \"1번\", \"첫번째\")"
	msgSelectionLost      = "%s할 일정 정보를 찾을 수 없습니다. 다시 시도해주세요."
	msgModifyPromptSuffix = "어떤 내용을 수정하시겠어요? (제목, 날짜, 장소, 설명)"
	msgModifyNoDiff       = "수정할 내용을 찾을 수 없습니다. 구체적으로 말씀해주세요. (예: \"제목을 부산여행으로 바꿔줘\", \"날짜를 12월 25일로 변경해줘\")"
	msgModifySuccessFmt   = "✅ **일정이 성공적으로 수정되었습니다!**\n\n**대상:** %s\n**수정 내용:** %s"
	msgModifyFailureFmt   = "❌ **일정 수정에 실패했습니다.**\n\n%v"
	msgDeletePromptSuffix = "삭제하려면 '네' 또는 '삭제'라고 말씀해주세요."
	msgDeleteSuccessFmt   = "✅ **일정이 성공적으로 삭제되었습니다!**\n\n'%s' 일정이 캘린더에서 삭제되었습니다."
	msgDeleteFailureFmt   = "❌ **일정 삭제에 실패했습니다.**\n\n%v"
	msgDeleteCancelled    = "일정 삭제가 취소되었습니다."
	msgDeleteReprompt     = "'네' 또는 '아니요'로 답변해주세요. 정말 삭제하시겠습니까?"
	msgNoTitle            = "제목 없음"
	msgNoLocation         = "장소 미정"
)

// PromptDiff asks for the fields the user wants to change.
// Args: current event block, today's date.
const PromptDiff = `사용자가 캘린더 일정을 수정하려고 합니다. 사용자의 메시지에서 수정하려는 내용을 분석해주세요.

현재 이벤트 정보:
%s

현재 날짜: %s

다음 중 수정하려는 내용이 있다면 JSON 형태로 추출해주세요:

{
    "summary": "새로운 제목 (변경하려는 경우에만)",
    "start_date": "YYYY-MM-DD (시작일 변경하려는 경우에만)",
    "end_date": "YYYY-MM-DD (종료일 변경하려는 경우에만)",
    "location": "새로운 장소 (변경하려는 경우에만)",
    "description": "새로운 설명 (변경하려는 경우에만)"
}

분석 규칙:
1. 명시적으로 변경하려는 내용만 포함하세요
2. 날짜는 상대적 표현도 절대 날짜로 변환하세요
3. 변경하지 않는 필드는 포함하지 마세요
4. 애매한 경우에는 null로 응답하세요
5. 날짜 범위는 "~", "부터", "까지", "에서" 등을 인식하세요

변경 내용이 없거나 분석할 수 없으면 빈 객체 {}를 반환하세요.`
