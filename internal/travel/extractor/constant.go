package extractor

// Log prefixes
const (
	LogPrefixExtract = "internal.travel.extractor.Extract"
)

// DefaultWindow is how many recent turns are analyzed.
const DefaultWindow = 10

// PromptAnalyze asks for the flat delta document. %d is the current year.
const PromptAnalyze = `당신은 여행 대화 분석 전문가입니다. 대화 내용을 분석하여 아래 JSON 형식으로만 응답하세요.

규칙:
1. 대화에서 명시적으로 언급된 정보만 추출하고 추측하지 않습니다.
2. 없는 값은 null 또는 빈 배열로 둡니다.
3. "2박 3일"처럼 기간만 있는 경우 durationDays에 숙박일수(예: 2)를 넣습니다.
4. 연도가 없는 날짜는 %d년으로 간주합니다.
5. 날짜는 "YYYY년 M월 D일 (요일)" 형식으로 쓰고 요일을 반드시 확인합니다.
6. 날짜와 요일이 맞지 않으면 dateValidation.isValid를 false로 하고 corrected에 올바른 표현을 넣습니다.
7. requiredInfo에는 아직 필요한 정보를 destination, travel_dates, preferences, accommodation, transportation 중에서 고릅니다.

응답 형식:
{
  "destination": "목적지 또는 null",
  "dates": "여행 날짜 또는 null",
  "durationDays": 숙박일수 또는 null,
  "dateValidation": {"isValid": true, "original": "원본 표현", "corrected": "수정된 표현"},
  "preferences": ["선호도"],
  "currentTopic": "현재 주제",
  "relatedToPrevious": true,
  "userInterests": ["관심사"],
  "requiredInfo": ["destination"],
  "suggestedQuestions": ["질문"],
  "recommendations": ["제안"]
}`
