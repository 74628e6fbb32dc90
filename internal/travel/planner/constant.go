package planner

// Log prefixes
const (
	LogPrefixGenerate = "internal.travel.planner.Generate"
	LogPrefixRefine   = "internal.travel.planner.Refine"
	LogPrefixEnrich   = "internal.travel.planner.Enrich"
)

const (
	// DefaultWindow is how many recent turns the plan prompt sees.
	DefaultWindow = 10

	// MaxEnrichedPreferences caps place lookups per plan.
	MaxEnrichedPreferences = 3

	// PlacesPerPreference caps places listed per preference in the prompt.
	PlacesPerPreference = 5

	// DefaultTripDays is the registered length when a plan names no dates.
	DefaultTripDays = 3

	defaultDestination = "여행"
	unknownValue       = "미정"
)

// planSchema is the itinerary document both prompts ask for.
const planSchema = `{
  "travelOverview": {"destination": "", "startDate": "YYYY-MM-DD", "endDate": "YYYY-MM-DD", "durationDays": 0, "summary": ""},
  "itinerary": [
    {"date": "YYYY-MM-DD", "dayOfWeek": "", "activities": [
      {"time": "HH:MM", "title": "", "location": "", "address": "", "description": "", "category": "", "durationMinutes": 0}
    ]}
  ],
  "preparation": {"essentialItems": [], "reservationsNeeded": [], "localTips": [], "warnings": []},
  "alternatives": {"rainyDayOptions": [], "optionalActivities": []}
}`

// PromptGenerate asks for a structured itinerary.
// Args: collected info block, place block.
const PromptGenerate = `당신은 여행 계획 전문가입니다. 아래 정보를 바탕으로 여행 계획을 생성해주세요.
부족한 정보는 일반적인 선호도를 반영하여 채워주세요.

%s
%s
반드시 아래 JSON 형식으로만 응답하세요:
` + planSchema

// PromptRefine asks for a revised itinerary. The previous plan is its JSON
// document when one exists.
// Args: previous plan, place block.
const PromptRefine = `사용자의 피드백을 반영하여 기존 여행 계획을 수정해주세요.
사용자가 요청하지 않은 부분은 그대로 유지하세요.

기존 계획:
%s
%s
응답은 아래 JSON 형식으로만 작성하세요:
` + planSchema

const (
	collectedInfoFmt = "현재까지 파악된 여행 정보:\n- 여행지: %s\n- 여행 기간: %s\n- 선호 사항: %s\n"
	placesHeader     = "\n추천 장소 (카카오맵 검색 결과, 가능하면 일정에 활용하세요):\n"
)
