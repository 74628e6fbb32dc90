package slots

import "travel-planner/internal/travel"

// questionPriority orders pending questions for NextQuestion.
var questionPriority = []string{
	travel.SlotDestination,
	travel.SlotTravelDates,
	travel.SlotPreferences,
	travel.SlotAccommodation,
	travel.SlotTransportation,
}

const (
	summaryHeader          = "현재까지 파악된 정보:"
	summaryDestination     = "목적지: %s"
	summaryDates           = "여행 기간: %s"
	summaryPreferences     = "선호도: %s"
	summaryAccommodation   = "숙소 유형: %s"
	summaryTransportation  = "이동수단: %s"
	summarySpecialRequests = "특별 요청사항: %s"
)
