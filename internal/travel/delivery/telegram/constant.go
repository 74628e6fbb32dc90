package telegram

import "time"

const (
	LogPrefixWebhook = "telegram.HandleWebhook"
	LogPrefixMessage = "telegram.processMessage"

	sessionIDFmt = "telegram_%d"
	turnTimeout  = 2 * time.Minute

	commandStart = "/start"
	commandHelp  = "/help"
)

const (
	msgWelcome = "👋 *여행 플래너*에 오신 것을 환영합니다!\n\n" +
		"가고 싶은 여행지와 기간, 선호하는 활동을 알려주시면 일정을 만들어 드리고 " +
		"Google Calendar에 등록해 드립니다.\n\n" +
		"_예: \"다음 달에 제주도로 3박 4일 맛집 여행 가고 싶어\"_"
	msgHelp = "*사용 방법*\n\n" +
		"• 여행지, 기간, 선호 사항을 자유롭게 말씀해 주세요.\n" +
		"• \"일정 만들어줘\"로 여행 계획을 생성합니다.\n" +
		"• \"캘린더에 등록해줘\"로 일정을 등록합니다.\n" +
		"• \"캘린더 일정 보여줘\", \"일정 수정해줘\", \"일정 삭제해줘\"로 등록된 일정을 관리합니다.\n" +
		"• /start 로 대화를 처음부터 다시 시작합니다."
	msgProcessing = "⏳ 처리 중입니다..."
	msgFailure    = "요청을 처리하는 중 문제가 발생했습니다. 잠시 후 다시 시도해 주세요."
)
