package http

const (
	LogPrefixCreateSession = "http.CreateSession"
	LogPrefixGetSession    = "http.GetSession"
	LogPrefixEndSession    = "http.EndSession"
	LogPrefixProcessTurn   = "http.ProcessTurn"

	DefaultChunkSize = 8
	maxPlanTextRunes = 20000

	eventStatus = "status"
	eventChunk  = "chunk"
	eventPlan   = "plan"
	eventDone   = "done"
	eventError  = "error"

	statusProcessing = "processing"
	mimeEventStream  = "text/event-stream"
)
