package usecase

import (
	"time"

	"github.com/google/uuid"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/completion"
	"travel-planner/internal/travel/guardrail"
	"travel-planner/internal/travel/repository"
	"travel-planner/pkg/metrics"
	pkgLog "travel-planner/pkg/log"
)

var _ travel.UseCase = (*implUseCase)(nil)

// Dependencies are the collaborators of the dialogue engine. Calendar and
// Metrics are optional.
type Dependencies struct {
	Sessions   repository.SessionRepository
	Calendar   repository.CalendarRepository
	LLM        completion.Service
	Extractor  Extractor
	Classifier Classifier
	Guardrail  guardrail.Gate
	Planner    Planner
	Flow       CalendarFlow
	Metrics    *metrics.Metrics

	// Threshold is the router's confidence threshold; zero means the default.
	Threshold float64
	// Window is how many turns reply phrasing sees; zero means DefaultWindow.
	Window int
}

type implUseCase struct {
	l          pkgLog.Logger
	sessions   repository.SessionRepository
	calendar   repository.CalendarRepository
	llm        completion.Service
	extractor  Extractor
	classifier Classifier
	guard      guardrail.Gate
	planner    Planner
	flow       CalendarFlow
	metrics    *metrics.Metrics
	threshold  float64
	window     int

	locks *sessionLocks
	nodes map[travel.Node]nodeFunc
	now   func() time.Time
	newID func() string
}

// New creates a new travel UseCase instance.
func New(l pkgLog.Logger, deps Dependencies) *implUseCase {
	window := deps.Window
	if window <= 0 {
		window = DefaultWindow
	}
	uc := &implUseCase{
		l:          l,
		sessions:   deps.Sessions,
		calendar:   deps.Calendar,
		llm:        deps.LLM,
		extractor:  deps.Extractor,
		classifier: deps.Classifier,
		guard:      deps.Guardrail,
		planner:    deps.Planner,
		flow:       deps.Flow,
		metrics:    deps.Metrics,
		threshold:  deps.Threshold,
		window:     window,
		locks:      newSessionLocks(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	uc.nodes = map[travel.Node]nodeFunc{
		travel.NodeUnderstandRequest: uc.understandRequest,
		travel.NodeAskDestination:    uc.askDestination,
		travel.NodeCollectDetails:    uc.collectDetails,
		travel.NodeGeneratePlan:      uc.generatePlan,
		travel.NodeRefinePlan:        uc.refinePlan,
		travel.NodeRegisterCalendar:  uc.registerCalendar,
		travel.NodeViewCalendar:      uc.viewCalendar,
		travel.NodeModifyCalendar:    uc.modifyCalendar,
		travel.NodeDeleteCalendar:    uc.deleteCalendar,
	}
	return uc
}
