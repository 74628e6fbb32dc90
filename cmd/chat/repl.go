package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"travel-planner/internal/travel"
)

const (
	cmdQuit  = "/quit"
	cmdExit  = "/exit"
	cmdPlan  = "/plan"
	cmdState = "/state"
	cmdReset = "/reset"
	cmdHelp  = "/help"

	prompt    = "> "
	replHelp  = "명령어: /plan 현재 일정 보기, /state 수집된 정보 보기, /reset 새 대화, /quit 종료"
	noPlanMsg = "아직 생성된 여행 일정이 없습니다."
)

type repl struct {
	uc        travel.UseCase
	sessionID string
	format    string
	render    func(string) string
	in        io.Reader
	out       io.Writer
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintf(r.out, "여행 플래너 (session %s)\n%s\n", r.sessionID, replHelp)

	sc := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !sc.Scan() {
			return sc.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		quit, err := r.handle(ctx, line)
		if err != nil {
			fmt.Fprintf(r.out, "오류: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// handle runs one line. It reports true when the session should end.
func (r *repl) handle(ctx context.Context, line string) (bool, error) {
	switch line {
	case cmdQuit, cmdExit:
		return true, nil
	case cmdHelp:
		fmt.Fprintln(r.out, replHelp)
		return false, nil
	case cmdPlan:
		return false, r.showPlan(ctx)
	case cmdState:
		return false, r.showState(ctx)
	case cmdReset:
		state, err := r.uc.CreateSession(ctx, travel.CreateSessionInput{})
		if err != nil {
			return false, err
		}
		r.sessionID = state.ID
		fmt.Fprintf(r.out, "새 대화를 시작합니다 (session %s)\n", r.sessionID)
		return false, nil
	}

	out, err := r.uc.ProcessTurn(ctx, travel.ProcessTurnInput{SessionID: r.sessionID, Text: line})
	if err != nil {
		return false, err
	}
	r.sessionID = out.SessionID
	fmt.Fprintln(r.out, strings.TrimRight(r.render(out.Reply), "\n"))
	return false, nil
}

func (r *repl) showPlan(ctx context.Context) error {
	state, err := r.session(ctx)
	if err != nil {
		return err
	}
	if state.Plan == nil {
		fmt.Fprintln(r.out, noPlanMsg)
		return nil
	}
	text, err := exportPlan(state.Plan, r.format)
	if err != nil {
		return err
	}
	if r.format == formatText || state.Plan.Plan == nil {
		text = r.render(text)
	}
	fmt.Fprintln(r.out, strings.TrimRight(text, "\n"))
	return nil
}

func (r *repl) showState(ctx context.Context) error {
	state, err := r.session(ctx)
	if err != nil {
		return err
	}
	s := state.Slots
	fmt.Fprintf(r.out, "여행지: %s\n여행 기간: %s\n선호 사항: %s\n현재 단계: %s\n",
		orDash(s.Destination), orDash(s.TravelDates), orDash(strings.Join(s.Preferences, ", ")), state.CurrentNode)
	if state.Calendar.Active() {
		fmt.Fprintf(r.out, "캘린더 작업: %s (%s)\n", state.Calendar.Flow, state.Calendar.Step)
	}
	return nil
}

// session loads the current state. A named session that has not taken a
// turn yet reads as empty.
func (r *repl) session(ctx context.Context) (travel.SessionState, error) {
	state, err := r.uc.GetSession(ctx, r.sessionID)
	if errors.Is(err, travel.ErrSessionNotFound) {
		return travel.NewSession(r.sessionID, time.Now()), nil
	}
	return state, err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
