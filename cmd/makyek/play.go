package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daystram/makyek/board"
	"github.com/daystram/makyek/events"
	"github.com/daystram/makyek/position"
)

var (
	errInvalidStep = errors.New("invalid step")
	errIllegalMove = errors.New("illegal move")
)

// step is one hop, written <side>:<from><-|x><to>[!] where side is w or b
// and a trailing '!' marks a hop that is not the last of the turn.
type step struct {
	side       board.Side
	from, to   position.Pos
	isLastStep bool
}

func parseStep(s string) (step, error) {
	sideNt, mvNt, ok := strings.Cut(s, ":")
	if !ok {
		return step{}, fmt.Errorf("%w: missing side in '%s'", errInvalidStep, s)
	}

	var st step
	switch sideNt {
	case "w", "white":
		st.side = board.SideWhite
	case "b", "black":
		st.side = board.SideBlack
	default:
		return step{}, fmt.Errorf("%w: unknown side '%s'", errInvalidStep, sideNt)
	}

	st.isLastStep = !strings.HasSuffix(mvNt, "!")
	mvNt = strings.TrimSuffix(mvNt, "!")
	if len(mvNt) != 5 || (mvNt[2] != '-' && mvNt[2] != 'x') {
		return step{}, fmt.Errorf("%w: malformed move '%s'", errInvalidStep, mvNt)
	}

	var err error
	if st.from, err = position.NewPosFromNotation(mvNt[:2]); err != nil {
		return step{}, fmt.Errorf("%w: %v", errInvalidStep, err)
	}
	if st.to, err = position.NewPosFromNotation(mvNt[3:]); err != nil {
		return step{}, fmt.Errorf("%w: %v", errInvalidStep, err)
	}
	return st, nil
}

func realMain(cfg config, args []string, out io.Writer, logger *zap.Logger) error {
	steps := make([]step, 0, len(args))
	for _, arg := range args {
		st, err := parseStep(arg)
		if err != nil {
			return err
		}
		steps = append(steps, st)
	}

	boardID := uuid.New()
	logger = logger.With(zap.Stringer("board_id", boardID))

	publisher := events.NewPublisher()
	publisher.Subscribe(events.EventPiecePlaced, func(e events.Event) {
		fmt.Fprintf(out, ">>> %s: %s\n", e.Payload.Side, e.Payload)
	})
	publisher.Subscribe(events.EventPieceCaptured, func(e events.Event) {
		pos, _ := e.Payload.Captured()
		logger.Info("piece captured", zap.Stringer("at", pos), zap.Stringer("by", e.Payload.Side))
	})
	publisher.Subscribe(events.EventPiecePromoted, func(e events.Event) {
		logger.Info("piece promoted", zap.Stringer("at", e.Payload.To), zap.Stringer("side", e.Payload.Side))
	})

	b, err := board.NewBoard(
		board.WithLayout(cfg.Layout),
		board.WithLogger(logger),
		board.WithUpdateHandler(events.UpdateHandler(publisher, boardID)),
	)
	if err != nil {
		return err
	}
	render := b.Dump
	if cfg.Draw {
		render = b.Draw
	}
	fmt.Fprintln(out, render())

	for i, st := range steps {
		if !b.CanPlaceAt(st.side, st.from.Row(), st.from.Col(), st.to.Row(), st.to.Col()) {
			return fmt.Errorf("%w: step %d '%s'", errIllegalMove, i+1, args[i])
		}
		b.PlaceAt(st.side, st.from.Row(), st.from.Col(), st.to.Row(), st.to.Col(), st.isLastStep)
		if cfg.Draw {
			fmt.Fprintln(out, render())
		}
	}
	if !cfg.Draw && len(steps) > 0 {
		fmt.Fprintln(out, render())
	}
	fmt.Fprintln(out, b.Layout())

	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		ok, err := b.HasAvailablePlacement(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s can step: %v\n", s, ok)
	}

	if cfg.Count {
		c := b.Count()
		fmt.Fprintf(out, "empty=%d white=%d black=%d\n", c[board.CellEmpty], c[board.CellWhite], c[board.CellBlack])
	}
	return nil
}
