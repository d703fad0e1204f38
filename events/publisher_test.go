package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/makyek/board"
	"github.com/daystram/makyek/position"
)

func TestPublisher(t *testing.T) {
	t.Parallel()

	p := NewPublisher()
	var got []string
	p.Subscribe(EventPiecePlaced, func(e Event) { got = append(got, "placed:"+string(e.Type)) })
	p.SubscribeAll(func(e Event) { got = append(got, "all:"+string(e.Type)) })
	p.Subscribe(EventPieceCaptured, func(e Event) { got = append(got, "captured:"+string(e.Type)) })

	p.Publish(Event{Type: EventPiecePlaced})
	p.Publish(Event{Type: EventPiecePromoted})

	assert.Equal(t, []string{
		"placed:PIECE_PLACED",
		"all:PIECE_PLACED",
		"all:PIECE_PROMOTED",
	}, got)
}

func TestUpdateHandler(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                           string
		layout                         string
		side                           board.Side
		fromRow, fromCol, toRow, toCol int
		wantTypes                      []EventType
	}{
		{
			name:   "step",
			layout: board.DefaultLayout,
			side:   board.SideWhite, fromRow: 2, fromCol: 1, toRow: 3, toCol: 0,
			wantTypes: []EventType{EventPiecePlaced},
		},
		{
			name:   "capture and promote",
			layout: "......../..x...../...o..../......../......../......../......../........",
			side:   board.SideBlack, fromRow: 2, fromCol: 3, toRow: 0, toCol: 1,
			wantTypes: []EventType{EventPiecePlaced, EventPieceCaptured, EventPiecePromoted},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id := uuid.New()
			p := NewPublisher()
			var got []Event
			p.SubscribeAll(func(e Event) { got = append(got, e) })

			b, err := board.NewBoard(board.WithLayout(tt.layout), board.WithUpdateHandler(UpdateHandler(p, id)))
			require.NoError(t, err)
			require.True(t, b.CanPlaceAt(tt.side, tt.fromRow, tt.fromCol, tt.toRow, tt.toCol))
			b.PlaceAt(tt.side, tt.fromRow, tt.fromCol, tt.toRow, tt.toCol, true)

			require.Len(t, got, len(tt.wantTypes))
			for i, e := range got {
				assert.Equal(t, tt.wantTypes[i], e.Type)
				assert.Equal(t, id, e.BoardID)
				assert.Equal(t, position.NewPos(tt.toRow, tt.toCol), e.Payload.To)
				assert.Equal(t, tt.side, e.Payload.Side)
			}
		})
	}
}

func TestUpdateHandlerCapturedSquare(t *testing.T) {
	t.Parallel()

	p := NewPublisher()
	var captured []position.Pos
	p.Subscribe(EventPieceCaptured, func(e Event) {
		pos, ok := e.Payload.Captured()
		require.True(t, ok)
		captured = append(captured, pos)
	})

	b, err := board.NewBoard(
		board.WithLayout("......../......../.x....../..o...../......../......../......../........"),
		board.WithUpdateHandler(UpdateHandler(p, uuid.New())),
	)
	require.NoError(t, err)
	b.PlaceAt(board.SideWhite, 2, 1, 4, 3, true)

	assert.Equal(t, []position.Pos{position.NewPos(3, 2)}, captured)
	assert.Equal(t, board.CellEmpty, b.Cell(3, 2))
}
