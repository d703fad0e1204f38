package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	t.Parallel()
	tests := []struct {
		layout  string
		wantErr bool
	}{
		{layout: DefaultLayout, wantErr: false},
		{layout: testLayout, wantErr: false},
		{layout: layoutOf(".X.O....", emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, "o.x....."), wantErr: false},
		{layout: layoutOf(emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow), wantErr: false},
		{layout: "", wantErr: true},
		{layout: "invalid layout", wantErr: true},
		{layout: layoutOf(emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow), wantErr: true},
		{layout: layoutOf(emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow), wantErr: true},
		{layout: layoutOf(".......", emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow), wantErr: true},
		{layout: layoutOf(".........", emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow), wantErr: true},
		{layout: layoutOf(".k......", emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow), wantErr: true},
		{layout: layoutOf("x.......", emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow), wantErr: true},
		{layout: layoutOf(emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, ".O......"), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.layout, func(t *testing.T) {
			t.Parallel()

			b, err := NewBoard(WithLayout(tt.layout))
			if tt.layout == "" {
				// an empty layout selects the starting position
				require.NoError(t, err)
				b = &Board{}
				err = UnmarshalLayout(tt.layout, b)
			}
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLayout)
				return
			}
			require.NoError(t, err)

			got, err := MarshalLayout(b)
			require.NoError(t, err)
			assert.Equal(t, tt.layout, got)
		})
	}
}

func TestUnmarshalLayoutKeepsBoardOnError(t *testing.T) {
	t.Parallel()

	b := mustNewBoard(t)
	err := UnmarshalLayout(layoutOf(".x......", emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, "x......?"), b)
	assert.ErrorIs(t, err, ErrInvalidLayout)
	assert.Equal(t, DefaultLayout, b.Layout())
}

func TestLayoutNilBoard(t *testing.T) {
	t.Parallel()

	assert.Error(t, UnmarshalLayout(DefaultLayout, nil))
	_, err := MarshalLayout(nil)
	assert.Error(t, err)
}
