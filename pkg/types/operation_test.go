package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		valid bool
	}{
		{"row", KindRow, true},
		{"Panel", KindPanel, true},
		{" ROW ", KindRow, true},
		{"dashboard", Kind("dashboard"), false},
		{"", Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeKind(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, got.Valid())
		})
	}
}

func TestKindAndOperationText(t *testing.T) {
	assert.Equal(t, "Row", KindRow.Title())
	assert.Equal(t, "Panel", KindPanel.Title())
	assert.Equal(t, "moved", OperationMove.PastTense())
	assert.Equal(t, "copied", OperationCopy.PastTense())
	assert.False(t, Kind("dashboard").Valid())
	assert.False(t, Operation("rename").Valid())
}
