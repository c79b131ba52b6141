package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelEvents(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"single", 1},
		{"many", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make([]TransferEvent, tt.n)
			LabelEvents(events)
			mints := 0
			for i, e := range events {
				if e.Label == LabelMint {
					mints++
					assert.Equal(t, tt.n-1, i)
				} else {
					assert.Equal(t, LabelTransfer, e.Label)
				}
			}
			if tt.n > 0 {
				assert.Equal(t, 1, mints)
			}
		})
	}
}
