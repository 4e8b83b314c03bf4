package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sphildreth/melodee-sub003/internal/platform/apperr"
)

func membership(songIDs ...int) []*PlaylistSong {
	out := make([]*PlaylistSong, len(songIDs))
	for i, id := range songIDs {
		out[i] = &PlaylistSong{SongID: id, PlaylistOrder: i + 1}
	}
	return out
}

func TestCheckPermutation(t *testing.T) {
	tests := []struct {
		name    string
		current []*PlaylistSong
		order   []int
		wantErr bool
	}{
		{"identity", membership(1, 2, 3), []int{1, 2, 3}, false},
		{"reversed", membership(1, 2, 3), []int{3, 2, 1}, false},
		{"shuffled", membership(1, 2, 3, 4), []int{2, 4, 1, 3}, false},
		{"single song", membership(9), []int{9}, false},
		{"both empty", nil, nil, false},
		{"missing song", membership(1, 2, 3), []int{1, 2}, true},
		{"extra song", membership(1, 2), []int{1, 2, 3}, true},
		{"foreign song", membership(1, 2, 3), []int{1, 2, 99}, true},
		{"duplicated song", membership(1, 2, 3), []int{1, 2, 2}, true},
		{"duplicate hides missing", membership(1, 2, 3), []int{1, 1, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPermutation(tt.current, tt.order)
			if tt.wantErr {
				assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
