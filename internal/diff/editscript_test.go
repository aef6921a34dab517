package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEditScript(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     []EditRange
	}{
		{
			name: "classic",
			old:  "ABCABBA",
			new:  "CBABAC",
			want: []EditRange{
				{Old: Bounds{0, 2}, New: Bounds{0, 0}},
				{Old: Bounds{3, 4}, New: Bounds{1, 1}},
				{Old: Bounds{5, 5}, New: Bounds{2, 3}},
				{Old: Bounds{7, 7}, New: Bounds{5, 6}},
			},
		},
		{
			name: "adjacent insert and delete coalesce",
			old:  "bat",
			new:  "map",
			want: []EditRange{
				{Old: Bounds{0, 1}, New: Bounds{0, 1}},
				{Old: Bounds{2, 3}, New: Bounds{2, 3}},
			},
		},
		{
			name: "replace everything",
			old:  "abc",
			new:  "def",
			want: []EditRange{
				{Old: Bounds{0, 3}, New: Bounds{0, 3}},
			},
		},
		{
			name: "identical",
			old:  "abc",
			new:  "abc",
			want: nil,
		},
		{
			name: "both empty",
			old:  "",
			new:  "",
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildEditScript(DiffRanges([]byte(tc.old), []byte(tc.new)))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildEditScript_Ordered(t *testing.T) {
	old := []byte("the quick brown fox jumps over the lazy dog")
	new := []byte("a quick brown cat leaps over one lazy dog!")
	script := BuildEditScript(DiffRanges(old, new))

	prevOld, prevNew := -1, -1
	for i, er := range script {
		assert.False(t, er.Old.IsEmpty() && er.New.IsEmpty(), "region %d is empty", i)
		// Regions are separated by at least one unchanged element.
		assert.Greater(t, er.Old.Start, prevOld, "region %d", i)
		assert.Greater(t, er.New.Start, prevNew, "region %d", i)
		if i > 0 {
			assert.Equal(t, er.Old.Start-script[i-1].Old.End, er.New.Start-script[i-1].New.End, "gap before region %d", i)
		}
		prevOld, prevNew = er.Old.End, er.New.End
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Start: 2, End: 5}
	assert.Equal(t, 3, b.Len())
	assert.False(t, b.IsEmpty())
	assert.Equal(t, "2..5", b.String())
	assert.True(t, Bounds{Start: 4, End: 4}.IsEmpty())
}
