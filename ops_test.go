package vec

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferPolicy(t *testing.T) {
	fallibleMove := func(src *int) (int, error) { x := *src; *src = 0; return x, nil }

	tests := []struct {
		name string
		ops  Ops[int]
		want bool
	}{
		{"plain value type moves", Ops[int]{}, true},
		{"declared no-fail move moves", Ops[int]{Move: fallibleMove, MoveNoFail: true}, true},
		{"fallible move copies", Ops[int]{Move: fallibleMove}, false},
		{"fallible move with copy hook copies", Ops[int]{Move: fallibleMove, Copy: func(src *int) (int, error) { return *src, nil }}, false},
		{"move-only type is forced to move", Ops[int]{NoCopy: true, Move: fallibleMove}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ops.transferByMove())
		})
	}
}

func TestOpsDefaults(t *testing.T) {
	var ops Ops[int]

	e, err := ops.construct()
	require.NoError(t, err)
	assert.Equal(t, 0, e)

	src := 5
	c, err := ops.copyOne(&src)
	require.NoError(t, err)
	assert.Equal(t, 5, c)
	assert.Equal(t, 5, src)

	m, err := ops.move(&src)
	require.NoError(t, err)
	assert.Equal(t, 5, m)
	assert.Equal(t, 0, src, "assignment move resets the source slot")
}

func TestOpsDestroyResetsSlot(t *testing.T) {
	closed := false
	ops := Ops[*bool]{Destroy: func(p **bool) { **p = true }}

	slot := &closed
	ops.destroy(&slot)

	assert.True(t, closed, "destroy hook ran")
	assert.Nil(t, slot, "slot is reset so the block pins nothing")
}

func TestRelocateCopyFailureDestroysPrefix(t *testing.T) {
	boom := errors.New("boom")
	destroyed := 0
	ops := Ops[int]{
		Copy: func(src *int) (int, error) {
			if *src == 3 {
				return 0, boom
			}
			return *src, nil
		},
		Destroy: func(*int) { destroyed++ },
	}

	src := []int{1, 2, 3, 4}
	dst := make([]int, 4)
	err := ops.relocate(dst, src, false)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, destroyed, "already-relocated prefix is torn down")
	assert.Equal(t, []int{1, 2, 3, 4}, src, "copy failure leaves sources untouched")
}

func TestCopyOneMoveOnlyPanics(t *testing.T) {
	ops := Ops[int]{NoCopy: true}
	x := 1
	assert.Panics(t, func() { _, _ = ops.copyOne(&x) })
}
