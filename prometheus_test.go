package vec

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collectorExpected = `# HELP vec_capacity_elements Number of element slots backed by acquired storage.
# TYPE vec_capacity_elements gauge
vec_capacity_elements{vector="test"} 4
# HELP vec_live_elements Number of live elements in the vector.
# TYPE vec_live_elements gauge
vec_live_elements{vector="test"} 3
`

func TestCollector(t *testing.T) {
	v := New[int64]()
	defer v.Release()
	pushAll64(t, v, 1, 2, 3)

	c := NewCollector(v, "test")
	assert.Equal(t, 5, testutil.CollectAndCount(c))

	err := testutil.CollectAndCompare(c, strings.NewReader(collectorExpected),
		"vec_live_elements", "vec_capacity_elements")
	require.NoError(t, err)
}

const liveBefore = `# HELP vec_live_elements Number of live elements in the vector.
# TYPE vec_live_elements gauge
vec_live_elements{vector="live"} 2
`

const liveAfter = `# HELP vec_live_elements Number of live elements in the vector.
# TYPE vec_live_elements gauge
vec_live_elements{vector="live"} 1
`

func TestCollectorObservesMutation(t *testing.T) {
	v := New[int64]()
	defer v.Release()
	c := NewCollector(v, "live")

	pushAll64(t, v, 1, 2)
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(liveBefore), "vec_live_elements"))

	v.PopBack()
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(liveAfter), "vec_live_elements"))
}
