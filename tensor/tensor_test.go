package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxgo/tensor"
)

func identity2(t *testing.T, a, b string) *tensor.Tensor {
	t.Helper()
	tn, err := tensor.New([]string{a, b}, []int{2, 2})
	require.NoError(t, err)
	require.NoError(t, tn.Set([]int{0, 0}, 1))
	require.NoError(t, tn.Set([]int{1, 1}, 1))
	return tn
}

func TestTensorDot_IdentityComposedWithIdentityIsIdentity(t *testing.T) {
	a := identity2(t, "i", "j")
	b := identity2(t, "j", "k")

	out, err := tensor.TensorDot(a, b)
	require.NoError(t, err)
	m, err := tensor.ToMatrix(out, []string{"i"}, []string{"k"})
	require.NoError(t, err)

	want := [][]complex128{{1, 0}, {0, 1}}
	for i := range want {
		require.Equal(t, want[i], m[i])
	}
}

func TestTensorDot_FullContractionYieldsScalar(t *testing.T) {
	a, err := tensor.New([]string{"x"}, []int{2})
	require.NoError(t, err)
	require.NoError(t, a.Set([]int{0}, 1))
	require.NoError(t, a.Set([]int{1}, 2))
	b, err := tensor.New([]string{"x"}, []int{2})
	require.NoError(t, err)
	require.NoError(t, b.Set([]int{0}, 3))
	require.NoError(t, b.Set([]int{1}, 4))

	out, err := tensor.TensorDot(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, out.Rank())

	v, err := out.At(nil)
	require.NoError(t, err)
	require.Equal(t, complex(11, 0), v) // 1*3 + 2*4
}

func TestPermute_ReordersAxesWithoutChangingElements(t *testing.T) {
	a, err := tensor.New([]string{"i", "j"}, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, a.Set([]int{1, 2}, 5))

	out, err := tensor.Permute(a, []string{"j", "i"})
	require.NoError(t, err)

	v, err := out.At([]int{2, 1})
	require.NoError(t, err)
	require.Equal(t, complex(5, 0), v)
}
