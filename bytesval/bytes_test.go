package bytesval

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBytes_Get(t *testing.T) {
	b := Wrap([]byte{0x01, 0x02})
	require.Equal(t, 2, b.Size())

	v, err := b.Get(1)
	require.NoError(t, err)
	require.EqualValues(t, 0x02, v)

	_, err = b.Get(2)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = b.Get(-1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestBytes_CopyTo(t *testing.T) {
	src := Wrap([]byte{0xca, 0xfe})
	dest := NewMutable(4)
	require.NoError(t, src.CopyTo(dest, 2))
	require.Equal(t, []byte{0x00, 0x00, 0xca, 0xfe}, dest.Freeze().ToSlice())

	err := src.CopyTo(dest, 3)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	// a failed copy leaves the destination untouched
	require.Equal(t, []byte{0x00, 0x00, 0xca, 0xfe}, dest.Freeze().ToSlice())
}

func TestBytes_Slice(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4})
	s, err := b.Slice(1, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3}, s.ToSlice())

	_, err = b.Slice(3, 2)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		in  string
		out []byte
		err bool
	}{
		{"", []byte{}, false},
		{"0x", []byte{}, false},
		{"cafe", []byte{0xca, 0xfe}, false},
		{"0xCAFE", []byte{0xca, 0xfe}, false},
		{"abc", nil, true},
		{"zz", nil, true},
	}
	for _, tt := range tests {
		b, err := FromHex(tt.in)
		if tt.err {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.out, b.ToSlice())
	}
}

func TestMutable_SetGet(t *testing.T) {
	m := NewMutable(1)
	require.NoError(t, m.Set(0, 0xff))
	v, err := m.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, 0xff, v)

	require.True(t, errors.Is(m.Set(1, 0x00), ErrIndexOutOfRange))
	_, err = m.Window(0, 2)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestBytes_String(t *testing.T) {
	require.Equal(t, "0xcafe", Wrap([]byte{0xca, 0xfe}).String())
	require.True(t, Wrap([]byte{1}).Equal(Wrap([]byte{1})))
	require.False(t, Wrap([]byte{1}).Equal(Wrap([]byte{2})))
}
