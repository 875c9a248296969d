package rgbmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatFromRGBAShape(t *testing.T) {
	src := randomBuffer(t, 5, 3, 11)

	in, err := NewMatFromRGBA(src.Pix, src.Height, src.Width)
	require.NoError(t, err)
	defer in.Close()
	assert.False(t, in.Empty())
	assert.Equal(t, 3, in.Rows())
	assert.Equal(t, 5, in.Cols())

	planes := splitChannels(in)
	defer func() {
		for i := range planes {
			planes[i].Close()
		}
	}()
	mask := NewMat()
	defer mask.Close()
	assert.True(t, mask.Empty())
	channelMask(planes[0], ChannelRange{Min: 200, Max: 50}, &mask)
	assert.Equal(t, 3, mask.Rows())
	assert.Equal(t, 5, mask.Cols())

	out := NewMat()
	defer out.Close()
	mergeChannels(planes, &out)
	got := make([]byte, len(src.Pix))
	out.CopyBytesTo(got)
	assert.Equal(t, src.Pix, got, "split then merge is lossless")
}
