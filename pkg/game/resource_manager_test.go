package game

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/reportdeck/pkg/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadFontCached 测试字体按名称与字号缓存
func TestLoadFontCached(t *testing.T) {
	rm := NewResourceManager(nil, nil)

	face, err := rm.LoadFont(FontBold, 24)
	require.NoError(t, err)
	assert.Equal(t, 24.0, face.Size)

	again, err := rm.LoadFont(FontBold, 24)
	require.NoError(t, err)
	assert.Same(t, face, again)

	other, err := rm.LoadFont(FontBold, 12)
	require.NoError(t, err)
	assert.NotSame(t, face, other)
	assert.Same(t, face.Source, other.Source, "sizes share one font source")

	_, err = rm.LoadFont(FontName("comic"), 12)
	assert.Error(t, err)
}

// TestFetchTrackRemote 测试远程音轨下载
func TestFetchTrackRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bg.mp3":
			_, _ = w.Write([]byte("ID3-fake"))
		case "/slow.mp3":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	rm := NewResourceManager(nil, server.Client())

	data, err := rm.FetchTrack(context.Background(), server.URL+"/bg.mp3", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ID3-fake", string(data))

	_, err = rm.FetchTrack(context.Background(), server.URL+"/missing.mp3", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	_, err = rm.FetchTrack(context.Background(), server.URL+"/slow.mp3", 20*time.Millisecond)
	assert.Error(t, err, "fetch should honour the timeout")
}

// TestFetchTrackEmbedded 测试从嵌入文件系统读取音轨
func TestFetchTrackEmbedded(t *testing.T) {
	embedded.InitFS(fstest.MapFS{
		"data/audio/bg.ogg": {Data: []byte("OggS")},
	})
	t.Cleanup(func() { useRepoData(t) })

	rm := NewResourceManager(nil, nil)
	data, err := rm.FetchTrack(context.Background(), "data/audio/bg.ogg", 0)
	require.NoError(t, err)
	assert.Equal(t, "OggS", string(data))

	_, err = rm.FetchTrack(context.Background(), "data/audio/missing.ogg", 0)
	assert.Error(t, err)
}

// TestTrackFormat 测试音轨格式识别
func TestTrackFormat(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"https://beyincikisleri.co/bg.mp3", ".mp3"},
		{"https://example.com/Track.OGG?v=2", ".ogg"},
		{"data/audio/bg.ogg#loop", ".ogg"},
		{"https://example.com/stream", ""},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, trackFormat(tt.source))
		})
	}
}

// TestMusicLoaderWithoutAudioContext 音频禁用时加载器返回错误而不是崩溃
func TestMusicLoaderWithoutAudioContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not really mp3"))
	}))
	defer server.Close()

	rm := NewResourceManager(nil, server.Client())
	loader := rm.MusicLoader(server.URL+"/bg.mp3", time.Second)

	track, err := loader(context.Background())
	assert.Nil(t, track)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "audio is disabled"), err.Error())
}
