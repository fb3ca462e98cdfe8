package game

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/decker502/reportdeck/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontName 内置字体名称
type FontName string

const (
	FontRegular FontName = "regular"
	FontBold    FontName = "bold"
	FontMono    FontName = "mono"
)

// maxTrackBytes 远程音轨的最大字节数
const maxTrackBytes = 32 << 20

// ResourceManager is responsible for centralized management of report resources.
// It provides loading and caching for font faces and the background track.
//
// Fonts come from the Go font family (golang.org/x/image/font/gofont), which
// covers the Turkish alphabet, so no font files need to be shipped.
//
// Thread Safety Note:
// Font loading is NOT thread-safe and must happen on the game goroutine.
// MusicLoader returns a TrackLoader that is safe to run on a background goroutine:
// it only touches the HTTP client and the audio context.
type ResourceManager struct {
	audioContext  *audio.Context
	httpClient    *http.Client
	fontSources   map[FontName]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager creates a ResourceManager.
//
// Parameters:
//   - audioContext: the global audio context, may be nil when audio is disabled.
//   - httpClient: client used to fetch remote tracks; nil means http.DefaultClient.
func NewResourceManager(audioContext *audio.Context, httpClient *http.Client) *ResourceManager {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ResourceManager{
		audioContext:  audioContext,
		httpClient:    httpClient,
		fontSources:   make(map[FontName]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadFont returns a face of the given built-in font and size, cached by name and size.
func (rm *ResourceManager) LoadFont(name FontName, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.fontSource(name)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

func (rm *ResourceManager) fontSource(name FontName) (*text.GoTextFaceSource, error) {
	if source, ok := rm.fontSources[name]; ok {
		return source, nil
	}

	var ttf []byte
	switch name {
	case FontRegular:
		ttf = goregular.TTF
	case FontBold:
		ttf = gobold.TTF
	case FontMono:
		ttf = gomono.TTF
	default:
		return nil, fmt.Errorf("unknown font %q", name)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source %s: %w", name, err)
	}
	rm.fontSources[name] = source
	return source, nil
}

// FetchTrack reads the raw bytes of a track.
// Sources starting with http:// or https:// are downloaded (bounded by timeout
// and maxTrackBytes); anything else is read from the embedded data filesystem.
func (rm *ResourceManager) FetchTrack(ctx context.Context, source string, timeout time.Duration) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := embedded.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read track %s: %w", source, err)
		}
		return data, nil
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", source, err)
	}

	resp, err := rm.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch track %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch track %s: unexpected status %s", source, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTrackBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read track %s: %w", source, err)
	}
	if len(data) > maxTrackBytes {
		return nil, fmt.Errorf("track %s exceeds %d bytes", source, maxTrackBytes)
	}
	return data, nil
}

// trackFormat returns the lower-case extension of the source path, ignoring any query string.
func trackFormat(source string) string {
	if i := strings.IndexAny(source, "?#"); i >= 0 {
		source = source[:i]
	}
	return strings.ToLower(path.Ext(source))
}

// NewLoopPlayer decodes MP3 or OGG data and wraps it in an infinite loop player.
// The stream is resampled to the audio context's sample rate.
func (rm *ResourceManager) NewLoopPlayer(data []byte, format string) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio is disabled")
	}

	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	switch format {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio: %w", err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio: %w", err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %q (supported: .mp3, .ogg)", format)
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player: %w", err)
	}
	return player, nil
}

// MusicLoader returns a TrackLoader that fetches and decodes the background track.
func (rm *ResourceManager) MusicLoader(source string, timeout time.Duration) TrackLoader {
	return func(ctx context.Context) (Track, error) {
		data, err := rm.FetchTrack(ctx, source, timeout)
		if err != nil {
			return nil, err
		}
		player, err := rm.NewLoopPlayer(data, trackFormat(source))
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", source, err)
		}
		return player, nil
	}
}
