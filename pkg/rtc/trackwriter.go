// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rtc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media"
	"github.com/pion/webrtc/v3/pkg/media/h264reader"
	"github.com/pion/webrtc/v3/pkg/media/ivfreader"
	"github.com/pion/webrtc/v3/pkg/media/oggreader"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/rtc/types"
)

const h264FrameDuration = 33 * time.Millisecond

var extMimeMapping = map[string]string{
	".ivf":  webrtc.MimeTypeVP8,
	".h264": webrtc.MimeTypeH264,
	".ogg":  webrtc.MimeTypeOpus,
}

// MimeTypeForFile returns the codec a media file is played out with
func MimeTypeForFile(path string) (string, error) {
	mime, ok := extMimeMapping[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaFile, filepath.Base(path))
	}
	return mime, nil
}

// TrackWriter plays a media file out to a native track at its natural pace.
// An empty path writes placeholder samples until stopped.
type TrackWriter struct {
	logger   logger.Logger
	lock     sync.Mutex
	cancel   context.CancelFunc
	track    types.NativeTrack
	filePath string
	mime     string
	loop     bool

	onComplete func()
}

type TrackWriterParams struct {
	Logger   logger.Logger
	Track    types.NativeTrack
	MimeType string
	FilePath string
	// Loop restarts the file when it has been played out
	Loop bool
	// OnComplete is called when a non looping file has been fully written
	OnComplete func()
}

func NewTrackWriter(params TrackWriterParams) *TrackWriter {
	return &TrackWriter{
		logger:     params.Logger,
		track:      params.Track,
		filePath:   params.FilePath,
		mime:       strings.ToLower(params.MimeType),
		loop:       params.Loop,
		onComplete: params.OnComplete,
	}
}

// Start begins playout, a stopped writer can be started again
func (w *TrackWriter) Start() error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.cancel != nil {
		w.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.start(ctx); err != nil {
		cancel()
		return err
	}
	w.cancel = cancel
	return nil
}

func (w *TrackWriter) start(ctx context.Context) error {
	if w.filePath == "" {
		go w.writeNull(ctx)
		return nil
	}

	file, err := os.Open(w.filePath)
	if err != nil {
		return err
	}

	w.logger.Debugw(
		"starting track writer",
		"trackID", w.track.ID(),
		"mime", w.mime,
		"path", w.filePath,
	)
	switch w.mime {
	case strings.ToLower(webrtc.MimeTypeOpus):
		ogg, _, err := oggreader.NewWith(file)
		if err != nil {
			_ = file.Close()
			return err
		}
		go w.writeOgg(ctx, file, ogg)
	case strings.ToLower(webrtc.MimeTypeVP8):
		ivf, header, err := ivfreader.NewWith(file)
		if err != nil {
			_ = file.Close()
			return err
		}
		go w.writeVP8(ctx, file, ivf, header)
	case strings.ToLower(webrtc.MimeTypeH264):
		h264, err := h264reader.NewReader(file)
		if err != nil {
			_ = file.Close()
			return err
		}
		go w.writeH264(ctx, file, h264)
	default:
		_ = file.Close()
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaFile, w.mime)
	}
	return nil
}

func (w *TrackWriter) Stop() {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

func (w *TrackWriter) writeNull(ctx context.Context) {
	sample := media.Sample{Data: []byte{0x0, 0xff, 0xff, 0xff, 0xff}, Duration: 30 * time.Millisecond}
	h264Sample := media.Sample{Data: []byte{0x00, 0x00, 0x00, 0x01, 0x7, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x01, 0x8, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x01, 0x5, 0xff, 0xff, 0xff, 0xff}, Duration: 30 * time.Millisecond}
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if w.mime == strings.ToLower(webrtc.MimeTypeH264) {
				_ = w.track.WriteSample(h264Sample)
			} else {
				_ = w.track.WriteSample(sample)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *TrackWriter) writeOgg(ctx context.Context, file *os.File, ogg *oggreader.OggReader) {
	defer file.Close()

	// Keep track of last granule, the difference is the amount of samples in the buffer
	var lastGranule uint64
	for {
		if ctx.Err() != nil {
			return
		}
		pageData, pageHeader, err := ogg.ParseNextPage()
		if errors.Is(err, io.EOF) {
			if w.rewind(file) {
				if ogg, _, err = oggreader.NewWith(file); err == nil {
					lastGranule = 0
					continue
				}
			}
			w.logger.Debugw("all audio samples parsed and sent", "trackID", w.track.ID())
			w.onWriteComplete()
			return
		}
		if err != nil {
			w.logger.Errorw("could not parse ogg page", err, "trackID", w.track.ID())
			return
		}

		// The amount of samples is the difference between the last and current timestamp
		sampleCount := float64(pageHeader.GranulePosition - lastGranule)
		lastGranule = pageHeader.GranulePosition
		sampleDuration := time.Duration((sampleCount/48000)*1000) * time.Millisecond

		if err = w.track.WriteSample(media.Sample{Data: pageData, Duration: sampleDuration}); err != nil {
			w.logger.Errorw("could not write sample", err, "trackID", w.track.ID())
			return
		}

		if !w.sleep(ctx, sampleDuration) {
			return
		}
	}
}

func (w *TrackWriter) writeVP8(ctx context.Context, file *os.File, ivf *ivfreader.IVFReader, header *ivfreader.IVFFileHeader) {
	defer file.Close()

	// Send our video file frame at a time. Pace our sending such that we send it at the same speed it should be played back as.
	sleepTime := time.Millisecond * time.Duration((float32(header.TimebaseNumerator)/float32(header.TimebaseDenominator))*1000)
	for {
		if ctx.Err() != nil {
			return
		}
		frame, _, err := ivf.ParseNextFrame()
		if errors.Is(err, io.EOF) {
			if w.rewind(file) {
				if ivf, header, err = ivfreader.NewWith(file); err == nil {
					continue
				}
			}
			w.logger.Debugw("all video frames parsed and sent", "trackID", w.track.ID())
			w.onWriteComplete()
			return
		}
		if err != nil {
			w.logger.Errorw("could not parse VP8 frame", err, "trackID", w.track.ID())
			return
		}

		if !w.sleep(ctx, sleepTime) {
			return
		}
		if err = w.track.WriteSample(media.Sample{Data: frame, Duration: sleepTime}); err != nil {
			w.logger.Errorw("could not write sample", err, "trackID", w.track.ID())
			return
		}
	}
}

func (w *TrackWriter) writeH264(ctx context.Context, file *os.File, h264 *h264reader.H264Reader) {
	defer file.Close()

	for {
		if ctx.Err() != nil {
			return
		}
		nal, err := h264.NextNAL()
		if errors.Is(err, io.EOF) {
			if w.rewind(file) {
				if h264, err = h264reader.NewReader(file); err == nil {
					continue
				}
			}
			w.logger.Debugw("all h264 NALs parsed and sent", "trackID", w.track.ID())
			w.onWriteComplete()
			return
		}
		if err != nil {
			w.logger.Errorw("could not parse h264 NAL", err, "trackID", w.track.ID())
			return
		}

		if !w.sleep(ctx, h264FrameDuration) {
			return
		}
		if err = w.track.WriteSample(media.Sample{Data: nal.Data, Duration: h264FrameDuration}); err != nil {
			w.logger.Errorw("could not write sample", err, "trackID", w.track.ID())
			return
		}
	}
}

func (w *TrackWriter) rewind(file *os.File) bool {
	if !w.loop {
		return false
	}
	_, err := file.Seek(0, io.SeekStart)
	return err == nil
}

func (w *TrackWriter) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *TrackWriter) onWriteComplete() {
	if w.onComplete != nil {
		w.onComplete()
	}
}
