package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/babykeys/constants"
)

// AudioConfig holds synthesizer output settings
type AudioConfig struct {
	Enabled      bool // false starts muted
	MasterVolume float64
	SampleRate   int
	BufferLength time.Duration
}

// DefaultAudioConfig returns the settings used when no environment overrides exist
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constants.DefaultSampleRate,
		BufferLength: constants.DefaultBufferLength,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("BABYKEYS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv("BABYKEYS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := os.Getenv("BABYKEYS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if buffer := os.Getenv("BABYKEYS_BUFFER_MS"); buffer != "" {
		if val, err := strconv.Atoi(buffer); err == nil && val > 0 {
			cfg.BufferLength = time.Duration(val) * time.Millisecond
		}
	}

	return cfg
}
