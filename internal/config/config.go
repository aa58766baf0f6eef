package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates the configuration for the whole service.
type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Speech SpeechConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	model, err := loadModelConfig()
	if err != nil {
		return nil, err
	}

	speech, err := loadSpeechConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Model: model, Speech: speech}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// InstructionFormat holds the wrapping tokens expected by the configured
// text-generation model. The defaults match the Mistral instruction
// convention; other providers can override them without code changes.
type InstructionFormat struct {
	Open  string
	Close string
}

// ResponseMarker is the token separating an echoed instruction block from the
// model's own answer in the provider response.
func (f InstructionFormat) ResponseMarker() string {
	return strings.TrimSpace(f.Close)
}

// ModelConfig describes the remote text-generation provider.
type ModelConfig struct {
	Endpoint    string
	APIToken    string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Sampling    bool
	Timeout     int // seconds; 0 keeps calls unbounded
	Instruction InstructionFormat
}

// Enabled reports whether a generation endpoint has been configured.
func (c ModelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func loadModelConfig() (ModelConfig, error) {
	maxTokens := 256
	if override, err := parseOptionalIntEnv("MODEL_MAX_TOKENS"); err != nil {
		return ModelConfig{}, err
	} else if override != nil {
		maxTokens = *override
	}

	temperature := 0.7
	if override, err := parseOptionalFloatEnv("MODEL_TEMPERATURE"); err != nil {
		return ModelConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	topP := 0.95
	if override, err := parseOptionalFloatEnv("MODEL_TOP_P"); err != nil {
		return ModelConfig{}, err
	} else if override != nil {
		topP = *override
	}

	sampling, err := parseBoolEnv("MODEL_SAMPLING", true)
	if err != nil {
		return ModelConfig{}, err
	}

	timeout := 0
	if override, err := parseOptionalIntEnv("MODEL_TIMEOUT"); err != nil {
		return ModelConfig{}, err
	} else if override != nil {
		timeout = *override
	}

	return ModelConfig{
		Endpoint:    getEnvOrDefault("MODEL_ENDPOINT", "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"),
		APIToken:    strings.TrimSpace(os.Getenv("MODEL_API_TOKEN")),
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
		Sampling:    sampling,
		Timeout:     timeout,
		Instruction: InstructionFormat{
			Open:  getEnvOrDefault("MODEL_INSTRUCTION_OPEN", "<s>[INST] "),
			Close: getEnvOrDefault("MODEL_INSTRUCTION_CLOSE", " [/INST]"),
		},
	}, nil
}

// SpeechConfig describes the speech-synthesis pipeline.
type SpeechConfig struct {
	AudioDir       string
	PublicPrefix   string
	Region         string
	VoicesFile     string
	PremiumEnabled bool
}

func loadSpeechConfig() (SpeechConfig, error) {
	premium, err := parseBoolEnv("SPEECH_PREMIUM", true)
	if err != nil {
		return SpeechConfig{}, err
	}

	return SpeechConfig{
		AudioDir:       getEnvOrDefault("SPEECH_AUDIO_DIR", "static/audio"),
		PublicPrefix:   getEnvOrDefault("SPEECH_PUBLIC_PREFIX", "/static/audio"),
		Region:         getEnvOrDefault("SPEECH_REGION", "us-west-2"),
		VoicesFile:     strings.TrimSpace(os.Getenv("SPEECH_VOICES_FILE")),
		PremiumEnabled: premium,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
