package speech

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
)

// CloudEngine is the premium synthesis backend. Implementations return raw
// audio bytes; the synthesizer owns file placement.
type CloudEngine interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

// PollyEngine synthesizes speech through AWS Polly using SSML with a fixed
// speaking-rate adjustment.
type PollyEngine struct {
	client *polly.Client
}

// NewPollyEngine resolves the premium-engine capability once at startup: it
// fails when no usable AWS credentials are present, and the caller then wires
// the synthesizer without a cloud engine.
func NewPollyEngine(ctx context.Context, region string) (*PollyEngine, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, fmt.Errorf("aws credentials unavailable: %w", err)
	}

	return &PollyEngine{client: polly.NewFromConfig(cfg)}, nil
}

// Synthesize renders the text to mp3 bytes with the given Polly voice.
func (e *PollyEngine) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	ssml := fmt.Sprintf("<speak><prosody rate='fast'>%s</prosody></speak>", escapeSSML(text))

	out, err := e.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(ssml),
		TextType:     pollytypes.TextTypeSsml,
		OutputFormat: pollytypes.OutputFormatMp3,
		VoiceId:      pollytypes.VoiceId(voiceID),
	})
	if err != nil {
		return nil, fmt.Errorf("polly synthesize: %w", err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("read polly audio stream: %w", err)
	}
	return audio, nil
}

var ssmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeSSML(text string) string {
	return ssmlEscaper.Replace(text)
}
