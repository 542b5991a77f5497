package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/nfnt/resize"
	openai "github.com/sashabaranov/go-openai"

	"ordina/internal/config"
	"ordina/internal/ports"
)

// VisionOCR extracts text from raster images by asking a vision-capable
// model to transcribe them. Large images are downscaled and re-encoded
// as JPEG before upload to keep request size bounded.
type VisionOCR struct {
	api      *openai.Client
	model    string
	maxWidth int
	quality  int
}

var _ ports.Extractor = (*VisionOCR)(nil)

// NewVisionOCR creates the image extractor from classifier configuration.
func NewVisionOCR(cfg config.ClassifierConfig) *VisionOCR {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &VisionOCR{
		api:      openai.NewClientWithConfig(apiCfg),
		model:    cfg.VisionModel,
		maxWidth: cfg.MaxImageWidth,
		quality:  cfg.JPEGQuality,
	}
}

// Supports matches raster image MIME types and extensions.
func (e *VisionOCR) Supports(mimeType, ext string) bool {
	if strings.HasPrefix(mimeType, "image/") {
		return true
	}
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic":
		return true
	}
	return false
}

// Extract transcribes the image. A file the standard decoders cannot
// read is uploaded as-is and left to the model.
func (e *VisionOCR) Extract(ctx context.Context, name string, data []byte) (string, error) {
	payload, mimeType := e.prepare(data)
	uri := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(payload))

	resp, err := e.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: "Transcribe all text visible in this document image. Output only the transcribed text, nothing else.",
				},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: uri, Detail: openai.ImageURLDetailAuto},
				},
			},
		}},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("vision ocr %s: %w", name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision ocr %s: no choices in response", name)
	}
	return resp.Choices[0].Message.Content, nil
}

// prepare downscales oversized images and re-encodes them as JPEG.
func (e *VisionOCR) prepare(data []byte) ([]byte, string) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, "image/jpeg"
	}

	if e.maxWidth > 0 && img.Bounds().Dx() > e.maxWidth {
		img = resize.Resize(uint(e.maxWidth), 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.quality}); err != nil {
		return data, "image/jpeg"
	}
	return buf.Bytes(), "image/jpeg"
}
