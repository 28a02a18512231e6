package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"roadguard/internal/config"
	"roadguard/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

const severityPrompt = `Analyze this accident scene and provide a JSON response with the following structure:
{
  "severity": <number from 0-100>,
  "analysis": "<detailed analysis>",
  "detected_injuries": ["<injury1>", "<injury2>"],
  "vehicle_damage": "<damage description>",
  "recommended_services": ["<service1>", "<service2>"]
}

Assess the severity of the accident, identify visible injuries, describe vehicle damage, and recommend appropriate emergency services (e.g., police, ambulance, fire department).`

// maxImageBytes caps how much of a fetched evidence image we read.
const maxImageBytes = 20 << 20

// VisionScorer judges accident evidence through a vision-capable chat
// model. It fails closed: any failure of the external capability yields
// the fixed fallback result, never an error, so severity analysis can
// never block intake.
type VisionScorer struct {
	client       *openai.Client
	model        string
	http         *http.Client
	fetchTimeout time.Duration
	logger       *slog.Logger
}

func NewVisionScorer(cfg config.VisionConfig, logger *slog.Logger) *VisionScorer {
	var client *openai.Client
	if cfg.APIKey != "" {
		client = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}
	return &VisionScorer{
		client:       client,
		model:        model,
		http:         &http.Client{Timeout: fetchTimeout},
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

func (s *VisionScorer) AnalyzeEvidence(ctx context.Context, imageURLs []string) domain.SeverityAnalysisResult {
	if s.client == nil {
		s.logger.Warn("vision API key not configured, using fallback analysis")
		return FallbackAnalysis()
	}

	s.logger.Info("analyzing accident evidence", slog.Int("images", len(imageURLs)))

	parts := s.fetchImageParts(ctx, imageURLs)
	if len(parts) == 0 {
		s.logger.Warn("no evidence images could be fetched, using fallback analysis",
			slog.Int("requested", len(imageURLs)))
		return FallbackAnalysis()
	}

	content := make([]openai.ChatMessagePart, 0, len(parts)+1)
	content = append(content, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: severityPrompt,
	})
	content = append(content, parts...)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: content},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		s.logger.Error("vision completion failed", slog.Any("error", err))
		return FallbackAnalysis()
	}
	if len(resp.Choices) == 0 {
		s.logger.Error("vision completion returned no choices")
		return FallbackAnalysis()
	}

	result, err := parseAnalysis(resp.Choices[0].Message.Content)
	if err != nil {
		s.logger.Error("vision response parse failed", slog.Any("error", err))
		return FallbackAnalysis()
	}

	s.logger.Info("evidence analysis complete",
		slog.Int("severity", result.Severity),
		slog.Int("images_used", len(parts)))
	return result
}

// fetchImageParts downloads the evidence images concurrently. Individual
// fetch failures are tolerated; only the successfully fetched images are
// forwarded to the model, in their original order.
func (s *VisionScorer) fetchImageParts(ctx context.Context, urls []string) []openai.ChatMessagePart {
	parts := make([]openai.ChatMessagePart, len(urls))
	fetched := make([]bool, len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			data, mimeType, err := s.fetchImage(ctx, url)
			if err != nil {
				s.logger.Warn("evidence image fetch failed",
					slog.String("url", url),
					slog.Any("error", err))
				return
			}
			parts[i] = openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
					Detail: openai.ImageURLDetailAuto,
				},
			}
			fetched[i] = true
		}(i, url)
	}
	wg.Wait()

	out := make([]openai.ChatMessagePart, 0, len(urls))
	for i := range parts {
		if fetched[i] {
			out = append(out, parts[i])
		}
	}
	return out
}

func (s *VisionScorer) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}

var codeFenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// parseAnalysis decodes the model's JSON answer, defaulting any missing
// field rather than failing the whole analysis.
func parseAnalysis(text string) (domain.SeverityAnalysisResult, error) {
	if m := codeFenceRe.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	var parsed struct {
		Severity            *int     `json:"severity"`
		Analysis            *string  `json:"analysis"`
		DetectedInjuries    []string `json:"detected_injuries"`
		VehicleDamage       *string  `json:"vehicle_damage"`
		RecommendedServices []string `json:"recommended_services"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return domain.SeverityAnalysisResult{}, err
	}

	result := domain.SeverityAnalysisResult{
		Severity:            50,
		Analysis:            "Unable to analyze",
		DetectedInjuries:    []string{},
		VehicleDamage:       "Unknown",
		RecommendedServices: []string{"police"},
	}
	if parsed.Severity != nil {
		score := *parsed.Severity
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		result.Severity = score
	}
	if parsed.Analysis != nil {
		result.Analysis = *parsed.Analysis
	}
	if parsed.DetectedInjuries != nil {
		result.DetectedInjuries = parsed.DetectedInjuries
	}
	if parsed.VehicleDamage != nil {
		result.VehicleDamage = *parsed.VehicleDamage
	}
	if parsed.RecommendedServices != nil {
		result.RecommendedServices = parsed.RecommendedServices
	}
	return result, nil
}

// FallbackAnalysis is the fixed result used whenever the vision
// capability is unavailable or its answer cannot be used.
func FallbackAnalysis() domain.SeverityAnalysisResult {
	return domain.SeverityAnalysisResult{
		Severity:            65,
		Analysis:            "Moderate collision detected with visible vehicle damage",
		DetectedInjuries:    []string{"possible minor injuries"},
		VehicleDamage:       "Front-end damage visible",
		RecommendedServices: []string{"police", "ambulance"},
	}
}
