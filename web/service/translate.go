package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/druglens/druglens/caching"
	"github.com/druglens/druglens/database/model"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/util/common"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Translator turns text into the target language.
type Translator interface {
	Translate(ctx context.Context, text string, target string) (string, error)
}

// TranslatedFields holds the free-text medicine fields in the target language.
type TranslatedFields struct {
	Language     string `json:"language"`
	Description  string `json:"description"`
	Dosage       string `json:"dosage"`
	SideEffects  string `json:"sideEffects"`
	Interactions string `json:"interactions"`
}

// TranslateService calls a Google-Translate-compatible "translate_a/single"
// endpoint and remembers results in cache.
type TranslateService struct {
	client  *resty.Client
	baseURL string
	cache   *caching.Cache
}

func NewTranslateService(baseURL string, timeout time.Duration, cache *caching.Cache) *TranslateService {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &TranslateService{
		client:  client,
		baseURL: baseURL,
		cache:   cache,
	}
}

func (s *TranslateService) Translate(ctx context.Context, text string, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if s.cache != nil {
		if translated, ok := s.cache.GetTranslation(target, text); ok {
			return translated, nil
		}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     target,
			"dt":     "t",
			"q":      text,
		}).
		Get(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	if resp.IsError() {
		return "", common.NewErrorf("translate request: unexpected status %d", resp.StatusCode())
	}

	translated, err := parseTranslation(resp.Body())
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		s.cache.SetTranslation(target, text, translated)
	}
	return translated, nil
}

// parseTranslation reads the sentence list from a response shaped like
// [[["translated","source",...],...],null,"en",...].
func parseTranslation(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", common.NewError("translate response: empty payload")
	}
	sentences, ok := payload[0].([]any)
	if !ok {
		return "", common.NewError("translate response: unexpected shape")
	}

	var sb strings.Builder
	for _, s := range sentences {
		parts, ok := s.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if chunk, ok := parts[0].(string); ok {
			sb.WriteString(chunk)
		}
	}
	if sb.Len() == 0 {
		return "", common.NewError("translate response: no sentences")
	}
	return sb.String(), nil
}

// TranslateMedicine translates the four free-text fields of m, one call per field.
// A field that fails to translate keeps its original text.
func TranslateMedicine(ctx context.Context, t Translator, m *model.Medicine, target string) *TranslatedFields {
	translate := func(field, text string) string {
		translated, err := t.Translate(ctx, text, target)
		if err != nil {
			logger.Warningf("translate %s of medicine %d failed: %v", field, m.Id, err)
			return text
		}
		return translated
	}
	return &TranslatedFields{
		Language:     target,
		Description:  translate("description", m.Description),
		Dosage:       translate("dosage", m.Dosage),
		SideEffects:  translate("side_effects", m.SideEffects),
		Interactions: translate("interactions", m.Interactions),
	}
}
