package service

import (
	"bytes"
	"context"
	"cronos_backend/internal/config"
	"cronos_backend/internal/util"
	"cronos_backend/pkg/logger"
	"cronos_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService fala com a API generateContent do Gemini. Mantém a lista
// ordenada de chaves e o índice da última chave que funcionou: quando uma
// chave devolve 429 (quota esgotada) a chamada avança para a próxima, e o
// sucesso atualiza o índice compartilhado para que chamadas seguintes não
// insistam em uma chave esgotada. O índice é best-effort sob concorrência.
type GeminiService struct {
	baseURL string
	model   string
	client  *http.Client

	mu       sync.Mutex
	keys     []string
	current  int
	requests uint64
}

func NewGeminiService(cfg config.AIConfig) *GeminiService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiService{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 90 * time.Second},
		keys:    append([]string(nil), cfg.Keys...),
	}
}

// UpdateKeys troca a lista de credenciais (recarga de configuração).
func (s *GeminiService) UpdateKeys(keys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append([]string(nil), keys...)
	if s.current >= len(s.keys) {
		s.current = 0
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate envia o prompt e devolve o texto concatenado da resposta.
// Percorre as chaves a partir do índice corrente apenas em caso de 429;
// qualquer outra falha (transporte, status não-2xx, corpo vazio) é
// devolvida imediatamente como ProviderError.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	keys := s.keys
	start := s.current
	s.requests++
	seq := s.requests
	s.mu.Unlock()

	if len(keys) == 0 {
		return "", &util.ProviderError{Kind: util.ProviderUnreachable, Err: fmt.Errorf("nenhuma chave configurada")}
	}

	logger.Log.Debug("gemini call", zap.Uint64("seq", seq), zap.Int("start_key", start+1))

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", &util.ProviderError{Kind: util.ProviderMalformed, Err: err}
	}

	for i := 0; i < len(keys); i++ {
		keyIndex := (start + i) % len(keys)
		endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
			s.baseURL, s.model, url.QueryEscape(keys[keyIndex]))

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return "", &util.ProviderError{Kind: util.ProviderUnreachable, Err: err}
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			monitoring.AIRequestCounter.WithLabelValues(strconv.Itoa(keyIndex+1), "unreachable").Inc()
			return "", &util.ProviderError{Kind: util.ProviderUnreachable, Err: err}
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			monitoring.AIRequestCounter.WithLabelValues(strconv.Itoa(keyIndex+1), "rate_limited").Inc()
			logger.Log.Warn("gemini key rate limited, trying next",
				zap.Int("key", keyIndex+1), zap.Int("keys", len(keys)))
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			resp.Body.Close()
			monitoring.AIRequestCounter.WithLabelValues(strconv.Itoa(keyIndex+1), "error").Inc()
			logger.Log.Error("gemini error response",
				zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))
			return "", &util.ProviderError{Kind: util.ProviderUnreachable, Status: resp.StatusCode}
		}

		var parsed geminiResponse
		err = json.NewDecoder(resp.Body).Decode(&parsed)
		resp.Body.Close()
		if err != nil {
			monitoring.AIRequestCounter.WithLabelValues(strconv.Itoa(keyIndex+1), "malformed").Inc()
			return "", &util.ProviderError{Kind: util.ProviderMalformed, Err: err}
		}

		text := extractText(&parsed)
		if text == "" {
			monitoring.AIRequestCounter.WithLabelValues(strconv.Itoa(keyIndex+1), "empty").Inc()
			return "", &util.ProviderError{Kind: util.ProviderEmptyResponse, Status: resp.StatusCode}
		}

		s.mu.Lock()
		s.current = keyIndex
		s.mu.Unlock()
		monitoring.AIRequestCounter.WithLabelValues(strconv.Itoa(keyIndex+1), "ok").Inc()
		return text, nil
	}

	return "", &util.ProviderError{Kind: util.ProviderRateLimited, Status: http.StatusTooManyRequests}
}

func extractText(resp *geminiResponse) string {
	var parts []string
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				parts = append(parts, part.Text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
