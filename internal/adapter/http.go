package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

const diaryPath = "/api/diaries/{date}"

type httpDiaryAdapter struct {
	client *utils.HTTPClient

	token           string
	livenessPath    string
	livenessTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPDiaryAdapter builds a resty-based [DiaryAdapter] for the server at
// cfg.HTTPAddress, authenticating with the bearer token in appCfg.
//
// Returns an error if the address cannot be parsed as a URL.
func NewHTTPDiaryAdapter(cfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (DiaryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpDiaryAdapter{
		client:          utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		token:           strings.TrimSpace(appCfg.APIToken),
		livenessPath:    cfg.LivenessPath,
		livenessTimeout: cfg.LivenessTimeout,
		logger:          logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpDiaryAdapter) SaveDiary(ctx context.Context, req models.SaveDiaryRequest) (models.SaveDiaryResponse, error) {
	var result models.SaveDiaryResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("date", req.Date).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"content": req.Content}).
		SetResult(&result).
		Put(diaryPath)
	if err != nil {
		return models.SaveDiaryResponse{}, fmt.Errorf("save diary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveDiaryResponse{}, err
	}

	return result, nil
}

func (h *httpDiaryAdapter) GetDiary(ctx context.Context, date string) (*models.Diary, error) {
	var diary models.Diary

	resp, err := h.authedRequest(ctx).
		SetPathParam("date", date).
		SetResult(&diary).
		Get(diaryPath)
	if err != nil {
		return nil, fmt.Errorf("get diary request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if diary.Date != "" && diary.Date != date {
		return nil, fmt.Errorf("%w: asked for %s, got %s", ErrInvalidResponse, date, diary.Date)
	}

	return &diary, nil
}

func (h *httpDiaryAdapter) Ping(ctx context.Context) error {
	if h.livenessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.livenessTimeout)
		defer cancel()
	}

	resp, err := h.client.R().SetContext(ctx).Get(h.livenessPath)
	if err != nil {
		return fmt.Errorf("liveness request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDiaryAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
