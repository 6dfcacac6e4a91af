package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/ExeHalah/PlayerInfo/internal/constants"
	"github.com/ExeHalah/PlayerInfo/internal/domain"
	"github.com/ExeHalah/PlayerInfo/internal/util"
	"github.com/ExeHalah/PlayerInfo/pkg/errors"
	"go.uber.org/zap"
)

// PlayerClient queries the region-sharded player-info API.
type PlayerClient struct {
	httpClient *http.Client
	baseURL    string
	regions    []string
	logger     *zap.Logger
}

func NewPlayerClient(httpClient *http.Client, baseURL string, regions []string, logger *zap.Logger) *PlayerClient {
	return &PlayerClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		regions:    regions,
		logger:     logger,
	}
}

// Lookup finds the player record, trying each candidate region in order
// until one returns valid account data, and reports the region that won.
// The search is sequential on purpose: a caller who already supplies the
// right region costs exactly one upstream call.
func (c *PlayerClient) Lookup(ctx context.Context, uid, region string) (*domain.PlayerRecord, string, error) {
	candidates := c.regions
	if region != "" {
		region = util.Normalize(region)
		if !util.Contains(c.regions, region) {
			return nil, "", errors.NewValidationError(constants.Messages.InvalidRegion, "region", region)
		}
		candidates = []string{region}
	}

	for _, reg := range candidates {
		record, err := c.fetch(ctx, uid, reg)
		if err != nil {
			// Shard errors mean "not here", not "give up".
			c.logger.Warn("Player info query failed",
				zap.String("uid", uid),
				zap.String("region", reg),
				zap.Error(err),
			)
			continue
		}
		if record.Valid() {
			return record, reg, nil
		}
	}

	return nil, "", errors.NewAPIError(constants.Messages.InvalidUIDOrRegion, http.StatusBadRequest, map[string]any{
		"uid":    uid,
		"region": region,
	})
}

func (c *PlayerClient) fetch(ctx context.Context, uid, region string) (*domain.PlayerRecord, error) {
	params := url.Values{}
	params.Set("uid", uid)
	params.Set("region", region)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var record domain.PlayerRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
