package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/ExeHalah/PlayerInfo/internal/constants"
	"github.com/ExeHalah/PlayerInfo/internal/service/cache"
	"go.uber.org/zap"
)

const characterCacheKey = "playerinfo:character:%s"

var (
	characterNameRe = regexp.MustCompile(`"Character Name":\s?"(.*?)"`)
	characterPngRe  = regexp.MustCompile(`"Png Image":\s?"(https://[^"]+\.png)"`)
)

// CharacterService resolves skill ids against the external character
// database. Lookups are best-effort enrichment: every failure mode
// collapses to ok=false and must never take down the profile request.
type CharacterService struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.CacheService // nil when caching is disabled
	logger     *zap.Logger
}

func NewCharacterService(httpClient *http.Client, baseURL string, cacheSvc *cache.CacheService, logger *zap.Logger) *CharacterService {
	return &CharacterService{
		httpClient: httpClient,
		baseURL:    baseURL,
		cache:      cacheSvc,
		logger:     logger,
	}
}

type characterInfo struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CorrectSkillID rewrites ids whose second-to-last digit is '0' to their
// '6' variant. The character database publishes awakened skills under
// that id family; the rule comes from the game's numbering scheme and is
// preserved verbatim.
func CorrectSkillID(id string) string {
	if len(id) > 1 && id[len(id)-2] == '0' {
		return id[:len(id)-1] + "6"
	}
	return id
}

// Lookup resolves a raw skill id to the owning character's display name
// and portrait URL.
func (s *CharacterService) Lookup(ctx context.Context, skillID string) (name, image string, ok bool) {
	id := CorrectSkillID(skillID)

	if info, found := s.cached(ctx, id); found {
		return info.Name, info.Image, true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/Id=%s", s.baseURL, id), nil)
	if err != nil {
		return "", "", false
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Character lookup failed",
			zap.String("skill_id", id),
			zap.Error(err),
		)
		return "", "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		s.logger.Warn("Character lookup rejected",
			zap.String("skill_id", id),
			zap.Int("status", resp.StatusCode),
		)
		return "", "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", false
	}

	nameMatch := characterNameRe.FindSubmatch(body)
	pngMatch := characterPngRe.FindSubmatch(body)
	if nameMatch == nil || pngMatch == nil {
		return "", "", false
	}

	info := characterInfo{Name: string(nameMatch[1]), Image: string(pngMatch[1])}
	s.store(ctx, id, info)
	return info.Name, info.Image, true
}

func (s *CharacterService) cached(ctx context.Context, id string) (characterInfo, bool) {
	if s.cache == nil {
		return characterInfo{}, false
	}

	var info characterInfo
	found, err := s.cache.Get(ctx, fmt.Sprintf(characterCacheKey, id), &info)
	if err != nil || !found {
		return characterInfo{}, false
	}
	return info, true
}

func (s *CharacterService) store(ctx context.Context, id string, info characterInfo) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, fmt.Sprintf(characterCacheKey, id), info, constants.CacheTTL.CharacterInfo); err != nil {
		s.logger.Warn("Failed to cache character info", zap.String("skill_id", id), zap.Error(err))
	}
}
