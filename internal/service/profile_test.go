package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ExeHalah/PlayerInfo/internal/domain"
	"go.uber.org/zap"
)

func newProfileService(t *testing.T, player, wishlist, character http.HandlerFunc) *ProfileService {
	t.Helper()

	playerSrv := httptest.NewServer(player)
	t.Cleanup(playerSrv.Close)
	wishlistSrv := httptest.NewServer(wishlist)
	t.Cleanup(wishlistSrv.Close)
	characterSrv := httptest.NewServer(character)
	t.Cleanup(characterSrv.Close)

	logger := zap.NewNop()
	httpClient := &http.Client{}
	assets := NewAssetResolver("https://img.example.com/output")
	characters := NewCharacterService(httpClient, characterSrv.URL, nil, logger)
	skills := NewSkillFormatter(characters)
	players := NewPlayerClient(httpClient, playerSrv.URL, []string{"ind", "sg", "br"}, logger)
	wishlistClient := NewWishlistClient(httpClient, wishlistSrv.URL, logger)

	return NewProfileService(players, wishlistClient, skills, assets, logger)
}

func noCalls(t *testing.T, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected call to %s: %s", name, r.URL.String())
	}
}

func TestFetchSurvivesWishlistFailure(t *testing.T) {
	svc := newProfileService(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"AccountInfo": {"AccountName": "Player1", "AccountLevel": 62}}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		noCalls(t, "character API"),
	)

	profile, err := svc.Fetch(context.Background(), "123", "sg")
	if err != nil {
		t.Fatalf("expected degraded success, got %v", err)
	}

	basic := profile.AccountInfo.AccountBasicInfo
	if basic.AccountName != "Player1" {
		t.Fatalf("unexpected account name: %q", basic.AccountName)
	}
	if basic.AccountLevel != "62" {
		t.Fatalf("expected numeric level coerced to string, got %q", basic.AccountLevel)
	}
	if len(profile.AccountInfo.WishList) != 0 {
		t.Fatalf("expected empty wishlist, got %v", profile.AccountInfo.WishList)
	}
}

func TestFetchQueriesWishlistAgainstWinningRegion(t *testing.T) {
	var wishlistRegion string
	svc := newProfileService(t,
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("region") == "sg" {
				w.Write([]byte(`{"AccountInfo": {"AccountName": "Player1"}}`))
				return
			}
			w.Write([]byte(`{}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			wishlistRegion = r.URL.Query().Get("region")
			w.Write([]byte(`{"items": [{"itemId": 1001000001, "releaseTime": 1700000000}]}`))
		},
		noCalls(t, "character API"),
	)

	profile, err := svc.Fetch(context.Background(), "123", "")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if wishlistRegion != "sg" {
		t.Fatalf("expected wishlist to be queried against sg, got %q", wishlistRegion)
	}

	wishlist := profile.AccountInfo.WishList
	if len(wishlist) != 1 {
		t.Fatalf("expected one wishlist entry, got %v", wishlist)
	}
	entry := wishlist[0]
	if entry.ItemID != "1001000001" {
		t.Fatalf("unexpected item id: %q", entry.ItemID)
	}
	if entry.ReleaseTime != "2023-11-14 22:13:20" {
		t.Fatalf("unexpected release time: %q", entry.ReleaseTime)
	}
	if !strings.HasSuffix(entry.ItemIDImage, "/1001000001.png") {
		t.Fatalf("unexpected item image: %q", entry.ItemIDImage)
	}
}

func TestFetchResolvesEquippedSkills(t *testing.T) {
	svc := newProfileService(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"AccountInfo": {"AccountName": "Player1"},
				"AccountProfileInfo": {"EquippedSkills": [1109]}
			}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": []}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Character Name": "Alok", "Png Image": "https://cdn.example.com/alok.png"}`))
		},
	)

	profile, err := svc.Fetch(context.Background(), "123", "sg")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	overview := profile.AccountInfo.AccountOverview
	if overview.EquippedSkills != "Alok" {
		t.Fatalf("unexpected skills display: %q", overview.EquippedSkills)
	}
	if overview.EquippedSkillsImage != "https://cdn.example.com/alok.png" {
		t.Fatalf("unexpected skills image: %q", overview.EquippedSkillsImage)
	}
}

func TestFetchSubstitutesDefaultsForAbsentFields(t *testing.T) {
	svc := newProfileService(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"AccountInfo": {"AccountName": "Player1", "ShowBrRank": true, "EquippedWeapon": [907102816, 907102817]}}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": []}`))
		},
		noCalls(t, "character API"),
	)

	profile, err := svc.Fetch(context.Background(), "123", "sg")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	basic := profile.AccountInfo.AccountBasicInfo
	if basic.HasElitePass != "False" {
		t.Fatalf("expected elite pass default False, got %q", basic.HasElitePass)
	}
	if basic.ShowBrRank != "True" {
		t.Fatalf("expected bool rendered as True, got %q", basic.ShowBrRank)
	}
	if basic.EquippedWeapon != "[907102816, 907102817]" {
		t.Fatalf("unexpected weapon list rendering: %q", basic.EquippedWeapon)
	}
	if basic.EquippedWeaponImage != "https://img.example.com/output/907102816.png, https://img.example.com/output/907102817.png" {
		t.Fatalf("unexpected weapon images: %q", basic.EquippedWeaponImage)
	}
	if basic.AccountBannerID != domain.NotFound || basic.AccountBannerIDImage != domain.NotFound {
		t.Fatalf("expected banner defaults, got %q / %q", basic.AccountBannerID, basic.AccountBannerIDImage)
	}

	if got := profile.AccountInfo.GuildInfo.GuildID; got != domain.NotFound {
		t.Fatalf("expected guild default, got %q", got)
	}
	if got := profile.AccountInfo.CreditScoreInfo.RewardState; got != "0" {
		t.Fatalf("expected reward state default 0, got %q", got)
	}
	if got := profile.AccountInfo.AccountOverview.EquippedSkills; got != domain.NotFound {
		t.Fatalf("expected skills default, got %q", got)
	}
}
