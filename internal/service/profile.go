package service

import (
	"context"
	"strings"

	"github.com/ExeHalah/PlayerInfo/internal/domain"
	"github.com/ExeHalah/PlayerInfo/internal/util"
	"go.uber.org/zap"
)

// ProfileService orchestrates a profile request: region-fallback lookup,
// best-effort wishlist and skill enrichment, and assembly of the final
// document.
type ProfileService struct {
	players  *PlayerClient
	wishlist *WishlistClient
	skills   *SkillFormatter
	assets   *AssetResolver
	logger   *zap.Logger
}

func NewProfileService(players *PlayerClient, wishlist *WishlistClient, skills *SkillFormatter, assets *AssetResolver, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		players:  players,
		wishlist: wishlist,
		skills:   skills,
		assets:   assets,
		logger:   logger,
	}
}

// Fetch builds the consolidated profile for uid. region may be empty, in
// which case every shard is tried in canonical order.
func (s *ProfileService) Fetch(ctx context.Context, uid, region string) (*domain.PlayerProfile, error) {
	record, foundRegion, err := s.players.Lookup(ctx, uid, region)
	if err != nil {
		return nil, err
	}

	// The wishlist is queried against the shard that actually answered,
	// not the shard the caller asked for.
	var wishItems []domain.WishlistItem
	if wishlist, err := s.wishlist.Fetch(ctx, uid, foundRegion); err != nil {
		s.logger.Warn("Wishlist fetch failed",
			zap.String("uid", uid),
			zap.String("region", foundRegion),
			zap.Error(err),
		)
	} else {
		wishItems = wishlist.Items
	}

	skillNames, skillImages := s.skills.Format(ctx, record.AccountProfileInfo.EquippedSkills.Values())

	return s.assemble(uid, record, wishItems, skillNames, skillImages), nil
}

func (s *ProfileService) assemble(uid string, record *domain.PlayerRecord, wishItems []domain.WishlistItem, skillNames string, skillImages []string) *domain.PlayerProfile {
	account := record.AccountInfo
	profile := record.AccountProfileInfo
	captain := record.CaptainBasicInfo
	guild := record.GuildInfo
	social := record.SocialInfo
	pet := record.PetInfo
	credit := record.CreditScoreInfo

	wishlist := make([]domain.WishEntry, 0, len(wishItems))
	for _, item := range wishItems {
		wishlist = append(wishlist, domain.WishEntry{
			ItemID:      item.ItemID.String(),
			ReleaseTime: util.FormatEpoch(item.ReleaseTime.String()),
			ItemIDImage: s.image(item.ItemID),
		})
	}

	return &domain.PlayerProfile{
		AccountInfo: domain.ProfileSections{
			AccountBasicInfo: domain.AccountBasicSection{
				AccountType:          account.AccountType.String(),
				AccountName:          account.AccountName.String(),
				AccountUID:           uid,
				AccountRegion:        account.AccountRegion.String(),
				AccountLevel:         account.AccountLevel.String(),
				AccountEXP:           account.AccountEXP.String(),
				AccountBannerID:      account.AccountBannerID.String(),
				AccountAvatarID:      account.AccountAvatarID.String(),
				AccountBannerIDImage: s.image(account.AccountBannerID),
				AccountAvatarIDImage: s.image(account.AccountAvatarID),
				BrRankPoint:          account.BrRankPoint.String(),
				HasElitePass:         account.HasElitePass.Or("False"),
				Role:                 account.Role.String(),
				AccountBPBadges:      account.AccountBPBadges.String(),
				AccountBPID:          account.AccountBPID.String(),
				AccountSeasonID:      account.AccountSeasonID.String(),
				AccountLikes:         account.AccountLikes.String(),
				AccountLastLogin:     util.FormatEpoch(account.AccountLastLogin.String()),
				CsRankPoint:          account.CsRankPoint.String(),
				EquippedWeapon:       account.EquippedWeapon.String(),
				EquippedWeaponImage:  s.images(account.EquippedWeapon),
				BrMaxRank:            account.BrMaxRank.String(),
				CsMaxRank:            account.CsMaxRank.String(),
				AccountCreateTime:    util.FormatEpoch(account.AccountCreateTime.String()),
				Title:                account.Title.String(),
				TitleImage:           s.image(account.Title),
				ReleaseVersion:       account.ReleaseVersion.String(),
				ShowBrRank:           account.ShowBrRank.String(),
				ShowCsRank:           account.ShowCsRank.String(),
			},
			AccountOverview: domain.AccountOverviewSection{
				EquippedOutfit:      profile.EquippedOutfit.String(),
				EquippedOutfitImage: s.images(profile.EquippedOutfit),
				EquippedSkills:      skillNames,
				EquippedSkillsImage: strings.Join(skillImages, ", "),
			},
			GuildInfo: domain.GuildSection{
				GuildID:       guild.GuildID.String(),
				GuildName:     guild.GuildName.String(),
				GuildOwner:    guild.GuildOwner.String(),
				GuildLevel:    guild.GuildLevel.String(),
				GuildCapacity: guild.GuildCapacity.String(),
				GuildMember:   guild.GuildMember.String(),
			},
			CaptainBasicInfo: domain.CaptainSection{
				AccountID:           captain.AccountID.String(),
				AccountType:         captain.AccountType.String(),
				Nickname:            captain.Nickname.String(),
				Region:              captain.Region.String(),
				Level:               captain.Level.String(),
				Exp:                 captain.Exp.String(),
				BannerID:            captain.BannerID.String(),
				HeadPic:             captain.HeadPic.String(),
				BannerIDImage:       s.image(captain.BannerID),
				HeadPicImage:        s.image(captain.HeadPic),
				LastLoginAt:         util.FormatEpoch(captain.LastLoginAt.String()),
				Rank:                captain.Rank.String(),
				RankingPoints:       captain.RankingPoints.String(),
				EquippedWeapon:      captain.EquippedWeapon.String(),
				EquippedWeaponImage: s.images(captain.EquippedWeapon),
				MaxRank:             captain.MaxRank.String(),
				CsMaxRank:           captain.CsMaxRank.String(),
				CreateAt:            util.FormatEpoch(captain.CreateAt.String()),
				Title:               captain.Title.String(),
				TitleImage:          s.image(captain.Title),
				ReleaseVersion:      captain.ReleaseVersion.String(),
				ShowBrRank:          captain.ShowBrRank.String(),
				ShowCsRank:          captain.ShowCsRank.String(),
			},
			PetInfo: domain.PetSection{
				ID:                   pet.ID.String(),
				IDImage:              s.image(pet.ID),
				Name:                 pet.Name.String(),
				Level:                pet.Level.String(),
				Exp:                  pet.Exp.String(),
				IsSelected:           pet.IsSelected.String(),
				SkinID:               pet.SkinID.String(),
				SkinIDImage:          s.image(pet.SkinID),
				SelectedSkillID:      pet.SelectedSkillID.String(),
				SelectedSkillIDImage: s.image(pet.SelectedSkillID),
			},
			SocialInfo: domain.SocialSection{
				AccountLanguage:   social.AccountLanguage.String(),
				AccountSignature:  social.AccountSignature.String(),
				AccountPreferMode: social.AccountPreferMode.String(),
			},
			CreditScoreInfo: domain.CreditSection{
				CreditScore:              credit.CreditScore.String(),
				RewardState:              credit.RewardState.Or("0"),
				PeriodicSummaryStartTime: util.FormatEpoch(credit.PeriodicSummaryStartTime.String()),
				PeriodicSummaryEndTime:   util.FormatEpoch(credit.PeriodicSummaryEndTime.String()),
			},
			WishList: wishlist,
		},
	}
}

// image resolves a single id field to its image URL, or the sentinel.
func (s *ProfileService) image(f domain.Flex) string {
	return strings.Join(s.assets.Resolve([]string{f.String()}), ", ")
}

// images resolves a list-valued id field to a joined image URL string.
func (s *ProfileService) images(l domain.FlexList) string {
	return strings.Join(s.assets.Resolve(l.Values()), ", ")
}
