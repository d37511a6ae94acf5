package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/platform/config"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/kakao"
)

const kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"

// authService implements the AuthSvcFacade. It is the only component that
// talks to the external identity provider.
type authService struct {
	cfg          *config.Config
	userRepo     portsrepo.UserRepository
	refreshRepo  portsrepo.RefreshTokenRepository
	oauth2Config *oauth2.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, refreshRepo portsrepo.RefreshTokenRepository) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.KakaoClientID,
			ClientSecret: cfg.KakaoClientSecret,
			RedirectURL:  cfg.KakaoRedirectURL,
			Endpoint:     kakao.Endpoint,
		},
	}
}

// kakaoUserResponse mirrors the payload of the Kakao userinfo endpoint.
type kakaoUserResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount *struct {
		Email *string `json:"email"`
	} `json:"kakao_account"`
	Properties *struct {
		Nickname     *string `json:"nickname"`
		ProfileImage *string `json:"profile_image"`
	} `json:"properties"`
}

// fetchKakaoUser exchanges the authorization code for a provider token and
// fetches the external profile. When Kakao is unconfigured it substitutes a
// deterministic placeholder identity; that fallback is for development only
// and is refused in production.
func (s *authService) fetchKakaoUser(ctx context.Context, code string) (*domain.KakaoUserInfo, error) {
	if s.cfg.KakaoClientID == "" {
		if s.cfg.IsProduction {
			return nil, errors.New("kakao oauth is not configured")
		}
		return &domain.KakaoUserInfo{
			KakaoID:  "demo_" + uuid.NewString(),
			Nickname: "데모유저",
			Email:    "demo@likebike.kr",
		}, nil
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange kakao code for token: %w", err)
	}

	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(kakaoUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from kakao: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo kakaoUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from kakao: %w", err)
	}

	info := &domain.KakaoUserInfo{
		KakaoID:  strconv.FormatInt(userInfo.ID, 10),
		Nickname: "유저",
	}
	if userInfo.Properties != nil {
		if userInfo.Properties.Nickname != nil {
			info.Nickname = *userInfo.Properties.Nickname
		}
		info.ProfileImage = userInfo.Properties.ProfileImage
	}
	if userInfo.KakaoAccount != nil && userInfo.KakaoAccount.Email != nil {
		info.Email = *userInfo.KakaoAccount.Email
	}
	return info, nil
}

// findOrCreateUser looks up the local user for an external identity,
// registering a fresh level-1 user on first login.
func (s *authService) findOrCreateUser(ctx context.Context, info *domain.KakaoUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByKakaoID(ctx, info.KakaoID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by kakao id: %w", err)
	}

	level, levelName := domain.LevelForXP(0)
	newUser := domain.User{
		KakaoID:         info.KakaoID,
		Username:        info.Nickname,
		Email:           info.Email,
		ProfileImageURL: info.ProfileImage,
		Level:           level,
		LevelName:       levelName,
		CreatedAt:       time.Now().UTC(),
	}
	created, err := s.userRepo.CreateUser(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// Login exchanges the authorization code, finds or registers the user, and
// mints an access/refresh token pair. The refresh token is stored hashed
// with an absolute expiry so logout can revoke it.
func (s *authService) Login(ctx context.Context, code string) (string, string, error) {
	info, err := s.fetchKakaoUser(ctx, code)
	if err != nil {
		return "", "", err
	}

	user, err := s.findOrCreateUser(ctx, info)
	if err != nil {
		return "", "", err
	}

	accessToken, err := utils.GenerateToken(user.ID, utils.TokenKindAccess, s.cfg.JWTSecret, s.cfg.AccessTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateToken(user.ID, utils.TokenKindRefresh, s.cfg.JWTSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.refreshRepo.SaveRefreshToken(ctx, user.ID, utils.HashRefreshToken(refreshToken), expiresAt); err != nil {
		return "", "", fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// Refresh validates the presented refresh-kind token against the stored,
// unexpired row and mints a fresh access token. Any failure maps to a
// single unauthorized outcome.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ParseToken(refreshToken, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	if claims.TokenType != utils.TokenKindRefresh {
		return "", apperrors.ErrUnauthorized
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}

	stored, err := s.refreshRepo.FindByUserAndHash(ctx, userID, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Revoked or never issued.
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if time.Now().After(stored.ExpiresAt) {
		return "", apperrors.ErrRefreshTokenExpired
	}

	accessToken, err := utils.GenerateToken(userID, utils.TokenKindAccess, s.cfg.JWTSecret, s.cfg.AccessTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes all refresh tokens for the subject of a valid access
// token. Invalid or absent credentials are ignored so the operation is
// idempotent from the caller's perspective.
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := utils.ParseToken(accessToken, s.cfg.JWTSecret)
	if err != nil || claims.TokenType != utils.TokenKindAccess {
		return nil
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil
	}
	if _, err := s.refreshRepo.DeleteAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	return nil
}
