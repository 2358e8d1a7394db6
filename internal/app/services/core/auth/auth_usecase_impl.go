package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
	"bizsuite-service/internal/pkg/exceptions"
	"bizsuite-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	Log               *zap.Logger
	UserRepository    contracts.UserRepository
	CompanyRepository contracts.CompanyRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
}

func NewAuthUsecase(
	logger *zap.Logger,
	userRepository contracts.UserRepository,
	companyRepository contracts.CompanyRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			Log:               logger,
			UserRepository:    userRepository,
			CompanyRepository: companyRepository,
			SessionService:    sessionService,
			InternalConfig:    internalConfig,
		}
	})
	return authUsecaseInstance
}

func defaultOpeningHours() map[string]models.OpeningHours {
	hours := map[string]models.OpeningHours{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		hours[day] = models.OpeningHours{Open: "08:00", Close: "18:00"}
	}
	hours["saturday"] = models.OpeningHours{Open: "08:00", Close: "12:00"}
	hours["sunday"] = models.OpeningHours{Closed: true}
	return hours
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResponse, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	slug, err := uc.resolveUniqueSlug(ctx, request.CompanyName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &models.Company{
		Name:         request.CompanyName,
		Slug:         slug,
		BusinessType: request.BusinessType,
		Email:        request.Email,
		Phone:        request.Phone,
		OpeningHours: defaultOpeningHours(),
		Active:       true,
		Subscription: "trial",
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	companyID, err := uc.CompanyRepository.CreateCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	company.ID = companyID

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		CompanyID: companyID,
		Name:      request.Name,
		Email:     request.Email,
		Password:  hashedPassword,
		Role:      "owner",
		Active:    true,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	return uc.buildAuthResponse(ctx, user, company, true)
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthResponse, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	company, err := uc.CompanyRepository.FindCompanyByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrBusinessNotFound(nil)
	}

	return uc.buildAuthResponse(ctx, user, company, true)
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session) (*responses.AuthResponse, error) {
	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	company, err := uc.CompanyRepository.FindCompanyByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrBusinessNotFound(nil)
	}

	response := &responses.AuthResponse{
		User:    mapUserResponse(user),
		Company: mapCompanyResponse(company),
	}
	return response, nil
}

func (uc *authUsecase) Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshResponse, error) {
	sessionID, err := utils.ParseJWT(request.RefreshToken, utils.TokenTypeRefresh, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	// The session must still exist; logout revokes refresh tokens too.
	if _, err := uc.SessionService.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(
		sessionID,
		utils.TokenTypeAccess,
		uc.InternalConfig.JWT.Secret,
		time.Duration(uc.InternalConfig.JWT.AccessExpTimeInMinutes)*time.Minute,
	)
	if err != nil {
		return nil, err
	}
	return &responses.RefreshResponse{AccessToken: accessToken}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *authUsecase) resolveUniqueSlug(ctx context.Context, companyName string) (string, error) {
	base := utils.GenerateSlug(companyName)
	if base == "" {
		base = "business"
	}
	slug := base
	for attempt := 2; ; attempt++ {
		existing, err := uc.CompanyRepository.FindCompanyBySlug(ctx, slug)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return slug, nil
		}
		if attempt > 50 {
			return "", exceptions.ErrCompanySlugAlreadyExist(nil)
		}
		slug = fmt.Sprintf("%s-%d", base, attempt)
	}
}

func (uc *authUsecase) buildAuthResponse(ctx context.Context, user *models.User, company *models.Company, withTokens bool) (*responses.AuthResponse, error) {
	response := &responses.AuthResponse{
		User:    mapUserResponse(user),
		Company: mapCompanyResponse(company),
	}
	if !withTokens {
		return response, nil
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		CompanyID: company.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.JWT.SessionExpiredTimeInHours) * time.Hour),
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(
		session.SessionID,
		utils.TokenTypeAccess,
		uc.InternalConfig.JWT.Secret,
		time.Duration(uc.InternalConfig.JWT.AccessExpTimeInMinutes)*time.Minute,
	)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.GenerateJWT(
		session.SessionID,
		utils.TokenTypeRefresh,
		uc.InternalConfig.JWT.Secret,
		time.Duration(uc.InternalConfig.JWT.RefreshExpTimeInHours)*time.Hour,
	)
	if err != nil {
		return nil, err
	}

	response.AccessToken = accessToken
	response.RefreshToken = refreshToken
	return response, nil
}

func mapUserResponse(user *models.User) responses.UserResponse {
	return responses.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

func mapCompanyResponse(company *models.Company) responses.CompanyResponse {
	return responses.CompanyResponse{
		ID:           company.ID,
		Name:         company.Name,
		Slug:         company.Slug,
		BusinessType: company.BusinessType,
		Email:        company.Email,
		Phone:        company.Phone,
		Address:      company.Address,
		PrimaryColor: company.PrimaryColor,
		LogoURL:      company.LogoURL,
		Active:       company.Active,
	}
}
