package configs

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	appconfig "bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
	"bizsuite-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	configUsecaseInstance contracts.ConfigUsecase
	onceConfigUsecase     sync.Once
)

var allowedLogoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type configUsecase struct {
	Log               *zap.Logger
	ConfigRepository  contracts.BusinessConfigRepository
	CompanyRepository contracts.CompanyRepository
	Storage           contracts.Storage
	InternalConfig    *appconfig.InternalConfig
}

func NewConfigUsecase(
	logger *zap.Logger,
	configRepository contracts.BusinessConfigRepository,
	companyRepository contracts.CompanyRepository,
	storage contracts.Storage,
	internalConfig *appconfig.InternalConfig,
) contracts.ConfigUsecase {
	onceConfigUsecase.Do(func() {
		configUsecaseInstance = &configUsecase{
			Log:               logger,
			ConfigRepository:  configRepository,
			CompanyRepository: companyRepository,
			Storage:           storage,
			InternalConfig:    internalConfig,
		}
	})
	return configUsecaseInstance
}

// GetConfig returns the stored configuration, provisioning one from the
// company's business type template on first read.
func (uc *configUsecase) GetConfig(ctx context.Context, companyID string) (*responses.BusinessConfigResponse, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("configUsecase.GetConfig called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, companyID),
	)

	config, err := uc.loadOrProvisionConfig(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapConfigResponse(config), nil
}

func (uc *configUsecase) UpdateConfig(ctx context.Context, companyID string, request *requests.UpdateBusinessConfig) (*responses.BusinessConfigResponse, error) {
	config, err := uc.loadOrProvisionConfig(ctx, companyID)
	if err != nil {
		return nil, err
	}

	config.Modules = models.ModuleToggles(request.Modules)
	config.Appointments = models.AppointmentSettings(request.Appointments)
	config.Catalog = models.CatalogSettings(request.Catalog)
	config.Services = mapServiceItems(request.Services)
	config.CustomerFields = request.CustomerFields
	config.Notifications = models.NotificationFlags(request.Notifications)
	config.PublicText = models.PublicText(request.PublicText)

	if err := uc.ConfigRepository.UpdateConfig(ctx, config); err != nil {
		return nil, err
	}
	return mapConfigResponse(config), nil
}

func (uc *configUsecase) ListTemplates(ctx context.Context) []responses.TemplateSummary {
	summaries := make([]responses.TemplateSummary, 0, len(templateOrder))
	for _, key := range templateOrder {
		template := businessTemplates[key]
		summaries = append(summaries, responses.TemplateSummary{
			Key:          key,
			Label:        template.Label,
			ServiceCount: len(template.Services),
		})
	}
	return summaries
}

// ApplyTemplate replaces module toggles, appointment settings, catalog
// settings and the service list with the template's values. Public text and
// notification flags the owner already customized are kept.
func (uc *configUsecase) ApplyTemplate(ctx context.Context, companyID string, request *requests.ApplyTemplate) (*responses.BusinessConfigResponse, error) {
	template, ok := businessTemplates[request.Template]
	if !ok {
		return nil, exceptions.ErrUnknownTemplate(nil)
	}

	config, err := uc.loadOrProvisionConfig(ctx, companyID)
	if err != nil {
		return nil, err
	}

	config.Modules = template.Modules
	config.Appointments = template.Appointments
	config.Catalog = template.Catalog
	config.Services = template.Services
	config.CustomerFields = template.CustomerFields
	config.AppliedTemplate = request.Template

	if err := uc.ConfigRepository.UpdateConfig(ctx, config); err != nil {
		return nil, err
	}
	return mapConfigResponse(config), nil
}

func (uc *configUsecase) UpdateOpeningHours(ctx context.Context, companyID string, request *requests.UpdateOpeningHours) error {
	company, err := uc.CompanyRepository.FindCompanyByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return exceptions.ErrBusinessNotFound(nil)
	}

	hours := make(map[string]models.OpeningHours, len(request.OpeningHours))
	for day, value := range request.OpeningHours {
		hours[strings.ToLower(day)] = models.OpeningHours{
			Open:   value.Open,
			Close:  value.Close,
			Closed: value.Closed,
		}
	}
	company.OpeningHours = hours

	return uc.CompanyRepository.UpdateCompany(ctx, company)
}

func (uc *configUsecase) UploadLogo(ctx context.Context, companyID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.LogoUploadResponse, error) {
	company, err := uc.CompanyRepository.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrBusinessNotFound(nil)
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedLogoExtensions[extension] {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("unsupported logo format %s", extension))
	}
	maxBytes := uc.InternalConfig.Minio.LogoMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("logo exceeds the %dMB limit", uc.InternalConfig.Minio.LogoMaxUploadSizeInMB))
	}

	objectName, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Minio.BucketName)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PresignedExpiryTimeInHours) * time.Hour
	logoURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	company.LogoURL = logoURL
	if err := uc.CompanyRepository.UpdateCompany(ctx, company); err != nil {
		return nil, err
	}

	return &responses.LogoUploadResponse{LogoURL: logoURL}, nil
}

func (uc *configUsecase) loadOrProvisionConfig(ctx context.Context, companyID string) (*models.BusinessConfig, error) {
	config, err := uc.ConfigRepository.FindConfigByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	company, err := uc.CompanyRepository.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrBusinessNotFound(nil)
	}

	config = DefaultBusinessConfig(companyID, company.BusinessType)
	configID, err := uc.ConfigRepository.CreateConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	config.ID = configID
	return config, nil
}

func mapServiceItems(items []requests.ServiceItem) []models.ServiceItem {
	services := make([]models.ServiceItem, 0, len(items))
	for _, item := range items {
		services = append(services, models.ServiceItem{
			Name:            item.Name,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
			Description:     item.Description,
			Active:          item.Active,
		})
	}
	return services
}

func mapConfigResponse(config *models.BusinessConfig) *responses.BusinessConfigResponse {
	return &responses.BusinessConfigResponse{
		Modules:         config.Modules,
		Appointments:    config.Appointments,
		Catalog:         config.Catalog,
		Services:        config.Services,
		CustomerFields:  config.CustomerFields,
		Notifications:   config.Notifications,
		PublicText:      config.PublicText,
		AppliedTemplate: config.AppliedTemplate,
	}
}
