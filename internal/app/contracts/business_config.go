package contracts

import (
	"context"
	"mime/multipart"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

type ConfigUsecase interface {
	GetConfig(ctx context.Context, companyID string) (*responses.BusinessConfigResponse, error)
	UpdateConfig(ctx context.Context, companyID string, request *requests.UpdateBusinessConfig) (*responses.BusinessConfigResponse, error)
	ListTemplates(ctx context.Context) []responses.TemplateSummary
	ApplyTemplate(ctx context.Context, companyID string, request *requests.ApplyTemplate) (*responses.BusinessConfigResponse, error)
	UpdateOpeningHours(ctx context.Context, companyID string, request *requests.UpdateOpeningHours) error
	UploadLogo(ctx context.Context, companyID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.LogoUploadResponse, error)
}

type BusinessConfigRepository interface {
	CreateConfig(ctx context.Context, config *models.BusinessConfig) (string, error)
	FindConfigByCompanyID(ctx context.Context, companyID string) (*models.BusinessConfig, error)
	UpdateConfig(ctx context.Context, config *models.BusinessConfig) error
}
