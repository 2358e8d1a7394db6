package contracts

import (
	"context"

	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResponse, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthResponse, error)
	Me(ctx context.Context, session *models.Session) (*responses.AuthResponse, error)
	Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshResponse, error)
	Logout(ctx context.Context, session *models.Session) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *models.Company) (string, error)
	FindCompanyByID(ctx context.Context, companyID string) (*models.Company, error)
	FindCompanyBySlug(ctx context.Context, slug string) (*models.Company, error)
	UpdateCompany(ctx context.Context, company *models.Company) error
}
