package customers

import (
	"context"
	"net/http"
	"time"

	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/exceptions"
	"bizsuite-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CustomerController struct {
	Log             *zap.Logger
	CustomerUsecase contracts.CustomerUsecase
}

func NewCustomerController(logger *zap.Logger, customerUsecase contracts.CustomerUsecase) *CustomerController {
	return &CustomerController{
		Log:             logger,
		CustomerUsecase: customerUsecase,
	}
}

func sessionFromRequest(r *http.Request) (*models.Session, bool) {
	session, ok := r.Context().Value(constvars.ContextSessionDataKey).(*models.Session)
	return session, ok
}

func (ctrl *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	page, pageSize := utils.ParsePaginationParams(r)
	request := &requests.ListCustomers{
		Search:   r.URL.Query().Get("search"),
		Page:     page,
		PageSize: pageSize,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customers, total, err := ctrl.CustomerUsecase.ListCustomers(ctx, session.CompanyID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ResponseSuccess, pagination, customers)
}

func (ctrl *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	request := new(requests.CreateCustomer)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateCustomerRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customer, err := ctrl.CustomerUsecase.CreateCustomer(ctx, session.CompanyID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CustomerCreatedSuccess, customer)
}

func (ctrl *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}
	customerID := chi.URLParam(r, "customerID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customer, err := ctrl.CustomerUsecase.GetCustomer(ctx, session.CompanyID, customerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, customer)
}

func (ctrl *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}
	customerID := chi.URLParam(r, "customerID")

	request := new(requests.UpdateCustomer)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpdateCustomerRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customer, err := ctrl.CustomerUsecase.UpdateCustomer(ctx, session.CompanyID, customerID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CustomerUpdatedSuccess, customer)
}

func (ctrl *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}
	customerID := chi.URLParam(r, "customerID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.CustomerUsecase.DeleteCustomer(ctx, session.CompanyID, customerID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CustomerDeletedSuccess, nil)
}
