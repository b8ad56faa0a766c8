package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esale/internal/models/response_models"
	"esale/internal/services"
	"esale/pkg/utils"
)

type ServicesController struct {
	catalogService services.CatalogServiceInterface
}

func NewServicesController(catalogService services.CatalogServiceInterface) *ServicesController {
	return &ServicesController{catalogService: catalogService}
}

func (sc *ServicesController) ListServicesHandler(c *gin.Context) {
	servicesList, err := sc.catalogService.ListServices(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewServiceListResponse(servicesList), "Fetched services successfully")
}

func (sc *ServicesController) GetServiceHandler(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	service, err := sc.catalogService.GetService(c.Request.Context(), serviceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewServiceResponse(service), "Fetched service successfully")
}

func (sc *ServicesController) ListTypesHandler(c *gin.Context) {
	types, err := sc.catalogService.ListTypes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewServiceTypeListResponse(types), "Fetched service types successfully")
}

func (sc *ServicesController) GetTypeHandler(c *gin.Context) {
	typeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service type id")
		return
	}

	serviceType, err := sc.catalogService.GetType(c.Request.Context(), typeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewServiceTypeResponse(serviceType), "Fetched service type successfully")
}
