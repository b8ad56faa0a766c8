package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esale/internal/models/request_models"
	"esale/internal/models/response_models"
	"esale/internal/services"
	"esale/pkg/utils"
)

type BasketsController struct {
	basketService services.BasketServiceInterface
}

func NewBasketsController(basketService services.BasketServiceInterface) *BasketsController {
	return &BasketsController{basketService: basketService}
}

func (bc *BasketsController) CreateBasketHandler(c *gin.Context) {
	basket, err := bc.basketService.CreateBasket(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, response_models.NewBasketResponse(basket), "Basket created")
}

func (bc *BasketsController) ListBasketsHandler(c *gin.Context) {
	baskets, err := bc.basketService.ListBaskets(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewBasketListResponse(baskets), "Fetched baskets successfully")
}

func (bc *BasketsController) GetBasketHandler(c *gin.Context) {
	basketID, ok := bc.basketID(c)
	if !ok {
		return
	}

	basket, err := bc.basketService.GetBasket(c.Request.Context(), basketID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewBasketResponse(basket), "Fetched basket successfully")
}

func (bc *BasketsController) AddItemHandler(c *gin.Context) {
	basketID, ok := bc.basketID(c)
	if !ok {
		return
	}

	var req request_models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	basket, err := bc.basketService.AddItem(c.Request.Context(), basketID, req.TypeID, req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewBasketResponse(basket), "Item added")
}

func (bc *BasketsController) RemoveItemHandler(c *gin.Context) {
	basketID, ok := bc.basketID(c)
	if !ok {
		return
	}

	var req request_models.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	basket, err := bc.basketService.RemoveItem(c.Request.Context(), basketID, req.TypeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewBasketResponse(basket), "Item removed")
}

func (bc *BasketsController) UpdateItemQuantityHandler(c *gin.Context) {
	basketID, ok := bc.basketID(c)
	if !ok {
		return
	}

	var req request_models.UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	basket, err := bc.basketService.UpdateItemQuantity(c.Request.Context(), basketID, req.TypeID, req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewBasketResponse(basket), "Item quantity updated")
}

func (bc *BasketsController) basketID(c *gin.Context) (uuid.UUID, bool) {
	basketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid basket id")
		return uuid.Nil, false
	}
	return basketID, true
}
