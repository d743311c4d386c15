package main

import (
	"errors"
	"formulaGrid/contracts"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value" binding:"required"`
}

type CopyCellRequest struct {
	From string `json:"from" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required,url"`
}

func NewApiController(sheetRepository contracts.SheetRepository, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	cell, updates, err := api.SheetRepository.SetCell(params.SheetId, params.CellId, request.Value)
	if err != nil {
		api.renderEditError(c, err, request.Value)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cell_id": cell.CellId,
		"value":   cell.Value,
		"result":  cell.Result,
		"updates": updatesResponse(updates),
	})
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	if errors.Is(err, contracts.CellNotFoundError) || errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.CellIdError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) DeleteCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var updates contracts.UpdateSet

	err := c.ShouldBindUri(&params)

	if err == nil {
		updates, err = api.SheetRepository.RemoveCell(params.SheetId, params.CellId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.CellIdError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, gin.H{"updates": updatesResponse(updates)})
	}
}

func (api *ApiController) CopyCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := CopyCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	cell, updates, err := api.SheetRepository.CopyCell(params.SheetId, params.CellId, request.From)

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		api.renderEditError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cell_id": cell.CellId,
		"value":   cell.Value,
		"result":  cell.Result,
		"updates": updatesResponse(updates),
	})
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	response := &contracts.CellList{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCellList(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ClearSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = api.SheetRepository.ClearSheet(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusOK)
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var at CellAddress
	if err == nil {
		at, err = ParseCellId(params.CellId)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(strings.ToLower(params.SheetId), at.String(), request.WebhookUrl)
	c.JSON(http.StatusCreated, gin.H{"webhook_url": request.WebhookUrl})
}

// renderEditError maps domain errors of a mutating operation: expression and
// cell id problems are the caller's (422), the rest is internal (500).
func (api *ApiController) renderEditError(c *gin.Context, err error, value string) {
	status := http.StatusInternalServerError
	if errors.Is(err, contracts.ExpressionError) || errors.Is(err, contracts.CellIdError) {
		status = http.StatusUnprocessableEntity
	}

	body := gin.H{"error": err.Error()}
	if value != "" {
		body["value"] = value
	}

	c.JSON(status, body)
}

func updatesResponse(updates contracts.UpdateSet) map[string]string {
	response := make(map[string]string, len(updates))
	for cellId, value := range updates {
		response[cellId] = formatNumber(value)
	}

	return response
}
