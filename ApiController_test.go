package main

import (
	"bytes"
	"errors"
	"formulaGrid/contracts"
	"formulaGrid/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func _parseJsonBody(w *httptest.ResponseRecorder) (map[string]any, error) {
	response := map[string]any{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	return response, err
}

func _jsonRequest(method string, url string, data any) *http.Request {
	jsonBody, _ := json.Marshal(data)
	req, _ := http.NewRequest(method, url, bytes.NewReader(jsonBody))
	return req
}

func TestApiController_GetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	requestToGetCellAction := func(apiController contracts.ApiController) *httptest.ResponseRecorder {
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+ApiVersion+"/sheet1/a1", nil)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("should return cell value", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "sheet1", "a1").
			Return(&contracts.Cell{CellId: "a1", Value: "a2+1", Result: "6"}, nil)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetCellAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a2+1", response["value"])
		assert.Equal(t, "6", response["result"])
	})

	t.Run("cell not found", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "sheet1", "a1").Return(nil, contracts.CellNotFoundError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetCellAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, contracts.CellNotFoundError.Error(), response["error"])
	})

	t.Run("sheet not found", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "sheet1", "a1").Return(nil, contracts.SheetNotFoundError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetCellAction(apiController)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid cell id", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "sheet1", "a1").Return(nil, contracts.CellIdError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetCellAction(apiController)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("custom error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "sheet1", "a1").Return(nil, errors.New("test"))

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetCellAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "test", response["error"])
	})
}

func TestApiController_SetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	requestToSetCellAction := func(apiController contracts.ApiController, data map[string]string) *httptest.ResponseRecorder {
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, _jsonRequest(http.MethodPost, "/api/"+ApiVersion+"/sheet1/a1", data))
		return w
	}

	t.Run("success write", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetCell", "sheet1", "a1", "5").
			Return(
				&contracts.Cell{CellId: "a1", Value: "5", Result: "5"},
				contracts.UpdateSet{"a1": 5, "b1": 6},
				nil,
			)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToSetCellAction(apiController, map[string]string{"value": "5"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "5", response["value"])
		assert.Equal(t, "5", response["result"])
		assert.Equal(t, map[string]any{"a1": "5", "b1": "6"}, response["updates"])
	})

	t.Run("syntax error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetCell", "sheet1", "a1", "5+").
			Return(nil, nil, contracts.SyntaxError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToSetCellAction(apiController, map[string]string{"value": "5+"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, contracts.SyntaxError.Error(), response["error"])
		assert.Equal(t, "5+", response["value"])
	})

	t.Run("circular reference", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetCell", "sheet1", "a1", "a1+1").
			Return(nil, nil, contracts.CircularReferenceError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToSetCellAction(apiController, map[string]string{"value": "a1+1"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing value", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToSetCellAction(apiController, map[string]string{})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApiController_DeleteCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("RemoveCell", "sheet1", "a1").
			Return(contracts.UpdateSet{"b1": 1}, nil)

		apiController := NewApiController(sheetRepository, nil)
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/api/"+ApiVersion+"/sheet1/a1", nil)
		router.ServeHTTP(w, req)

		response, err := _parseJsonBody(w)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"b1": "1"}, response["updates"])
	})

	t.Run("sheet not found", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("RemoveCell", "sheet1", "a1").
			Return(nil, contracts.SheetNotFoundError)

		apiController := NewApiController(sheetRepository, nil)
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/api/"+ApiVersion+"/sheet1/a1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApiController_CopyCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	requestToCopyCellAction := func(apiController contracts.ApiController, data map[string]string) *httptest.ResponseRecorder {
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, _jsonRequest(http.MethodPost, "/api/"+ApiVersion+"/sheet1/b2/copy", data))
		return w
	}

	t.Run("success", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("CopyCell", "sheet1", "b2", "b1").
			Return(
				&contracts.Cell{CellId: "b2", Value: "a2+1", Result: "1"},
				contracts.UpdateSet{"b2": 1},
				nil,
			)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToCopyCellAction(apiController, map[string]string{"from": "b1"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "a2+1", response["value"])
	})

	t.Run("reference error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("CopyCell", "sheet1", "b2", "b1").
			Return(nil, nil, contracts.ReferenceError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToCopyCellAction(apiController, map[string]string{"from": "b1"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApiController_GetSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCellList", "sheet1").
			Return(&contracts.CellList{
				"a1": {CellId: "a1", Value: "5", Result: "5"},
			}, nil)

		apiController := NewApiController(sheetRepository, nil)
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+ApiVersion+"/sheet1", nil)
		router.ServeHTTP(w, req)

		response, err := _parseJsonBody(w)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, response, "a1")
	})

	t.Run("sheet not found", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCellList", "sheet1").Return(nil, contracts.SheetNotFoundError)

		apiController := NewApiController(sheetRepository, nil)
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+ApiVersion+"/sheet1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApiController_ClearSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sheetRepository := mocks.NewSheetRepository(t)
	sheetRepository.On("ClearSheet", "sheet1").Return(nil)

	apiController := NewApiController(sheetRepository, nil)
	router := SetupRouter(apiController)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/"+ApiVersion+"/sheet1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApiController_SubscribeAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	requestToSubscribeAction := func(apiController contracts.ApiController, data map[string]string) *httptest.ResponseRecorder {
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, _jsonRequest(http.MethodPost, "/api/"+ApiVersion+"/Sheet1/A1/subscribe", data))
		return w
	}

	t.Run("success", func(t *testing.T) {
		webhookDispatcher := mocks.NewWebhookDispatcher(t)
		webhookDispatcher.On("SetWebhookUrl", "sheet1", "a1", "https://example.com/hook").Return()

		apiController := NewApiController(nil, webhookDispatcher)

		w := requestToSubscribeAction(apiController, map[string]string{"webhook_url": "https://example.com/hook"})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid url", func(t *testing.T) {
		apiController := NewApiController(nil, mocks.NewWebhookDispatcher(t))

		w := requestToSubscribeAction(apiController, map[string]string{"webhook_url": "not a url"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
