package main

import (
	"bytes"
	"fmt"
	"formulaGrid/contracts"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"
)

const WebhookWorkersCount = 5

type SheetWebhooks map[string]string

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.Cell
}

// WebhookDispatcher posts updated cells to subscribed URLs. Subscriptions are
// keyed by canonical sheet and cell id; delivery runs on a fixed worker pool
// behind a buffered queue so edits never wait on slow receivers.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	mu       sync.RWMutex
	webhooks map[string]SheetWebhooks
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]SheetWebhooks{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(sheetId string, cellId string, webhookUrl string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if _, ok := manager.webhooks[sheetId]; !ok {
		manager.webhooks[sheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[sheetId], cellId)
	} else {
		manager.webhooks[sheetId][cellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(sheetId string, cellId string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	if _, ok := manager.webhooks[sheetId]; !ok {
		return ""
	}

	return manager.webhooks[sheetId][cellId]
}

func (manager *WebhookDispatcher) Notify(sheetId string, cells []*contracts.Cell) {
	manager.mu.RLock()
	_, subscribed := manager.webhooks[sheetId]
	manager.mu.RUnlock()

	if !subscribed {
		return
	}

	go manager.addToQueue(sheetId, cells)
}

func (manager *WebhookDispatcher) addToQueue(sheetId string, cells []*contracts.Cell) {
	for _, cell := range cells {
		if webhook := manager.GetWebhookUrl(sheetId, cell.CellId); webhook != "" {
			manager.queue <- WebhookSendCommand{
				Webhook: webhook,
				Cell:    cell,
			}
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	var response *http.Response
	var err error

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err = client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}
