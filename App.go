package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	serviceContainer, err := BuildServiceContainer(config)

	if err == nil {
		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()
		defer serviceContainer.Database.Close()

		err = http.ListenAndServe(config.Listen, serviceContainer.Router)
	}

	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}

func main() {
	os.Exit(HandleExitError(os.Stderr, RunApp()))
}
