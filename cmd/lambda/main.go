package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/saulo-duarte/lifeboard/internal/container"
	"github.com/saulo-duarte/lifeboard/internal/router"
)

func main() {
	c, err := container.New(context.Background(), "")
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}
	if c.Settings.Auth.JWTSecret == "" {
		config.Logger.Fatal("JWT_SECRET must be set")
	}

	handler := router.New(router.RouterConfig{
		AllowedOrigins: c.Settings.HTTP.AllowedOrigins,
		GoalHandler:    c.GoalContainer.Handler,
		ReviewHandler:  c.ReviewContainer.Handler,
	})

	adapter := httpadapter.New(handler)
	lambda.Start(adapter.ProxyWithContext)
}
