package main

import (
	"context"
	"log"

	"bourse/api"
	"bourse/cmd"
	"bourse/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.FromContext(ctx).Infow("lambda request", "method", req.HTTPMethod, "path", req.Path)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func newLambdaHandler(apiHandler *api.ApiHandler) lambdaHandler {
	return lambdaHandler{
		ginLambda: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
}

func main() {
	apiHandler, _, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	// the db pool lives for the life of the container
	handler := newLambdaHandler(apiHandler)
	lambda.Start(handler.Handler)
}
