package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"widgets-api/pkg/lambda"
	"widgets-api/pkg/server"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := server.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return lambda.InternalError().ToAPIGateway(), nil
	}

	return lambda.Adapt("la-liga-standings", container.StandingsHandler.Handle)(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
