// Package apigw shapes quote API outcomes as API Gateway proxy responses.
// The local HTTP server renders the same shape so both transports answer identically.
package apigw

import (
	"encoding/json"
	"net/http"

	"jewelquote-service/internal/application"

	"github.com/aws/aws-lambda-go/events"
)

const (
	HeaderContentType = "Content-Type"
	HeaderAllowOrigin = "Access-Control-Allow-Origin"
	ContentTypeJSON   = "application/json"
)

type messageBody struct {
	Message string `json:"message"`
}

// Headers returns the headers every quote API response carries.
func Headers() map[string]string {
	return map[string]string{
		HeaderContentType: ContentTypeJSON,
		HeaderAllowOrigin: "*",
	}
}

// JSON encodes payload as the response body.
func JSON(status int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(messageBody{Message: http.StatusText(status)})
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    Headers(),
		Body:       string(body),
	}
}

// Message builds a {"message": msg} response.
func Message(status int, msg string) events.APIGatewayProxyResponse {
	return JSON(status, messageBody{Message: msg})
}

// FromReply maps the outcome of QuoteService.RequestQuote to a response.
func FromReply(reply application.QuoteReply, err error) events.APIGatewayProxyResponse {
	if err != nil {
		return Message(application.StatusOf(err))
	}
	return JSON(http.StatusOK, reply)
}
