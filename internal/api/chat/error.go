package chat

import "SimpleChatbot/pkg/response"

// FailureMessage is shown to users whenever a chat request fails unexpectedly.
const FailureMessage = "죄송합니다. 처리 중 오류가 발생했습니다. 다시 시도해주세요."

var (
	ErrMessageRequired = response.NewError(400, "Message is required")
	ErrProcessMessage  = response.NewError(500, FailureMessage)
	ErrInvalidBody     = response.NewError(500, FailureMessage)
	ErrLoadHistory     = response.NewError(500, FailureMessage)
)
