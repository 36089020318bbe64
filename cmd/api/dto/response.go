package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not_found"`
}

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"message sent"`
}

// HealthDTO 는 /health 응답이다.
type HealthDTO struct {
	Status     string `json:"status" example:"ok"`
	ContentAPI string `json:"content_api" example:"up"`
	Error      string `json:"error,omitempty"`
}
