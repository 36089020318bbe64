package dto

// ContactRequestDTO 는 문의 폼 입력이다. JSON 과 form-urlencoded 둘 다 받는다.
type ContactRequestDTO struct {
	Name    string `json:"name" form:"name" binding:"required" example:"Ada Lovelace"`
	Email   string `json:"email" form:"email" binding:"required,email" example:"ada@example.com"`
	Subject string `json:"subject" form:"subject" binding:"required" example:"Hello"`
	Message string `json:"message" form:"message" binding:"required" example:"Let's work together."`
}

// ContactErrorDTO 는 입력 검증 실패 응답이다. Fields 의 키는 폼 필드 이름이다.
type ContactErrorDTO struct {
	Error  string            `json:"error" example:"validation_failed"`
	Fields map[string]string `json:"fields"`
}
