package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/services"
)

// ContactHandler godoc
// @Summary      Send contact message
// @Description  Validate the contact form and relay it to the configured form endpoint
// @Tags         contact
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Param        body  body  dto.ContactRequestDTO  true  "Contact form"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ContactErrorDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /contact [post]
func ContactHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ContactRequestDTO
		if err := c.ShouldBind(&req); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				c.JSON(http.StatusBadRequest, dto.ContactErrorDTO{
					Error:  "validation_failed",
					Fields: contactFieldErrors(verrs),
				})
				return
			}
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		if fields := blankFields(req); len(fields) > 0 {
			c.JSON(http.StatusBadRequest, dto.ContactErrorDTO{Error: "validation_failed", Fields: fields})
			return
		}

		err := svc.Submit(c.Request.Context(), req)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "message sent"})
		case errors.Is(err, services.ErrContactDisabled):
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "contact_unavailable"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "relay_failed"})
		}
	}
}

// contactFieldErrors 는 검증 오류를 폼 필드별 메시지로 바꾼다. 키는 소문자 필드 이름이다.
func contactFieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := strings.ToLower(fe.Field())
		if fe.Tag() == "email" {
			out[key] = "Invalid email format"
			continue
		}
		out[key] = fe.Field() + " is required"
	}
	return out
}

// blankFields 는 공백만 있는 값을 빈 값으로 취급한다. binding:"required" 는 이를 통과시킨다.
func blankFields(req dto.ContactRequestDTO) map[string]string {
	out := map[string]string{}
	for label, v := range map[string]string{
		"Name":    req.Name,
		"Subject": req.Subject,
		"Message": req.Message,
	} {
		if strings.TrimSpace(v) == "" {
			out[strings.ToLower(label)] = label + " is required"
		}
	}
	return out
}
