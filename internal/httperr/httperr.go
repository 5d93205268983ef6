package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Validation responde 400 com o detalhe do erro de validação.
func Validation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "invalid_request",
		Message: "Dados inválidos.",
		Details: err.Error(),
	})
}

// mensagens exibidas para os códigos de negócio conhecidos
var businessMessages = map[string]struct {
	status  int
	message string
}{
	CodeInvalidDateOrTime:   {http.StatusBadRequest, "Data ou hora inválida."},
	CodeInvalidState:        {http.StatusBadRequest, "Operação inválida para o status atual."},
	CodeServiceNotFound:     {http.StatusBadRequest, "Serviço não encontrado."},
	CodeAppointmentNotFound: {http.StatusNotFound, "Agendamento não encontrado."},
	CodeDayClosed:           {http.StatusConflict, "Salão fechado nesta data."},
	CodeSlotUnavailable:     {http.StatusConflict, "Horário indisponível."},
	CodeTimeConflict:        {http.StatusConflict, "Conflito de horário."},
	CodeOutsideWorkingHours: {http.StatusBadRequest, "Fora do horário de atendimento."},
	CodeTooSoon:             {http.StatusBadRequest, "Horário já passou."},
	CodeEmptyPatch:          {http.StatusBadRequest, "Nenhum campo para atualizar."},
}

// FromError converte o erro de um use case na resposta HTTP.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		if m, ok := businessMessages[be.Code]; ok {
			Write(c, m.status, be.Code, m.message)
			return
		}
		BadRequest(c, be.Code, be.Code)
		return
	}

	var ve *slot.ValidationError
	if errors.As(err, &ve) {
		Validation(c, err)
		return
	}

	if IsExclusionConflict(err) {
		Conflict(c, "time_conflict", "Conflito de horário.")
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
	Internal(c, "internal_error", "Erro interno.")
}
