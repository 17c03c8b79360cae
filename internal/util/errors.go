package util

import "errors"

var (
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrEmailRegistered      = errors.New("email já cadastrado")
	ErrNameMismatch         = errors.New("nome de usuário incorreto")
	ErrWrongPassword        = errors.New("senha incorreta")
	ErrNotAdmin             = errors.New("o email não pertence a um administrador")
	ErrNotRegularUser       = errors.New("o email não pertence a um usuário regular")
	ErrQuizNotFound         = errors.New("quiz não encontrado")
	ErrQuestionNotFound     = errors.New("pergunta não encontrada")
	ErrParticipationMissing = errors.New("participação não encontrada")
	ErrAlreadyParticipated  = errors.New("usuário já participou deste quiz")
	ErrNoSession            = errors.New("nenhuma sessão ativa")
)

// ValidationError carrega mensagens por campo, no formato que a API expõe em
// respostas 422.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "erro de validação"
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AsValidationError é o atalho usado pelos controllers para decidir entre 422
// e 500.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
