package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo é o resultado da tradução de um erro interno para a API.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converte erros de storage em código + mensagem seguros para o
// cliente. Detalhes sensíveis do banco nunca vazam na resposta.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Erro interno do servidor",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// Violação de unicidade (PostgreSQL 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// Violação de chave estrangeira (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "Registro vinculado a outro cadastro",
		}
	}

	// Violação de not-null (23502)
	if strings.Contains(errStrLower, "null value") &&
		strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "Campo obrigatório não informado",
		}
	}

	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "Falha de conexão com o banco. Tente novamente em instantes",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

// parseDuplicateKeyError identifica qual campo único colidiu.
func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "cnpj") {
		return ErrorInfo{
			Code:    CompanyCNPJExists,
			Message: "CNPJ já cadastrado",
		}
	}
	if strings.Contains(errLower, "cpf") {
		return ErrorInfo{
			Code:    DriverCPFExists,
			Message: "CPF já cadastrado",
		}
	}
	if strings.Contains(errLower, "cnh") {
		return ErrorInfo{
			Code:    DriverCNHExists,
			Message: "CNH já cadastrada",
		}
	}
	if strings.Contains(errLower, "plate") || strings.Contains(errLower, "placa") {
		return ErrorInfo{
			Code:    VehiclePlateExists,
			Message: "Placa já cadastrada",
		}
	}
	if strings.Contains(errLower, "documents_owner_name") {
		return ErrorInfo{
			Code:    DocumentAlreadyExists,
			Message: "Documento já cadastrado para este titular",
		}
	}
	if strings.Contains(errLower, "document_name") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "Categoria de alerta já configurada",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "Registro já cadastrado",
	}
}

func getNotFoundMessage(context string) string {
	switch context {
	case "company":
		return "Transportador não encontrado"
	case "driver":
		return "Motorista não encontrado"
	case "vehicle":
		return "Veículo não encontrado"
	case "document":
		return "Documento não encontrado"
	default:
		return "Registro não encontrado"
	}
}

func getDefaultErrorMessage(context string) string {
	switch context {
	case "upload":
		return "Falha ao processar a planilha. Nenhuma linha foi importada"
	default:
		return "Erro interno do servidor. Tente novamente em instantes"
	}
}
