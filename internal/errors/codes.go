package errors

// Códigos de erro no formato CATEGORIA_DETALHE.
// O frontend mapeia mensagens a partir destes códigos.

const (
	// ==================== Validação (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // entrada inválida
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // ID inválido
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // formato inválido
	ValidationRequired      = "VALIDATION_REQUIRED"       // campo obrigatório

	// ==================== Recurso (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // recurso inexistente
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // já cadastrado
	ResourceConflict      = "RESOURCE_CONFLICT"       // conflito

	// ==================== Transportador (COMPANY_) ====================
	CompanyNotFound    = "COMPANY_NOT_FOUND"    // transportador inexistente
	CompanyCNPJExists  = "COMPANY_CNPJ_EXISTS"  // CNPJ duplicado
	CompanyInvalidCNPJ = "COMPANY_INVALID_CNPJ" // CNPJ malformado

	// ==================== Motorista (DRIVER_) ====================
	DriverNotFound   = "DRIVER_NOT_FOUND"   // motorista inexistente
	DriverCPFExists  = "DRIVER_CPF_EXISTS"  // CPF duplicado
	DriverCNHExists  = "DRIVER_CNH_EXISTS"  // CNH duplicada
	DriverInvalidCPF = "DRIVER_INVALID_CPF" // CPF malformado

	// ==================== Veículo (VEHICLE_) ====================
	VehicleNotFound    = "VEHICLE_NOT_FOUND"    // veículo inexistente
	VehiclePlateExists = "VEHICLE_PLATE_EXISTS" // placa duplicada

	// ==================== Documento (DOCUMENT_) ====================
	DocumentAlreadyExists = "DOCUMENT_ALREADY_EXISTS" // documento duplicado

	// ==================== Upload (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // extensão não suportada
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"    // arquivo grande demais
	UploadMissingColumns  = "UPLOAD_MISSING_COLUMNS"   // colunas obrigatórias ausentes
	UploadFailed          = "UPLOAD_FAILED"            // processamento falhou

	// ==================== Interno (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // erro do servidor
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // erro de banco
)
