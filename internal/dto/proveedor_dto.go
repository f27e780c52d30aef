package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	Nombre        string  `json:"nombre"         validate:"required,min=2,max=255"`
	TipoPersona   string  `json:"tipo_persona"   validate:"required,oneof=NATURAL JURIDICA"`
	Documento     string  `json:"documento"      validate:"required,max=64"`
	TipoDocumento string  `json:"tipo_documento" validate:"required,oneof=CC NIT RUC PASAPORTE CE"`
	Pais          string  `json:"pais"           validate:"required,len=2"`
	Direccion     *string `json:"direccion"      validate:"omitempty,max=255"`
	Telefono      *string `json:"telefono"       validate:"omitempty,max=64"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	PaginaWeb     *string `json:"pagina_web"     validate:"omitempty,url"`
	Activo        *bool   `json:"activo"`
}

// ActualizarProveedorRequest is an explicit patch: only fields present in the
// payload are applied. Pointer presence (not zero values) decides.
type ActualizarProveedorRequest struct {
	Nombre        *string `json:"nombre"         validate:"omitempty,min=2,max=255"`
	TipoPersona   *string `json:"tipo_persona"   validate:"omitempty,oneof=NATURAL JURIDICA"`
	Documento     *string `json:"documento"      validate:"omitempty,max=64"`
	TipoDocumento *string `json:"tipo_documento" validate:"omitempty,oneof=CC NIT RUC PASAPORTE CE"`
	Pais          *string `json:"pais"           validate:"omitempty,len=2"`
	Direccion     *string `json:"direccion"      validate:"omitempty,max=255"`
	Telefono      *string `json:"telefono"       validate:"omitempty,max=64"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	PaginaWeb     *string `json:"pagina_web"     validate:"omitempty,url"`
	Activo        *bool   `json:"activo"`
}

// ProveedorFilter holds the query-string filters for listing suppliers.
type ProveedorFilter struct {
	Q      string `form:"q"`    // substring over nombre / documento
	Pais   string `form:"pais"`
	Activo *bool  `form:"activo"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	TipoPersona   string  `json:"tipo_persona"`
	Documento     string  `json:"documento"`
	TipoDocumento string  `json:"tipo_documento"`
	Pais          string  `json:"pais"`
	Direccion     *string `json:"direccion,omitempty"`
	Telefono      *string `json:"telefono,omitempty"`
	Email         *string `json:"email,omitempty"`
	PaginaWeb     *string `json:"pagina_web,omitempty"`
	Activo        bool    `json:"activo"`
	CreadoEn      string  `json:"creado_en"`
	ActualizadoEn string  `json:"actualizado_en"`
}

type ProveedorListResponse struct {
	Data   []ProveedorResponse `json:"data"`
	Total  int64               `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}
