package dto

// CreateClienteRequest entrada para crear un cliente con sus teléfonos.
type CreateClienteRequest struct {
	NroDoc          string   `json:"nro_doc"`
	TipoDoc         string   `json:"tipo_doc"`
	Nombres         string   `json:"nombres"`
	ApellidoPaterno string   `json:"apellido_paterno"`
	ApellidoMaterno string   `json:"apellido_materno"`
	Correo          string   `json:"correo"`
	Direccion       string   `json:"direccion"`
	Telefonos       []string `json:"telefonos"`
}

// UpdateClienteRequest actualización parcial.
type UpdateClienteRequest struct {
	NroDoc          *string `json:"nro_doc"`
	TipoDoc         *string `json:"tipo_doc"`
	Nombres         *string `json:"nombres"`
	ApellidoPaterno *string `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	Correo          *string `json:"correo"`
	Direccion       *string `json:"direccion"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	IDCliente       int64    `json:"id_cliente"`
	NroDoc          string   `json:"nro_doc"`
	TipoDoc         string   `json:"tipo_doc"`
	Nombres         string   `json:"nombres"`
	ApellidoPaterno string   `json:"apellido_paterno"`
	ApellidoMaterno string   `json:"apellido_materno"`
	Correo          string   `json:"correo"`
	Direccion       string   `json:"direccion"`
	Telefonos       []string `json:"telefonos,omitempty"`
}
