package dto

// CreateProveedorRequest entrada para crear un proveedor.
type CreateProveedorRequest struct {
	RUC              string `json:"ruc"`
	RazonSocial      string `json:"razon_social"`
	DireccionEmpresa string `json:"direccion_empresa"`
	TelefonoEmpresa  string `json:"telefono_empresa"`
	CorreoEmpresa    string `json:"correo_empresa"`
}

// UpdateProveedorRequest actualización parcial.
type UpdateProveedorRequest struct {
	RUC              *string `json:"ruc"`
	RazonSocial      *string `json:"razon_social"`
	DireccionEmpresa *string `json:"direccion_empresa"`
	TelefonoEmpresa  *string `json:"telefono_empresa"`
	CorreoEmpresa    *string `json:"correo_empresa"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	IDProveedor      int64  `json:"id_proveedor"`
	RUC              string `json:"ruc"`
	RazonSocial      string `json:"razon_social"`
	DireccionEmpresa string `json:"direccion_empresa"`
	TelefonoEmpresa  string `json:"telefono_empresa"`
	CorreoEmpresa    string `json:"correo_empresa"`
}

// CreateContactoRequest entrada para crear un contacto de proveedor.
type CreateContactoRequest struct {
	IDProveedor      int64  `json:"id_proveedor"`
	IDCargo          int64  `json:"id_cargo"`
	Nombres          string `json:"nombres"`
	ApellidoPaterno  string `json:"apellido_paterno"`
	ApellidoMaterno  string `json:"apellido_materno"`
	TelefonoContacto string `json:"telefono_contacto"`
}

// ContactoResponse salida de un contacto de proveedor.
type ContactoResponse struct {
	IDContacto       int64  `json:"id_contacto"`
	IDProveedor      int64  `json:"id_proveedor"`
	IDCargo          int64  `json:"id_cargo"`
	Nombres          string `json:"nombres"`
	ApellidoPaterno  string `json:"apellido_paterno"`
	ApellidoMaterno  string `json:"apellido_materno"`
	TelefonoContacto string `json:"telefono_contacto"`
}
