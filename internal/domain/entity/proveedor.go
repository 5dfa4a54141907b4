package entity

// Proveedor representa a un proveedor (laboratorio o distribuidora).
type Proveedor struct {
	IDProveedor      int64
	RUC              string // único, 11 dígitos
	RazonSocial      string
	DireccionEmpresa string
	TelefonoEmpresa  string
	CorreoEmpresa    string
}

// ContactoProveedor persona de contacto de un proveedor, con su cargo.
type ContactoProveedor struct {
	IDContacto       int64
	IDProveedor      int64
	IDCargo          int64
	Nombres          string
	ApellidoPaterno  string
	ApellidoMaterno  string
	TelefonoContacto string
}

// Cargo puesto del contacto (ventas, logística, etc.).
type Cargo struct {
	IDCargo     int64
	Descripcion string // único
}
