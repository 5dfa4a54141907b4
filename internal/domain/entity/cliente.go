package entity

// Cliente representa un cliente de la farmacia.
// Los teléfonos viven en cliente_telefono (varios por cliente) y se
// eliminan en cascada con el cliente.
type Cliente struct {
	IDCliente       int64
	NroDoc          string // único (DNI, RUC, pasaporte)
	TipoDoc         string
	Nombres         string
	ApellidoPaterno string
	ApellidoMaterno string
	Correo          string
	Direccion       string
}
