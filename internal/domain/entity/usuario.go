package entity

// Usuario representa un usuario del sistema (empleado u administrador de la farmacia).
// Password guarda el hash bcrypt, nunca texto plano.
type Usuario struct {
	IDUsuario       int64
	Username        string // único
	Password        string
	Nombres         string
	ApellidoPaterno string
	ApellidoMaterno string
}

// Rol un rol asignable a usuarios (admin, empleado).
type Rol struct {
	IDRol     int64
	NombreRol string // único
}
