package dto

// CreateUsuarioRequest entrada para crear un usuario con sus roles.
type CreateUsuarioRequest struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	Nombres         string  `json:"nombres"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno string  `json:"apellido_materno"`
	Roles           []int64 `json:"roles"` // IDs de rol
}

// UpdateUsuarioRequest actualización parcial: solo los campos presentes
// reemplazan el valor almacenado.
type UpdateUsuarioRequest struct {
	Username        *string `json:"username"`
	Password        *string `json:"password"`
	Nombres         *string `json:"nombres"`
	ApellidoPaterno *string `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
}

// UsuarioResponse salida de un usuario. El hash de password nunca se expone.
type UsuarioResponse struct {
	IDUsuario       int64         `json:"id_usuario"`
	Username        string        `json:"username"`
	Nombres         string        `json:"nombres"`
	ApellidoPaterno string        `json:"apellido_paterno"`
	ApellidoMaterno string        `json:"apellido_materno"`
	Roles           []RolResponse `json:"roles,omitempty"`
}

// RolResponse salida de un rol.
type RolResponse struct {
	IDRol     int64  `json:"id_rol"`
	NombreRol string `json:"nombre_rol"`
}
