package usecase

import (
	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso de proveedores y sus contactos.
type ProveedorUseCase struct {
	repo         repository.ProveedorRepository
	contactoRepo repository.ContactoProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository, contactoRepo repository.ContactoProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo, contactoRepo: contactoRepo}
}

// Create crea un proveedor. El RUC duplicado se rechaza antes de
// escribir; la restricción única es la autoridad final.
func (uc *ProveedorUseCase) Create(in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.RUC == "" || in.RazonSocial == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByRUC(in.RUC)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	p := &entity.Proveedor{
		RUC:              in.RUC,
		RazonSocial:      in.RazonSocial,
		DireccionEmpresa: in.DireccionEmpresa,
		TelefonoEmpresa:  in.TelefonoEmpresa,
		CorreoEmpresa:    in.CorreoEmpresa,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

// List lista proveedores con paginación.
func (uc *ProveedorUseCase) List(limit, offset int) ([]*dto.ProveedorResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProveedorResponse(p))
	}
	return out, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id int64) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProveedorResponse(p), nil
}

// Update actualización parcial.
func (uc *ProveedorUseCase) Update(id int64, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.RUC != nil && *in.RUC != p.RUC {
		existing, err := uc.repo.GetByRUC(*in.RUC)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		p.RUC = *in.RUC
	}
	if in.RazonSocial != nil {
		p.RazonSocial = *in.RazonSocial
	}
	if in.DireccionEmpresa != nil {
		p.DireccionEmpresa = *in.DireccionEmpresa
	}
	if in.TelefonoEmpresa != nil {
		p.TelefonoEmpresa = *in.TelefonoEmpresa
	}
	if in.CorreoEmpresa != nil {
		p.CorreoEmpresa = *in.CorreoEmpresa
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

// Delete elimina un proveedor.
func (uc *ProveedorUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// CreateContacto crea un contacto para un proveedor existente. Un
// proveedor o cargo inexistente se reporta como error de referencia.
func (uc *ProveedorUseCase) CreateContacto(in dto.CreateContactoRequest) (*dto.ContactoResponse, error) {
	if in.Nombres == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(in.IDProveedor)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrReferencia
	}
	c := &entity.ContactoProveedor{
		IDProveedor:      in.IDProveedor,
		IDCargo:          in.IDCargo,
		Nombres:          in.Nombres,
		ApellidoPaterno:  in.ApellidoPaterno,
		ApellidoMaterno:  in.ApellidoMaterno,
		TelefonoContacto: in.TelefonoContacto,
	}
	if err := uc.contactoRepo.Create(c); err != nil {
		return nil, err
	}
	return toContactoResponse(c), nil
}

// ListContactos lista los contactos de un proveedor.
func (uc *ProveedorUseCase) ListContactos(idProveedor int64) ([]*dto.ContactoResponse, error) {
	p, err := uc.repo.GetByID(idProveedor)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.contactoRepo.ListByProveedor(idProveedor)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactoResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContactoResponse(c))
	}
	return out, nil
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		IDProveedor:      p.IDProveedor,
		RUC:              p.RUC,
		RazonSocial:      p.RazonSocial,
		DireccionEmpresa: p.DireccionEmpresa,
		TelefonoEmpresa:  p.TelefonoEmpresa,
		CorreoEmpresa:    p.CorreoEmpresa,
	}
}

func toContactoResponse(c *entity.ContactoProveedor) *dto.ContactoResponse {
	return &dto.ContactoResponse{
		IDContacto:       c.IDContacto,
		IDProveedor:      c.IDProveedor,
		IDCargo:          c.IDCargo,
		Nombres:          c.Nombres,
		ApellidoPaterno:  c.ApellidoPaterno,
		ApellidoMaterno:  c.ApellidoMaterno,
		TelefonoContacto: c.TelefonoContacto,
	}
}
