package usecase

import (
	"context"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// ClienteUseCase casos de uso de clientes. La creación inserta cliente
// y teléfonos en una sola transacción.
type ClienteUseCase struct {
	repo repository.ClienteRepository
	tx   ClienteTxRunner
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, tx ClienteTxRunner) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, tx: tx}
}

// Create crea un cliente con sus teléfonos. El nro_doc duplicado se
// rechaza antes de escribir; la restricción única es la autoridad final.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.NroDoc == "" || in.Nombres == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDoc(in.NroDoc)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	c := &entity.Cliente{
		NroDoc:          in.NroDoc,
		TipoDoc:         in.TipoDoc,
		Nombres:         in.Nombres,
		ApellidoPaterno: in.ApellidoPaterno,
		ApellidoMaterno: in.ApellidoMaterno,
		Correo:          in.Correo,
		Direccion:       in.Direccion,
	}
	err = uc.tx.RunCliente(ctx, func(repo repository.ClienteRepository) error {
		if err := repo.Create(c); err != nil {
			return err
		}
		for _, tel := range in.Telefonos {
			if tel == "" {
				return domain.ErrInvalidInput
			}
			if err := repo.AddTelefono(c.IDCliente, tel); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toClienteResponse(c, in.Telefonos), nil
}

// List lista clientes con paginación.
func (uc *ClienteUseCase) List(limit, offset int) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c, nil))
	}
	return out, nil
}

// GetByID obtiene un cliente con sus teléfonos.
func (uc *ClienteUseCase) GetByID(id int64) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	tels, err := uc.repo.GetTelefonos(c.IDCliente)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(c, tels), nil
}

// Update actualización parcial.
func (uc *ClienteUseCase) Update(id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.NroDoc != nil && *in.NroDoc != c.NroDoc {
		existing, err := uc.repo.GetByDoc(*in.NroDoc)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		c.NroDoc = *in.NroDoc
	}
	if in.TipoDoc != nil {
		c.TipoDoc = *in.TipoDoc
	}
	if in.Nombres != nil {
		c.Nombres = *in.Nombres
	}
	if in.ApellidoPaterno != nil {
		c.ApellidoPaterno = *in.ApellidoPaterno
	}
	if in.ApellidoMaterno != nil {
		c.ApellidoMaterno = *in.ApellidoMaterno
	}
	if in.Correo != nil {
		c.Correo = *in.Correo
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	tels, err := uc.repo.GetTelefonos(c.IDCliente)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(c, tels), nil
}

// Delete elimina un cliente (sus teléfonos caen en cascada).
func (uc *ClienteUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente, telefonos []string) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		IDCliente:       c.IDCliente,
		NroDoc:          c.NroDoc,
		TipoDoc:         c.TipoDoc,
		Nombres:         c.Nombres,
		ApellidoPaterno: c.ApellidoPaterno,
		ApellidoMaterno: c.ApellidoMaterno,
		Correo:          c.Correo,
		Direccion:       c.Direccion,
		Telefonos:       telefonos,
	}
}
