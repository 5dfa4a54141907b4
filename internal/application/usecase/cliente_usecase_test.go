package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/application/usecase"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

type clienteTelefono struct {
	idCliente int64
	telefono  string
}

type clienteStore struct {
	clientes  []*entity.Cliente
	telefonos []clienteTelefono
	nextID    int64

	failTelefono string // si != "", AddTelefono de ese número falla
}

type fakeClienteRepo struct{ s *clienteStore }

func (r *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	return r.s.clientes, nil
}

func (r *fakeClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	for _, c := range r.s.clientes {
		if c.IDCliente == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) GetByDoc(nroDoc string) (*entity.Cliente, error) {
	for _, c := range r.s.clientes {
		if c.NroDoc == nroDoc {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	r.s.nextID++
	c.IDCliente = r.s.nextID
	r.s.clientes = append(r.s.clientes, c)
	return nil
}

func (r *fakeClienteRepo) AddTelefono(idCliente int64, telefono string) error {
	if r.s.failTelefono != "" && telefono == r.s.failTelefono {
		return errors.New("fallo simulado de inserción")
	}
	r.s.telefonos = append(r.s.telefonos, clienteTelefono{idCliente: idCliente, telefono: telefono})
	return nil
}

func (r *fakeClienteRepo) GetTelefonos(idCliente int64) ([]string, error) {
	var out []string
	for _, t := range r.s.telefonos {
		if t.idCliente == idCliente {
			out = append(out, t.telefono)
		}
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error { return nil }

// Delete elimina el cliente y sus teléfonos, como la cascada de la tabla.
func (r *fakeClienteRepo) Delete(id int64) error {
	for i, c := range r.s.clientes {
		if c.IDCliente == id {
			r.s.clientes = append(r.s.clientes[:i], r.s.clientes[i+1:]...)
			kept := r.s.telefonos[:0]
			for _, t := range r.s.telefonos {
				if t.idCliente != id {
					kept = append(kept, t)
				}
			}
			r.s.telefonos = kept
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeClienteTx struct{ s *clienteStore }

func (t *fakeClienteTx) RunCliente(ctx context.Context, fn func(repository.ClienteRepository) error) error {
	snapshot := *t.s
	if err := fn(&fakeClienteRepo{s: t.s}); err != nil {
		*t.s = snapshot
		return err
	}
	return nil
}

func buildClienteUC(s *clienteStore) *usecase.ClienteUseCase {
	return usecase.NewClienteUseCase(&fakeClienteRepo{s: s}, &fakeClienteTx{s: s})
}

func clienteValido() dto.CreateClienteRequest {
	return dto.CreateClienteRequest{
		NroDoc:    "45677812",
		TipoDoc:   "DNI",
		Nombres:   "Luisa",
		Telefonos: []string{"999111222", "014567890"},
	}
}

// El cliente se crea con todos sus teléfonos en la misma transacción.
func TestCreateCliente_ConTelefonos(t *testing.T) {
	s := &clienteStore{}
	uc := buildClienteUC(s)

	out, err := uc.Create(context.Background(), clienteValido())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, []string{"999111222", "014567890"}, out.Telefonos)
	assert.Len(t, s.clientes, 1)
	assert.Len(t, s.telefonos, 2)
}

// Si una inserción de teléfono falla, el rollback descarta también el
// cliente: cero filas de cliente y cero teléfonos.
func TestCreateCliente_FalloEnTelefono_Rollback(t *testing.T) {
	s := &clienteStore{failTelefono: "014567890"}
	uc := buildClienteUC(s)

	_, err := uc.Create(context.Background(), clienteValido())
	require.Error(t, err)
	assert.Empty(t, s.clientes, "el cliente debe revertirse con el rollback")
	assert.Empty(t, s.telefonos, "no debe quedar teléfono parcial")
}

// Un teléfono vacío invalida la creación completa.
func TestCreateCliente_TelefonoVacio(t *testing.T) {
	s := &clienteStore{}
	uc := buildClienteUC(s)

	in := clienteValido()
	in.Telefonos = []string{"999111222", ""}
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.clientes)
	assert.Empty(t, s.telefonos)
}

// Un nro_doc ya registrado se rechaza antes de escribir.
func TestCreateCliente_DocDuplicado(t *testing.T) {
	s := &clienteStore{}
	uc := buildClienteUC(s)

	_, err := uc.Create(context.Background(), clienteValido())
	require.NoError(t, err)

	in := clienteValido()
	in.Nombres = "Otra"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, s.clientes, 1)
}

// Eliminar un cliente arrastra solo sus teléfonos; los de otros
// clientes permanecen.
func TestDeleteCliente_SoloSusTelefonos(t *testing.T) {
	s := &clienteStore{}
	uc := buildClienteUC(s)

	a, err := uc.Create(context.Background(), clienteValido())
	require.NoError(t, err)
	b, err := uc.Create(context.Background(), dto.CreateClienteRequest{
		NroDoc:    "20601234567",
		TipoDoc:   "RUC",
		Nombres:   "Botica Sur",
		Telefonos: []string{"998877665"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(a.IDCliente))

	assert.Len(t, s.clientes, 1)
	resto, err := uc.GetByID(b.IDCliente)
	require.NoError(t, err)
	require.NotNil(t, resto)
	assert.Equal(t, []string{"998877665"}, resto.Telefonos)

	assert.ErrorIs(t, uc.Delete(a.IDCliente), domain.ErrNotFound)
}

// GetByID de un cliente inexistente devuelve nil sin error.
func TestGetCliente_Inexistente(t *testing.T) {
	s := &clienteStore{}
	uc := buildClienteUC(s)

	out, err := uc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, out)
}
