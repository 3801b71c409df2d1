package services

import (
	"context"
	"sort"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/domain/ports"
)

// memStore guarda o estado compartilhado pelos repositórios fake
type memStore struct {
	usuarios       map[uint]*entities.Usuario
	eventos        map[uint]*entities.Evento
	participacoes  map[[2]uint]bool // (idEvento, idUsuario)
	proximoUsuario uint
	proximoEvento  uint
}

func newMemStore() *memStore {
	return &memStore{
		usuarios:       make(map[uint]*entities.Usuario),
		eventos:        make(map[uint]*entities.Evento),
		participacoes:  make(map[[2]uint]bool),
		proximoUsuario: 1,
		proximoEvento:  1,
	}
}

func (s *memStore) countParticipacoes() int {
	return len(s.participacoes)
}

type fakeUsuarioRepo struct {
	store *memStore
}

func (r *fakeUsuarioRepo) Create(_ context.Context, usuario *entities.Usuario) error {
	usuario.ID = r.store.proximoUsuario
	r.store.proximoUsuario++
	copia := *usuario
	r.store.usuarios[usuario.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uint) (*entities.Usuario, error) {
	usuario, ok := r.store.usuarios[id]
	if !ok {
		return nil, nil
	}
	copia := *usuario
	return &copia, nil
}

func (r *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*entities.Usuario, error) {
	for _, usuario := range r.store.usuarios {
		if usuario.Email.String() == email {
			copia := *usuario
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindByCredenciais(_ context.Context, email, senha string) (*entities.Usuario, error) {
	for _, usuario := range r.store.usuarios {
		if usuario.Email.String() == email && usuario.Senha == senha {
			copia := *usuario
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindAll(_ context.Context) ([]*entities.Usuario, error) {
	usuarios := make([]*entities.Usuario, 0, len(r.store.usuarios))
	for _, usuario := range r.store.usuarios {
		copia := *usuario
		usuarios = append(usuarios, &copia)
	}
	sort.Slice(usuarios, func(i, j int) bool { return usuarios[i].ID < usuarios[j].ID })
	return usuarios, nil
}

func (r *fakeUsuarioRepo) CountByID(_ context.Context, id uint) (int64, error) {
	if _, ok := r.store.usuarios[id]; ok {
		return 1, nil
	}
	return 0, nil
}

func (r *fakeUsuarioRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	for _, usuario := range r.store.usuarios {
		if usuario.Email.String() == email {
			count++
		}
	}
	return count, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, usuario *entities.Usuario) (int64, error) {
	if _, ok := r.store.usuarios[usuario.ID]; !ok {
		return 0, nil
	}
	copia := *usuario
	r.store.usuarios[usuario.ID] = &copia
	return 1, nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.store.usuarios[id]; !ok {
		return 0, nil
	}
	delete(r.store.usuarios, id)
	return 1, nil
}

type fakeEventoRepo struct {
	store *memStore
}

func (r *fakeEventoRepo) Create(_ context.Context, evento *entities.Evento) error {
	evento.ID = r.store.proximoEvento
	r.store.proximoEvento++
	copia := *evento
	copia.Administrador = nil
	copia.Participantes = nil
	r.store.eventos[evento.ID] = &copia
	return nil
}

func (r *fakeEventoRepo) FindByID(_ context.Context, id uint) (*entities.Evento, error) {
	evento, ok := r.store.eventos[id]
	if !ok {
		return nil, nil
	}
	return r.resolve(evento), nil
}

func (r *fakeEventoRepo) FindAll(_ context.Context) ([]*entities.Evento, error) {
	eventos := make([]*entities.Evento, 0, len(r.store.eventos))
	for _, evento := range r.store.eventos {
		eventos = append(eventos, r.resolve(evento))
	}
	sort.Slice(eventos, func(i, j int) bool { return eventos[i].Inicio.After(eventos[j].Inicio) })
	return eventos, nil
}

func (r *fakeEventoRepo) FindIDsByAdministrador(_ context.Context, idUsuario uint) ([]uint, error) {
	var ids []uint
	for id, evento := range r.store.eventos {
		if evento.AdministradorID == idUsuario {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeEventoRepo) CountByID(_ context.Context, id uint) (int64, error) {
	if _, ok := r.store.eventos[id]; ok {
		return 1, nil
	}
	return 0, nil
}

func (r *fakeEventoRepo) Update(_ context.Context, evento *entities.Evento) (int64, error) {
	if _, ok := r.store.eventos[evento.ID]; !ok {
		return 0, nil
	}
	copia := *evento
	copia.Administrador = nil
	copia.Participantes = nil
	r.store.eventos[evento.ID] = &copia
	return 1, nil
}

func (r *fakeEventoRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.store.eventos[id]; !ok {
		return 0, nil
	}
	delete(r.store.eventos, id)
	return 1, nil
}

func (r *fakeEventoRepo) DeleteByAdministrador(_ context.Context, idUsuario uint) (int64, error) {
	var removed int64
	for id, evento := range r.store.eventos {
		if evento.AdministradorID == idUsuario {
			delete(r.store.eventos, id)
			removed++
		}
	}
	return removed, nil
}

// resolve monta a visão do evento com administrador e participantes,
// como o repositório real faz via preload
func (r *fakeEventoRepo) resolve(evento *entities.Evento) *entities.Evento {
	copia := *evento
	if administrador, ok := r.store.usuarios[evento.AdministradorID]; ok {
		adm := *administrador
		copia.Administrador = &adm
	}
	var participantes []*entities.Usuario
	for par := range r.store.participacoes {
		if par[0] != evento.ID {
			continue
		}
		if usuario, ok := r.store.usuarios[par[1]]; ok {
			u := *usuario
			participantes = append(participantes, &u)
		}
	}
	sort.Slice(participantes, func(i, j int) bool { return participantes[i].ID < participantes[j].ID })
	copia.Participantes = participantes
	return &copia
}

type fakeParticipacaoRepo struct {
	store *memStore
}

func (r *fakeParticipacaoRepo) Create(_ context.Context, participacao *entities.Participacao) error {
	r.store.participacoes[[2]uint{participacao.EventoID, participacao.UsuarioID}] = true
	return nil
}

func (r *fakeParticipacaoRepo) Exists(_ context.Context, idEvento, idUsuario uint) (bool, error) {
	return r.store.participacoes[[2]uint{idEvento, idUsuario}], nil
}

func (r *fakeParticipacaoRepo) Delete(_ context.Context, idEvento, idUsuario uint) (int64, error) {
	chave := [2]uint{idEvento, idUsuario}
	if !r.store.participacoes[chave] {
		return 0, nil
	}
	delete(r.store.participacoes, chave)
	return 1, nil
}

func (r *fakeParticipacaoRepo) DeleteByEvento(_ context.Context, idEvento uint) (int64, error) {
	var removed int64
	for chave := range r.store.participacoes {
		if chave[0] == idEvento {
			delete(r.store.participacoes, chave)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeParticipacaoRepo) DeleteByEventos(ctx context.Context, idsEvento []uint) (int64, error) {
	var removed int64
	for _, id := range idsEvento {
		n, _ := r.DeleteByEvento(ctx, id)
		removed += n
	}
	return removed, nil
}

func (r *fakeParticipacaoRepo) DeleteByUsuario(_ context.Context, idUsuario uint) (int64, error) {
	var removed int64
	for chave := range r.store.participacoes {
		if chave[1] == idUsuario {
			delete(r.store.participacoes, chave)
			removed++
		}
	}
	return removed, nil
}

// fakeUnitOfWork executa fn diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any)       {}
func (noopLogger) Error(string, ...any)      {}
func (noopLogger) Debug(string, ...any)      {}
func (noopLogger) Warn(string, ...any)       {}
func (l noopLogger) With(...any) ports.Logger { return l }

// newTestServices monta os dois services sobre o mesmo estado em memória
func newTestServices() (*UsuarioService, *EventoService, *memStore) {
	store := newMemStore()
	usuarioRepo := &fakeUsuarioRepo{store: store}
	eventoRepo := &fakeEventoRepo{store: store}
	participacaoRepo := &fakeParticipacaoRepo{store: store}
	uow := fakeUnitOfWork{}
	logger := noopLogger{}

	usuarioService := NewUsuarioService(usuarioRepo, eventoRepo, participacaoRepo, uow, logger)
	eventoService := NewEventoService(eventoRepo, usuarioRepo, participacaoRepo, uow, logger)
	return usuarioService, eventoService, store
}
