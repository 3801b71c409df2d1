package postgres

import "time"

// UsuarioModel é o model GORM para a tabela usuario
type UsuarioModel struct {
	ID         uint      `gorm:"column:id_usuario;primaryKey;autoIncrement"`
	Nome       string    `gorm:"column:nm_usuario;type:varchar(255);not null"`
	Email      string    `gorm:"column:ds_email;type:varchar(255);uniqueIndex;not null"`
	Senha      string    `gorm:"column:ds_senha;type:varchar(50);not null"`
	Telefone   string    `gorm:"column:nr_telefone;type:varchar(17);not null"`
	Nascimento time.Time `gorm:"column:dt_nascimento;type:date;not null"`
	LinkFoto   *string   `gorm:"column:ds_linkfoto;type:varchar(255)"`
	Sexo       int       `gorm:"column:tp_sexo;not null;default:0"`
}

func (UsuarioModel) TableName() string {
	return "usuario"
}

// EventoModel é o model GORM para a tabela evento
type EventoModel struct {
	ID              uint      `gorm:"column:id_evento;primaryKey;autoIncrement"`
	Titulo          string    `gorm:"column:ds_titulo;type:varchar(100);not null"`
	Descricao       string    `gorm:"column:ds_evento;type:varchar(255);not null"`
	Inicio          time.Time `gorm:"column:dh_inicio;not null;index"`
	Duracao         float64   `gorm:"column:nr_duracao;type:decimal(3,2);not null"`
	LinkFoto        *string   `gorm:"column:ds_linkfoto;type:varchar(255)"`
	Rua             string    `gorm:"column:ds_rua;type:varchar(100);not null"`
	NumeroEndereco  int       `gorm:"column:nr_endereco;not null"`
	Bairro          string    `gorm:"column:ds_bairro;type:varchar(100);not null"`
	Complemento     *string   `gorm:"column:ds_complemento;type:varchar(200)"`
	MunicipioID     int       `gorm:"column:id_municipio"`
	UFID            int       `gorm:"column:id_uf"`
	AdministradorID uint      `gorm:"column:id_administrador;not null;index"`

	Administrador *UsuarioModel       `gorm:"foreignKey:AdministradorID;references:ID"`
	Participantes []ParticipacaoModel `gorm:"foreignKey:EventoID;references:ID"`
}

func (EventoModel) TableName() string {
	return "evento"
}

// ParticipacaoModel é o model GORM para a tabela de vínculo eventousuario.
// O índice único composto garante no storage a unicidade do par
// (id_evento, id_usuario) sob corrida.
type ParticipacaoModel struct {
	ID        uint `gorm:"column:id_eventousuario;primaryKey;autoIncrement"`
	EventoID  uint `gorm:"column:id_evento;not null;uniqueIndex:ux_eventousuario"`
	UsuarioID uint `gorm:"column:id_usuario;not null;uniqueIndex:ux_eventousuario"`

	Usuario *UsuarioModel `gorm:"foreignKey:UsuarioID;references:ID"`
}

func (ParticipacaoModel) TableName() string {
	return "eventousuario"
}
