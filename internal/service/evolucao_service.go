package service

import (
	"cronos_backend/internal/model"
	"cronos_backend/internal/repository"
	"errors"
	"time"

	"gorm.io/gorm"
)

type evolucaoStore interface {
	RegistrarTick(usuarioID uint, data string, minutos, acessos, diasSeguidos int) error
	FindByUsuarioEData(usuarioID uint, data string) (*model.Evolucao, error)
	FindUltimaByUsuario(usuarioID uint) (*model.Evolucao, error)
	ListByUsuario(usuarioID uint) ([]model.Evolucao, error)
	TotalMinutos(usuarioID uint) (int64, error)
	DesempenhoPorMateria(usuarioID uint) ([]repository.DesempenhoMateria, error)
}

// EvolucaoService mantém os contadores diários de estudo (minutos, acessos,
// dias seguidos). O dia é o dia civil local do servidor.
type EvolucaoService struct {
	repo evolucaoStore
	now  func() time.Time
}

func NewEvolucaoService(repo evolucaoStore) *EvolucaoService {
	return &EvolucaoService{repo: repo, now: time.Now}
}

const formatoData = "2006-01-02"

// RegistrarAtividade registra um toque de atividade do usuário: soma os
// minutos e acessos na linha do dia, criando-a no primeiro toque. O streak
// é decidido uma única vez, na criação: ontem tem entrada, streak de ontem
// mais um; senão recomeça em 1.
func (s *EvolucaoService) RegistrarAtividade(usuarioID uint, minutos, acessos int) error {
	if minutos < 0 {
		minutos = 0
	}
	if acessos < 0 {
		acessos = 0
	}

	hoje := s.now().Format(formatoData)
	streak := 1
	ultima, err := s.repo.FindUltimaByUsuario(usuarioID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		switch ultima.Data {
		case hoje:
			// linha do dia já existe: o valor aqui é ignorado pelo upsert
			streak = ultima.DiasSeguidos
		case s.now().AddDate(0, 0, -1).Format(formatoData):
			streak = ultima.DiasSeguidos + 1
		}
	}

	return s.repo.RegistrarTick(usuarioID, hoje, minutos, acessos, streak)
}

// Ping é o toque mínimo de presença: um acesso, zero minutos.
func (s *EvolucaoService) Ping(usuarioID uint) error {
	return s.RegistrarAtividade(usuarioID, 0, 1)
}

// EstadoDia é a fotografia dos contadores do dia após um toque.
type EstadoDia struct {
	Minutos int `json:"minutos"`
	Acessos int `json:"acessos"`
	Streak  int `json:"streak"`
}

// Tick aplica o ping e devolve os contadores atualizados do dia.
func (s *EvolucaoService) Tick(usuarioID uint) (*EstadoDia, error) {
	if err := s.Ping(usuarioID); err != nil {
		return nil, err
	}
	entrada, err := s.repo.FindByUsuarioEData(usuarioID, s.now().Format(formatoData))
	if err != nil {
		return nil, err
	}
	return &EstadoDia{
		Minutos: entrada.MinutosEstudados,
		Acessos: entrada.Acessos,
		Streak:  entrada.DiasSeguidos,
	}, nil
}

// PainelEvolucao reúne as projeções da tela de evolução.
type PainelEvolucao struct {
	Hoje         *model.Evolucao                `json:"hoje"`
	DiasSeguidos int                            `json:"dias_seguidos"`
	TotalMinutos int64                          `json:"total_minutos"`
	Historico    []model.Evolucao               `json:"historico"`
	PorMateria   []repository.DesempenhoMateria `json:"por_materia"`
}

// Painel monta o painel do usuário. Ausência de entrada hoje não é erro:
// o painel sai com Hoje nulo e streak zero se o usuário nunca estudou.
func (s *EvolucaoService) Painel(usuarioID uint) (*PainelEvolucao, error) {
	hoje := s.now().Format(formatoData)

	painel := &PainelEvolucao{}
	entrada, err := s.repo.FindByUsuarioEData(usuarioID, hoje)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		painel.Hoje = entrada
		painel.DiasSeguidos = entrada.DiasSeguidos
	} else {
		// sem toque hoje: streak vigente só se ontem tem entrada
		ultima, err := s.repo.FindUltimaByUsuario(usuarioID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil && ultima.Data == s.now().AddDate(0, 0, -1).Format(formatoData) {
			painel.DiasSeguidos = ultima.DiasSeguidos
		}
	}

	painel.Historico, err = s.repo.ListByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	painel.TotalMinutos, err = s.repo.TotalMinutos(usuarioID)
	if err != nil {
		return nil, err
	}
	painel.PorMateria, err = s.repo.DesempenhoPorMateria(usuarioID)
	if err != nil {
		return nil, err
	}
	return painel, nil
}
