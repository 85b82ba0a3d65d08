package service

import (
	"context"
	"cronos_backend/internal/model"
	"cronos_backend/internal/repository"
	"cronos_backend/internal/util"
	"cronos_backend/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const cacheConteudoTTL = 30 * time.Minute

type conteudoStore interface {
	Create(conteudo *model.Conteudo) error
	FindByID(id uint) (*model.Conteudo, error)
	FindDetalheByID(id uint) (*repository.ConteudoDetalhe, error)
	ListBySubtopico(subtopicoID uint) ([]repository.ConteudoDetalhe, error)
	UpdateTexto(id uint, texto string) error
	Delete(id uint) error
}

type subtopicoFinder interface {
	FindByID(id uint) (*model.Subtopico, error)
}

type topicoFinder interface {
	FindByID(id uint) (*model.Topico, error)
}

type materiaFinder interface {
	FindByID(id uint) (*model.Materia, error)
}

// ConteudoService gera e serve os corpos de aula. A geração resolve a
// árvore matéria → tópico → subtópico para montar o prompt; leitura por
// id passa por cache Redis quando disponível.
type ConteudoService struct {
	repo       conteudoStore
	materias   materiaFinder
	topicos    topicoFinder
	subtopicos subtopicoFinder
	gerador    textGenerator
	cache      *redis.Client
}

func NewConteudoService(repo conteudoStore, materias materiaFinder, topicos topicoFinder, subtopicos subtopicoFinder, gerador textGenerator, cache *redis.Client) *ConteudoService {
	return &ConteudoService{
		repo:       repo,
		materias:   materias,
		topicos:    topicos,
		subtopicos: subtopicos,
		gerador:    gerador,
		cache:      cache,
	}
}

// Gerar cria a aula do subtópico via IA e persiste. Se o subtópico já tem
// conteúdo, devolve o existente em vez de gerar de novo.
func (s *ConteudoService) Gerar(ctx context.Context, subtopicoID uint) (*repository.ConteudoDetalhe, error) {
	subtopico, err := s.subtopicos.FindByID(subtopicoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMateriaNotFound
		}
		return nil, err
	}

	if existentes, err := s.repo.ListBySubtopico(subtopicoID); err == nil && len(existentes) > 0 {
		return &existentes[0], nil
	}

	topico, err := s.topicos.FindByID(subtopico.TopicoID)
	if err != nil {
		return nil, err
	}
	materia, err := s.materias.FindByID(topico.MateriaID)
	if err != nil {
		return nil, err
	}

	bruto, err := s.gerador.Generate(ctx, PromptConteudo(materia.Nome, topico.Nome, subtopico.Nome))
	if err != nil {
		return nil, err
	}
	html := SanitizarConteudoHTML(bruto)

	conteudo := &model.Conteudo{
		MateriaID:   materia.ID,
		TopicoID:    topico.ID,
		SubtopicoID: subtopico.ID,
		Titulo:      subtopico.Nome,
		Texto:       StripHTML(html),
		TextoHTML:   html,
		GeradoViaIA: true,
		Fonte:       "gemini",
	}
	if err := s.repo.Create(conteudo); err != nil {
		return nil, err
	}

	logger.Log.Info("conteúdo gerado",
		zap.Uint("subtopico_id", subtopicoID),
		zap.Uint("conteudo_id", conteudo.ID))

	return s.repo.FindDetalheByID(conteudo.ID)
}

func cacheKeyConteudo(id uint) string {
	return fmt.Sprintf("conteudo:detalhe:%d", id)
}

// Detalhe lê o conteúdo com nomes resolvidos, com cache read-through.
func (s *ConteudoService) Detalhe(ctx context.Context, id uint) (*repository.ConteudoDetalhe, error) {
	if s.cache != nil {
		if blob, err := s.cache.Get(ctx, cacheKeyConteudo(id)).Bytes(); err == nil {
			var detalhe repository.ConteudoDetalhe
			if json.Unmarshal(blob, &detalhe) == nil {
				return &detalhe, nil
			}
		}
	}

	detalhe, err := s.repo.FindDetalheByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConteudoNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if blob, err := json.Marshal(detalhe); err == nil {
			if err := s.cache.Set(ctx, cacheKeyConteudo(id), blob, cacheConteudoTTL).Err(); err != nil {
				logger.Log.Warn("cache de conteúdo indisponível", zap.Error(err))
			}
		}
	}
	return detalhe, nil
}

func (s *ConteudoService) ListarPorSubtopico(subtopicoID uint) ([]repository.ConteudoDetalhe, error) {
	return s.repo.ListBySubtopico(subtopicoID)
}

// EditarTexto sobrescreve o corpo da aula e invalida o cache.
func (s *ConteudoService) EditarTexto(ctx context.Context, id uint, texto string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrConteudoNotFound
		}
		return err
	}
	if err := s.repo.UpdateTexto(id, texto); err != nil {
		return err
	}
	s.invalidar(ctx, id)
	return nil
}

func (s *ConteudoService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrConteudoNotFound
		}
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidar(ctx, id)
	return nil
}

func (s *ConteudoService) invalidar(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyConteudo(id)).Err(); err != nil {
		logger.Log.Warn("falha ao invalidar cache de conteúdo", zap.Error(err))
	}
}
